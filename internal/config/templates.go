package config

import (
	"fmt"
	"os"
	"strings"
)

func Template(kind string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "node":
		return nodeTemplate, nil
	default:
		return "", fmt.Errorf("unknown config kind: %s", kind)
	}
}

func WriteTemplate(path, kind string, overwrite bool) error {
	template, err := Template(kind)
	if err != nil {
		return err
	}
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(template), 0o600)
}

const nodeTemplate = `name = "cellkit"
addr = ":9200"
cors_origins = ["http://localhost:3000"]
admin_token = "temp-admin-key"

[[resources]]
id = "api-client"
kind = "httpclient"
eager = false

[[resources]]
id = "motd"
kind = "file"
source = "local/motd.txt"
eager = false

[[resources]]
id = "host-info"
kind = "command"
source = "uname -a"
eager = true
`

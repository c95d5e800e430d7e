package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

type NodeConfig struct {
	Name        string           `toml:"name"`
	Addr        string           `toml:"addr"`
	CorsOrigins []string         `toml:"cors_origins"`
	AdminToken  string           `toml:"admin_token"`
	Resources   []ResourceConfig `toml:"resources"`
}

type ResourceConfig struct {
	ID     string `toml:"id"`
	Kind   string `toml:"kind"`
	Source string `toml:"source"`
	Eager  bool   `toml:"eager"`
}

// DefaultNodeConfig returns runtime defaults for a standalone daemon.
func DefaultNodeConfig() NodeConfig {
	return NodeConfig{
		Name: "cellkit",
		Addr: ":9200",
	}
}

func LoadNodeConfig(path string) (NodeConfig, error) {
	var cfg NodeConfig
	if err := loadToml(path, &cfg); err != nil {
		return NodeConfig{}, err
	}
	defaults := DefaultNodeConfig()
	if cfg.Name == "" {
		cfg.Name = defaults.Name
	}
	if cfg.Addr == "" {
		cfg.Addr = defaults.Addr
	}
	if err := ValidateNodeConfig(cfg); err != nil {
		return NodeConfig{}, err
	}
	return cfg, nil
}

func loadToml(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if err := toml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	return nil
}

func ValidateNodeConfig(cfg NodeConfig) error {
	if strings.TrimSpace(cfg.Name) == "" {
		return fmt.Errorf("node config missing name")
	}
	if strings.TrimSpace(cfg.Addr) == "" {
		return fmt.Errorf("node config missing addr")
	}
	seen := make(map[string]struct{}, len(cfg.Resources))
	for i, res := range cfg.Resources {
		if err := ValidateResourceEntry(res); err != nil {
			return fmt.Errorf("resource[%d] invalid: %w", i, err)
		}
		if _, dup := seen[res.ID]; dup {
			return fmt.Errorf("resource[%d] duplicate id: %s", i, res.ID)
		}
		seen[res.ID] = struct{}{}
	}
	return nil
}

func ValidateResourceEntry(res ResourceConfig) error {
	if strings.TrimSpace(res.ID) == "" {
		return fmt.Errorf("resource missing id")
	}
	switch strings.ToLower(strings.TrimSpace(res.Kind)) {
	case "httpclient", "file", "command", "template":
	case "":
		return fmt.Errorf("resource %s missing kind", res.ID)
	default:
		return fmt.Errorf("resource %s has unknown kind: %s", res.ID, res.Kind)
	}
	if needsSource(res.Kind) && strings.TrimSpace(res.Source) == "" {
		return fmt.Errorf("resource %s missing source", res.ID)
	}
	return nil
}

func needsSource(kind string) bool {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "file", "command":
		return true
	default:
		return false
	}
}

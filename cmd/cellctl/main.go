package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/danmuck/cellkit/internal/celld"
)

func main() {
	configPath := flag.String("config", "", "path to node config (toml)")
	flag.Parse()

	cfg, err := loadNodeConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cellctl: %v\n", err)
		os.Exit(1)
	}

	svc := celld.NewService(cfg)
	if err := svc.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "cellctl: %v\n", err)
		os.Exit(1)
	}
}

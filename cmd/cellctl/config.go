package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/danmuck/cellkit/internal/config"
)

type fileConfig struct {
	Name        string         `toml:"name"`
	Addr        string         `toml:"addr"`
	CorsOrigins []string       `toml:"cors_origins"`
	AdminToken  string         `toml:"admin_token"`
	Resources   []fileResource `toml:"resources"`
}

type fileResource struct {
	ID     string `toml:"id"`
	Kind   string `toml:"kind"`
	Source string `toml:"source"`
	Eager  bool   `toml:"eager"`
}

// loadNodeConfig layers the file over runtime defaults; absent keys keep
// their defaults rather than zeroing them. An empty path means defaults
// only.
func loadNodeConfig(path string) (config.NodeConfig, error) {
	cfg := config.DefaultNodeConfig()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return config.NodeConfig{}, fmt.Errorf("load node config: %w", err)
	}

	if meta.IsDefined("name") {
		if name := strings.TrimSpace(raw.Name); name != "" {
			cfg.Name = name
		}
	}
	if meta.IsDefined("addr") {
		if addr := strings.TrimSpace(raw.Addr); addr != "" {
			cfg.Addr = addr
		}
	}
	if meta.IsDefined("cors_origins") {
		cfg.CorsOrigins = raw.CorsOrigins
	}
	if meta.IsDefined("admin_token") {
		cfg.AdminToken = strings.TrimSpace(raw.AdminToken)
	}
	for _, res := range raw.Resources {
		cfg.Resources = append(cfg.Resources, config.ResourceConfig{
			ID:     strings.TrimSpace(res.ID),
			Kind:   strings.TrimSpace(res.Kind),
			Source: res.Source,
			Eager:  res.Eager,
		})
	}

	if err := config.ValidateNodeConfig(cfg); err != nil {
		return config.NodeConfig{}, err
	}
	return cfg, nil
}

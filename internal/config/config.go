package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type Config struct {
	ExportPath string `toml:"export_path"` // default chat export to analyze
	TopUsers   int    `toml:"top_users"`   // rows in the top-users ranking
}

func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		TopUsers: 5,
	}

	cfgPath := filepath.Join(home, ".config", "chatlens", "config.toml")
	if _, err := os.Stat(cfgPath); err == nil {
		if _, err := toml.DecodeFile(cfgPath, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", cfgPath, err)
		}
	}

	// expand ~ in paths
	cfg.ExportPath = expandHome(cfg.ExportPath, home)

	if cfg.TopUsers < 1 {
		cfg.TopUsers = 5
	}

	return cfg, nil
}

func expandHome(path, home string) string {
	if len(path) > 1 && path[0] == '~' && path[1] == '/' {
		return filepath.Join(home, path[2:])
	}
	return path
}

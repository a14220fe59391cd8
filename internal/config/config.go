// Package config loads the YAML configuration file. Flags override
// whatever the file provides; the zero-config case falls back to
// defaults, so a config file is never required.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr     string  `yaml:"addr"`
	LogLevel string  `yaml:"logLevel"`
	Storage  Storage `yaml:"storage"`
	Engine   Engine  `yaml:"engine"`
}

type Storage struct {
	// Backend is "fs" or "badger".
	Backend string `yaml:"backend"`
	Path    string `yaml:"path"`
}

type Engine struct {
	// NodeBudget caps search nodes per solve; 0 means unbounded.
	NodeBudget int `yaml:"nodeBudget"`
	// Workers above 1 parallelizes the top branching level.
	Workers int `yaml:"workers"`
	// Pointing enables locked-candidates elimination.
	Pointing bool `yaml:"pointing"`
}

func Default() Config {
	return Config{
		Addr:     ":8080",
		LogLevel: "info",
		Storage:  Storage{Backend: "fs", Path: "./data"},
		Engine:   Engine{NodeBudget: 0, Workers: 1, Pointing: true},
	}
}

// Load reads path over the defaults. An empty path returns the defaults
// unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Storage.Backend != "fs" && cfg.Storage.Backend != "badger" {
		return cfg, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
	return cfg, nil
}

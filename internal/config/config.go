package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Server is the on-disk server configuration shape (YAML).
type Server struct {
	Addr           string   `yaml:"addr"`
	LogLevel       string   `yaml:"log_level"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	DefaultDays    int      `yaml:"default_days"`
	HouseholdFile  string   `yaml:"household_file"`
}

// DefaultServer returns the settings used when no config file is given.
func DefaultServer() Server {
	return Server{
		Addr:        ":8080",
		LogLevel:    "info",
		DefaultDays: 3,
	}
}

// LoadServer reads a YAML server config, filling omitted fields with
// defaults.
func LoadServer(path string) (Server, error) {
	cfg := DefaultServer()

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}

	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if cfg.DefaultDays <= 0 {
		cfg.DefaultDays = 3
	}
	return cfg, nil
}

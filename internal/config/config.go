// Package config provides configuration loading and validation for the server.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds server configuration read from the environment.
type Config struct {
	Port        int    // HTTP listen port
	DatabaseURL string // PostgreSQL connection URL
}

// Load reads the server configuration from environment variables.
// PORT defaults to 8080; DATABASE_URL is required.
func Load() (*Config, error) {
	cfg := &Config{
		Port:        8080,
		DatabaseURL: os.Getenv("DATABASE_URL"),
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT: %v", err)
		}
		cfg.Port = port
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// normalize validates the configuration.
func (c *Config) normalize() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required but not set")
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT out of range: %d", c.Port)
	}
	return nil
}

// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"

	"logirate/internal/errors"
	"logirate/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Server contains HTTP server settings
	Server ServerConfig `json:"server"`

	// Database contains persistence settings
	Database DatabaseConfig `json:"database"`

	// Catalog contains rate catalog settings
	Catalog CatalogConfig `json:"catalog"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	// Addr is the listen address
	Addr string `json:"addr"`
}

// DatabaseConfig contains persistence settings
type DatabaseConfig struct {
	// URL is the Postgres connection string. Empty disables persistence;
	// the CLI falls back to the in-memory store.
	URL string `json:"url"`
}

// CatalogConfig contains rate catalog settings
type CatalogConfig struct {
	// Path points to an HCL catalog file. Empty uses the built-in table.
	Path string `json:"path"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Server: ServerConfig{
			Addr: ":8080",
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file. A missing file yields defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, errors.Config("reading config file", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.Config("parsing config file", err)
	}

	return cfg, nil
}

// FromEnv applies environment overrides. DATABASE_URL and LOGIRATE_CATALOG
// take precedence over file values so container deployments need no file.
func (c *Config) FromEnv() {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.Database.URL = v
	}
	if v := os.Getenv("LOGIRATE_CATALOG"); v != "" {
		c.Catalog.Path = v
	}
	if v := os.Getenv("LOGIRATE_ADDR"); v != "" {
		c.Server.Addr = v
	}
}

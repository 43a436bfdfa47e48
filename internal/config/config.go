// Package config provides configuration loading and validation for the server and CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Storage drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

const (
	defaultPort       = 8080
	defaultSQLitePath = "meeting-mbti.db"
)

// ServerConfig holds the settings needed to run the HTTP API.
// All fields may come from the environment, a JSON file, or CLI flags.
type ServerConfig struct {
	Port              int    `json:"port,omitempty"`
	StorageDriver     string `json:"storage_driver,omitempty"`      // postgres or sqlite
	DatabaseURL       string `json:"database_url,omitempty"`        // PostgreSQL connection URL
	SQLitePath        string `json:"sqlite_path,omitempty"`         // Database file for the sqlite driver
	CORSAllowedOrigin string `json:"cors_allowed_origin,omitempty"` // Empty means "*"
}

// NewServerConfig creates a server configuration from environment variables.
// It reads PORT (default: 8080), STORAGE_DRIVER, DATABASE_URL, SQLITE_PATH
// and CORS_ALLOWED_ORIGIN. When STORAGE_DRIVER is unset the driver is
// postgres if DATABASE_URL is set and sqlite otherwise.
func NewServerConfig() (*ServerConfig, error) {
	cfg, err := FromEnv()
	if err != nil {
		return nil, err
	}
	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FromEnv reads the server environment variables without applying defaults,
// so the result can be layered with MergeWithDefaults.
func FromEnv() (*ServerConfig, error) {
	cfg := &ServerConfig{
		StorageDriver:     os.Getenv("STORAGE_DRIVER"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		SQLitePath:        os.Getenv("SQLITE_PATH"),
		CORSAllowedOrigin: os.Getenv("CORS_ALLOWED_ORIGIN"),
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT: %v", err)
		}
		cfg.Port = port
	}
	return cfg, nil
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*ServerConfig, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg ServerConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// MergeWithDefaults returns a copy of c with empty fields taken from defaults.
// The serve command passes environment values as defaults, so file values win.
func (c *ServerConfig) MergeWithDefaults(defaults ServerConfig) ServerConfig {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.StorageDriver == "" {
		result.StorageDriver = defaults.StorageDriver
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.SQLitePath == "" {
		result.SQLitePath = defaults.SQLitePath
	}
	if result.CORSAllowedOrigin == "" {
		result.CORSAllowedOrigin = defaults.CORSAllowedOrigin
	}

	return result
}

// Validate applies defaults and checks that the configuration is usable
func (c *ServerConfig) Validate() error {
	return c.normalize()
}

// normalize fills defaults and validates the configuration.
func (c *ServerConfig) normalize() error {
	if c.Port == 0 {
		c.Port = defaultPort
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT out of range: %d", c.Port)
	}

	c.StorageDriver = strings.ToLower(strings.TrimSpace(c.StorageDriver))
	if c.StorageDriver == "" {
		if c.DatabaseURL != "" {
			c.StorageDriver = DriverPostgres
		} else {
			c.StorageDriver = DriverSQLite
		}
	}

	switch c.StorageDriver {
	case DriverPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for the postgres storage driver")
		}
	case DriverSQLite:
		if c.SQLitePath == "" {
			c.SQLitePath = defaultSQLitePath
		}
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q (want %s or %s)", c.StorageDriver, DriverPostgres, DriverSQLite)
	}

	if c.CORSAllowedOrigin == "" {
		c.CORSAllowedOrigin = "*"
	}
	return nil
}

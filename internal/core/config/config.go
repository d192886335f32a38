// Package config provides configuration management for RosterKeeper tooling.
package config

import "fmt"

// CatalogConfig holds configuration for commands operating on the content
// catalog database.
type CatalogConfig struct {
	DatabaseURL string
	LogLevel    string
	LogFormat   string
}

// DefaultCatalogConfig returns configuration with default values.
func DefaultCatalogConfig() *CatalogConfig {
	return &CatalogConfig{
		DatabaseURL: "sqlite://rosterkeeper.db",
		LogLevel:    "info",
		LogFormat:   "text",
	}
}

// Validate checks log level/format values. The database URL scheme is
// checked by db.Open, which owns driver selection.
func (c *CatalogConfig) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q (expected debug, info, warn, error)", c.LogLevel)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format %q (expected text, json)", c.LogFormat)
	}
	if c.DatabaseURL == "" {
		return fmt.Errorf("database URL required")
	}
	return nil
}

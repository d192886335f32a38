package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// LoadConfig loads configuration from file using viper.
// CLI flags > environment > config file > defaults precedence.
// Environment variables use the RK_ prefix (RK_CATALOG_DATABASE_URL etc.).
func LoadConfig(configPath string) (*CatalogConfig, error) {
	v := viper.New()

	// Defaults matching DefaultCatalogConfig
	v.SetDefault("catalog.database_url", "sqlite://rosterkeeper.db")
	v.SetDefault("catalog.log_level", "info")
	v.SetDefault("catalog.log_format", "text")

	v.SetEnvPrefix("RK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &CatalogConfig{
		DatabaseURL: v.GetString("catalog.database_url"),
		LogLevel:    v.GetString("catalog.log_level"),
		LogFormat:   v.GetString("catalog.log_format"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

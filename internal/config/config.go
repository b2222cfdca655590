package config

import (
	"os"
	"strconv"

	"critval/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig
	Defaults DefaultsConfig
	Export   ExportConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// DefaultsConfig holds the fallback test options applied when a request
// leaves them unset
type DefaultsConfig struct {
	ConfLevel  float64
	Hypothesis string
}

// ExportConfig holds output paths for sweep exports
type ExportConfig struct {
	XlsxFile string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", "8080"),
			GinMode: getEnvOrDefault("GIN_MODE", "release"),
		},
		Defaults: DefaultsConfig{
			ConfLevel:  getEnvFloatOrDefault("CONF_LEVEL", 0.95),
			Hypothesis: getEnvOrDefault("HYPOTHESIS", "two.sided"),
		},
		Export: ExportConfig{
			XlsxFile: getEnvOrDefault("XLSX_FILE", "critical_values.xlsx"),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return errors.ConfigInvalid("server port is required")
	}
	if config.Defaults.ConfLevel <= 0 || config.Defaults.ConfLevel >= 1 {
		return errors.ConfigInvalid("CONF_LEVEL must be in (0, 1)")
	}
	switch config.Defaults.Hypothesis {
	case "two.sided", "greater", "less":
	default:
		return errors.ConfigInvalid("HYPOTHESIS must be two.sided, greater or less")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

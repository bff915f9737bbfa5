package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// ValidateConfig validates configuration values and returns an error if any are invalid.
// This function should be called after viper has loaded the configuration.
func ValidateConfig() error {
	var errors []string

	storeType := strings.ToLower(viper.GetString("store.type"))
	switch storeType {
	case "", "sqlite", "sqlite3":
	case "postgres", "postgresql":
		if viper.GetString("store.dsn") == "" {
			errors = append(errors, "store.dsn is required for postgres")
		}
	default:
		errors = append(errors, fmt.Sprintf("store.type must be sqlite or postgres, got: %s", storeType))
	}

	if strings.TrimSpace(viper.GetString("category")) == "" {
		errors = append(errors, "category must not be empty")
	}

	if viper.IsSet("lookup_timeout") {
		if timeout := durationValue("lookup_timeout"); timeout < 0 {
			errors = append(errors, fmt.Sprintf("lookup_timeout must not be negative, got: %v", timeout))
		}
	}

	// Validate metrics_port (0 disables the listener)
	if viper.IsSet("metrics_port") {
		port := viper.GetInt("metrics_port")
		if port < 0 || port > 65535 {
			errors = append(errors, fmt.Sprintf("metrics_port must be between 0 and 65535, got: %d", port))
		}
	}

	if viper.GetString("serve.addr") == "" {
		errors = append(errors, "serve.addr must not be empty")
	}

	// If there are any errors, return them
	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  %s", strings.Join(errors, "\n  "))
	}

	return nil
}

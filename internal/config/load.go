package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. TURFZONE_STORE_DSN.
const EnvPrefix = "TURFZONE"

// DefaultCategories are offered by the category picker.
var DefaultCategories = []string{"Football", "Cricket", "Badminton", "Tennis"}

// SetDefaults registers every default value with viper.
func SetDefaults() {
	viper.SetDefault("store.type", "sqlite")
	viper.SetDefault("store.dsn", "turfzone.db")
	viper.SetDefault("category", "Football")
	viper.SetDefault("categories", DefaultCategories)
	viper.SetDefault("session.logged_in", true)
	viper.SetDefault("verbose", false)
	viper.SetDefault("log_file", "")
	viper.SetDefault("metrics_port", 0)
	viper.SetDefault("lookup_timeout", 0)
	viper.SetDefault("serve.addr", "127.0.0.1:8080")
	viper.SetDefault("serve.cors_origins", []string{"*"})
}

// Load initializes the configuration from file and environment variables.
func Load(cfgFile string) error {
	// .env is optional
	_ = godotenv.Load()

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	SetDefaults()

	if err := viper.ReadInConfig(); err != nil {
		// A missing default config.yaml is fine; an explicit file must exist and parse.
		if _, ok := err.(viper.ConfigFileNotFoundError); ok && cfgFile == "" {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}

	fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	return nil
}

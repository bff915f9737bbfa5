package config

import (
	"time"

	"github.com/spf13/viper"
)

// Settings is a typed snapshot of the loaded configuration.
type Settings struct {
	StoreType     string
	StoreDSN      string
	Category      string
	Categories    []string
	LoggedIn      bool
	Verbose       bool
	LogFile       string
	MetricsPort   int
	LookupTimeout time.Duration
	ServeAddr     string
	CORSOrigins   []string
}

// Current reads the settings from viper.
func Current() Settings {
	s := Settings{
		StoreType:     viper.GetString("store.type"),
		StoreDSN:      viper.GetString("store.dsn"),
		Category:      viper.GetString("category"),
		Categories:    viper.GetStringSlice("categories"),
		LoggedIn:      viper.GetBool("session.logged_in"),
		Verbose:       viper.GetBool("verbose"),
		LogFile:       viper.GetString("log_file"),
		MetricsPort:   viper.GetInt("metrics_port"),
		LookupTimeout: durationValue("lookup_timeout"),
		ServeAddr:     viper.GetString("serve.addr"),
		CORSOrigins:   viper.GetStringSlice("serve.cors_origins"),
	}
	if len(s.Categories) == 0 {
		s.Categories = DefaultCategories
	}
	if !contains(s.Categories, s.Category) && s.Category != "" {
		s.Categories = append([]string{s.Category}, s.Categories...)
	}
	return s
}

// durationValue accepts either a duration string ("5s") or whole seconds.
func durationValue(key string) time.Duration {
	if d := viper.GetDuration(key); d != 0 {
		if d < time.Microsecond && d > -time.Microsecond {
			return time.Duration(viper.GetInt(key)) * time.Second
		}
		return d
	}
	return time.Duration(viper.GetInt(key)) * time.Second
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

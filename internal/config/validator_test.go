package config

import (
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name      string
		setup     func()
		wantError bool
		errMsg    string
	}{
		{
			name:      "Valid Configuration",
			setup:     func() {},
			wantError: false,
		},
		{
			name: "Valid Postgres",
			setup: func() {
				viper.Set("store.type", "postgres")
				viper.Set("store.dsn", "postgres://localhost/turfs")
			},
			wantError: false,
		},
		{
			name: "Unknown Store",
			setup: func() {
				viper.Set("store.type", "mysql")
			},
			wantError: true,
			errMsg:    "store.type must be sqlite or postgres",
		},
		{
			name: "Postgres Without DSN",
			setup: func() {
				viper.Set("store.type", "postgres")
				viper.Set("store.dsn", "")
			},
			wantError: true,
			errMsg:    "store.dsn is required",
		},
		{
			name: "Empty Category",
			setup: func() {
				viper.Set("category", "  ")
			},
			wantError: true,
			errMsg:    "category must not be empty",
		},
		{
			name: "Negative Lookup Timeout",
			setup: func() {
				viper.Set("lookup_timeout", -10)
			},
			wantError: true,
			errMsg:    "lookup_timeout must not be negative",
		},
		{
			name: "Invalid Metrics Port",
			setup: func() {
				viper.Set("metrics_port", 70000)
			},
			wantError: true,
			errMsg:    "metrics_port must be between 0 and 65535",
		},
		{
			name: "Empty Serve Address",
			setup: func() {
				viper.Set("serve.addr", "")
			},
			wantError: true,
			errMsg:    "serve.addr must not be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			SetDefaults()
			defer viper.Reset()

			tt.setup()
			err := ValidateConfig()

			if tt.wantError {
				if err == nil {
					t.Errorf("ValidateConfig() expected error but got nil")
					return
				}
				if tt.errMsg != "" && !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("ValidateConfig() error = %v, want error containing %q", err, tt.errMsg)
				}
			} else if err != nil {
				t.Errorf("ValidateConfig() unexpected error = %v", err)
			}
		})
	}
}

func TestValidateConfig_CollectsAllErrors(t *testing.T) {
	viper.Reset()
	SetDefaults()
	defer viper.Reset()

	viper.Set("store.type", "mongodb")
	viper.Set("category", "")
	viper.Set("metrics_port", -1)

	err := ValidateConfig()
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{"store.type", "category", "metrics_port"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}

// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Seed        int64  // 0 means a time-based seed
	Lang        string `validate:"oneof=ru en"`
	Color       string `validate:"oneof=auto always never"`
	CatalogPath string // empty means the embedded catalog
	LogLevel    string `validate:"oneof=debug info warn warning error"`
	LogFormat   string `validate:"oneof=text json"`

	TelemetryEnabled  bool
	TelemetryEndpoint string `validate:"omitempty,url"`
	HoneycombAPIKey   string
	HoneycombDataset  string `validate:"required"`
}

var validate = validator.New()

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// A missing .env is fine, the real environment may carry everything
	_ = godotenv.Load()

	cfg := &Config{
		Lang:              strings.ToLower(getEnv("TEXTROGUE_LANG", "ru")),
		Color:             strings.ToLower(getEnv("TEXTROGUE_COLOR", "auto")),
		CatalogPath:       getEnv("TEXTROGUE_CATALOG", ""),
		LogLevel:          strings.ToLower(getEnv("LOG_LEVEL", "warn")),
		LogFormat:         strings.ToLower(getEnv("LOG_FORMAT", "text")),
		TelemetryEndpoint: getEnv("TELEMETRY_ENDPOINT", "https://api.honeycomb.io/v1/traces"),
		HoneycombAPIKey:   getEnv("HONEYCOMB_API_KEY", ""),
		HoneycombDataset:  getEnv("HONEYCOMB_DATASET", "textrogue"),
	}

	seed, err := strconv.ParseInt(getEnv("TEXTROGUE_SEED", "0"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid TEXTROGUE_SEED value: %w", err)
	}
	cfg.Seed = seed

	enabled, err := strconv.ParseBool(getEnv("TELEMETRY_ENABLED", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid TELEMETRY_ENABLED value: %w", err)
	}
	cfg.TelemetryEnabled = enabled

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field values against their allowed sets.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

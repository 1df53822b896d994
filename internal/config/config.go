// Package config provides centralized configuration loaded from environment
// variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// DefaultOutputFile is where fixtures land when OUTPUT_FILE is not set.
const DefaultOutputFile = "danish_superliga_fixtures.csv"

// Config is populated from environment variables once at startup and passed
// explicitly to the components that need it.
type Config struct {
	// External API
	SportMonksAPIToken string
	RequestsPerMinute  int
	HTTPTimeout        time.Duration
	PerPage            int

	// Optional Postgres sink; empty disables it
	DatabaseURL string

	// Output
	OutputFile string
}

// Load reads configuration from environment variables with sensible defaults.
// The SportMonks token is required: without it no request can succeed, so we
// fail before any network call.
func Load() (*Config, error) {
	token := os.Getenv("SPORTMONKS_API_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("SPORTMONKS_API_TOKEN must be set")
	}

	return &Config{
		SportMonksAPIToken: token,
		RequestsPerMinute:  envInt("SPORTMONKS_RPM", 120),
		HTTPTimeout:        time.Duration(envInt("HTTP_TIMEOUT_SECONDS", 10)) * time.Second,
		PerPage:            envInt("PER_PAGE", 100),

		DatabaseURL: os.Getenv("DATABASE_URL"),

		OutputFile: envOr("OUTPUT_FILE", DefaultOutputFile),
	}, nil
}

// --------------------------------------------------------------------------
// Env helpers
// --------------------------------------------------------------------------

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

package config

import (
	"testing"
	"time"
)

func TestLoad_RequiresToken(t *testing.T) {
	t.Setenv("SPORTMONKS_API_TOKEN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when token is unset")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SPORTMONKS_API_TOKEN", "tok")
	t.Setenv("SPORTMONKS_RPM", "")
	t.Setenv("HTTP_TIMEOUT_SECONDS", "")
	t.Setenv("PER_PAGE", "")
	t.Setenv("OUTPUT_FILE", "")
	t.Setenv("DATABASE_URL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.SportMonksAPIToken != "tok" {
		t.Fatalf("unexpected token %q", cfg.SportMonksAPIToken)
	}
	if cfg.RequestsPerMinute != 120 {
		t.Fatalf("expected default rpm=120, got=%d", cfg.RequestsPerMinute)
	}
	if cfg.HTTPTimeout != 10*time.Second {
		t.Fatalf("expected default timeout=10s, got=%s", cfg.HTTPTimeout)
	}
	if cfg.PerPage != 100 {
		t.Fatalf("expected default per_page=100, got=%d", cfg.PerPage)
	}
	if cfg.OutputFile != DefaultOutputFile {
		t.Fatalf("expected default output file, got=%q", cfg.OutputFile)
	}
	if cfg.DatabaseURL != "" {
		t.Fatalf("expected empty database url, got=%q", cfg.DatabaseURL)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SPORTMONKS_API_TOKEN", "tok")
	t.Setenv("SPORTMONKS_RPM", "30")
	t.Setenv("HTTP_TIMEOUT_SECONDS", "5")
	t.Setenv("PER_PAGE", "25")
	t.Setenv("OUTPUT_FILE", "out.csv")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.RequestsPerMinute != 30 || cfg.HTTPTimeout != 5*time.Second || cfg.PerPage != 25 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.OutputFile != "out.csv" {
		t.Fatalf("expected out.csv, got=%q", cfg.OutputFile)
	}
}

package config

import (
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	t.Setenv("COUNTRIES", "gb, be,FR")
	t.Setenv("OUTPUT_DIR", "out")
	t.Setenv("OVERPASS_TIMEOUT", "90s")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Countries) != 3 || cfg.Countries[0] != "GB" || cfg.Countries[2] != "FR" {
		t.Fatalf("expected upper-cased country list, got %v", cfg.Countries)
	}
	if cfg.OutputDir != "out" {
		t.Fatalf("expected output dir %q, got %q", "out", cfg.OutputDir)
	}
	if cfg.OverpassTimeout != 90*time.Second {
		t.Fatalf("expected 90s timeout, got %s", cfg.OverpassTimeout)
	}
	if !cfg.IsCacheEnabled() {
		t.Fatal("expected cache to be enabled when REDIS_ADDR is set")
	}
}

func TestLoad_RequiresCountries(t *testing.T) {
	t.Setenv("COUNTRIES", "")
	if _, err := Load(); err == nil {
		t.Fatal("expected an error when COUNTRIES is empty")
	}
}

func TestLoad_RejectsMalformedTimeout(t *testing.T) {
	t.Setenv("COUNTRIES", "GB")
	t.Setenv("OVERPASS_TIMEOUT", "ninety seconds")
	if _, err := Load(); err == nil {
		t.Fatal("expected an error for a malformed OVERPASS_TIMEOUT")
	}
}

package config

import (
	"reflect"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ENV", "")
	t.Setenv("CORS_ALLOW_ORIGINS", "")
	t.Setenv("FORMAT_RATE_PER_SEC", "")
	t.Setenv("FORMAT_BURST", "")

	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.Env != "dev" {
		t.Fatalf("expected default env dev, got %q", cfg.Env)
	}
	if cfg.FormatRatePerSec != 5 {
		t.Fatalf("expected default rate 5, got %v", cfg.FormatRatePerSec)
	}
	if cfg.FormatBurst != 10 {
		t.Fatalf("expected default burst 10, got %d", cfg.FormatBurst)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "Prod")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("FORMAT_RATE_PER_SEC", "2.5")
	t.Setenv("FORMAT_BURST", "3")

	cfg := Load()
	if cfg.Port != "9090" {
		t.Fatalf("expected port 9090, got %q", cfg.Port)
	}
	if cfg.Env != "production" {
		t.Fatalf("expected env production, got %q", cfg.Env)
	}
	wantOrigins := []string{"https://a.example", "https://b.example"}
	if !reflect.DeepEqual(cfg.CORSAllowOrigins, wantOrigins) {
		t.Fatalf("expected origins %v, got %v", wantOrigins, cfg.CORSAllowOrigins)
	}
	if cfg.FormatRatePerSec != 2.5 {
		t.Fatalf("expected rate 2.5, got %v", cfg.FormatRatePerSec)
	}
	if cfg.FormatBurst != 3 {
		t.Fatalf("expected burst 3, got %d", cfg.FormatBurst)
	}
}

func TestLoadInvalidNumbersFallBack(t *testing.T) {
	t.Setenv("FORMAT_RATE_PER_SEC", "fast")
	t.Setenv("FORMAT_BURST", "lots")

	cfg := Load()
	if cfg.FormatRatePerSec != 5 {
		t.Fatalf("expected fallback rate 5, got %v", cfg.FormatRatePerSec)
	}
	if cfg.FormatBurst != 10 {
		t.Fatalf("expected fallback burst 10, got %d", cfg.FormatBurst)
	}
}

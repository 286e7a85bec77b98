package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.HTTPAddress != ":8080" {
		t.Fatalf("unexpected default address %q", cfg.HTTPAddress)
	}
	if cfg.StaticDir != "static" {
		t.Fatalf("unexpected default static dir %q", cfg.StaticDir)
	}
	if cfg.ShutdownTimeout != 15*time.Second {
		t.Fatalf("unexpected default shutdown timeout %s", cfg.ShutdownTimeout)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDRESS", ":9090")
	t.Setenv("STATIC_DIR", "/srv/www")
	t.Setenv("HTTP_READ_TIMEOUT", "2s")

	cfg := Load()

	if cfg.HTTPAddress != ":9090" {
		t.Fatalf("expected :9090 got %q", cfg.HTTPAddress)
	}
	if cfg.StaticDir != "/srv/www" {
		t.Fatalf("expected /srv/www got %q", cfg.StaticDir)
	}
	if cfg.ReadTimeout != 2*time.Second {
		t.Fatalf("expected 2s got %s", cfg.ReadTimeout)
	}
}

func TestLoadIgnoresMalformedDuration(t *testing.T) {
	t.Setenv("HTTP_READ_TIMEOUT", "soon")

	cfg := Load()

	if cfg.ReadTimeout != 5*time.Second {
		t.Fatalf("expected fallback 5s got %s", cfg.ReadTimeout)
	}
}

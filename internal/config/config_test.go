package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoad_CollectsAllMissingVars(t *testing.T) {
	// t.Setenv limpia al terminar; acá solo aseguramos ausencia.
	t.Setenv("JWT_KEY", "")
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error with empty required vars")
	}
	for _, want := range []string{"JWT_KEY", "DATABASE_URL"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("expected %s in error, got: %v", want, err)
		}
	}
}

func TestLoad_DefaultsAndOverrides(t *testing.T) {
	t.Setenv("JWT_KEY", "secret")
	t.Setenv("DATABASE_URL", "postgres://localhost/pets")
	t.Setenv("PORT", "")
	t.Setenv("TOKEN_DURATION", "")
	t.Setenv("UPLOADS_DIR", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != "3000" {
		t.Fatalf("expected default port 3000, got %q", cfg.Server.Port)
	}
	if cfg.Auth.TokenDuration != time.Hour {
		t.Fatalf("expected default token duration 1h, got %v", cfg.Auth.TokenDuration)
	}
	if cfg.Uploads.Dir != "photos" {
		t.Fatalf("expected default uploads dir photos, got %q", cfg.Uploads.Dir)
	}

	t.Setenv("PORT", "8080")
	t.Setenv("TOKEN_DURATION", "30m")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("load with overrides: %v", err)
	}
	if cfg.Server.Port != "8080" {
		t.Fatalf("expected port 8080, got %q", cfg.Server.Port)
	}
	if cfg.Auth.TokenDuration != 30*time.Minute {
		t.Fatalf("expected 30m, got %v", cfg.Auth.TokenDuration)
	}
}

func TestLoad_InvalidDurationIsReported(t *testing.T) {
	t.Setenv("JWT_KEY", "secret")
	t.Setenv("DATABASE_URL", "postgres://localhost/pets")
	t.Setenv("TOKEN_DURATION", "soon")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for invalid duration")
	}
	if !strings.Contains(err.Error(), "TOKEN_DURATION") {
		t.Fatalf("expected TOKEN_DURATION in error, got: %v", err)
	}
}

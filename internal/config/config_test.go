package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Listen != ":8080" {
		t.Errorf("listen = %q, want :8080", cfg.Listen)
	}
	if cfg.DatabaseURL != "" {
		t.Errorf("database_url = %q, want empty (local SQLite)", cfg.DatabaseURL)
	}
	if cfg.SessionTTL != 12*time.Hour {
		t.Errorf("session_ttl = %v, want 12h", cfg.SessionTTL)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("COMPASS_LISTEN", ":9999")
	t.Setenv("COMPASS_DATABASE_URL", "postgres://localhost/compass")
	t.Setenv("COMPASS_SESSION_SECRET", "env-secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Listen != ":9999" {
		t.Errorf("listen = %q, want :9999", cfg.Listen)
	}
	if cfg.DatabaseURL != "postgres://localhost/compass" {
		t.Errorf("database_url = %q", cfg.DatabaseURL)
	}
	if cfg.SessionSecret != "env-secret" {
		t.Errorf("session_secret = %q", cfg.SessionSecret)
	}
}

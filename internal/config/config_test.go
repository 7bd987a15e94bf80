package config

import (
	"os"
	"testing"
)

func setEnv(t *testing.T, key, value string) {
	t.Helper()
	old, had := os.LookupEnv(key)
	os.Setenv(key, value)
	t.Cleanup(func() {
		if had {
			os.Setenv(key, old)
		} else {
			os.Unsetenv(key)
		}
	})
}

func TestLoadDefaults(t *testing.T) {
	setEnv(t, "DATABASE_URL", "postgres://localhost/fasttrack")
	setEnv(t, "ENV", "development")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8000" {
		t.Errorf("expected default port 8000, got %s", cfg.Port)
	}
	if cfg.SessionTTLHours != 24 {
		t.Errorf("expected default session TTL 24, got %d", cfg.SessionTTLHours)
	}
	if cfg.DBMaxConns != 20 {
		t.Errorf("expected default max conns 20, got %d", cfg.DBMaxConns)
	}
	if !cfg.IsDev() {
		t.Error("expected development mode")
	}
}

func TestLoadRequiresDatabaseURL(t *testing.T) {
	setEnv(t, "DATABASE_URL", "")

	if _, err := Load(); err == nil {
		t.Error("expected error for missing DATABASE_URL")
	}
}

func TestDevModeDefaultSecret(t *testing.T) {
	setEnv(t, "DATABASE_URL", "postgres://localhost/fasttrack")
	setEnv(t, "ENV", "development")
	setEnv(t, "SESSION_SECRET", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.SessionSecret == "" {
		t.Error("expected a fallback session secret in development")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("development config should validate: %v", err)
	}
}

func TestValidateRejectsDefaultSecretInProduction(t *testing.T) {
	cfg := &Config{Env: "production", SessionSecret: "default_secret_key", SessionTTLHours: 24}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for default secret in production")
	}

	cfg.SessionSecret = "a-real-secret"
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidateSessionTTL(t *testing.T) {
	cfg := &Config{Env: "development", SessionSecret: "x", SessionTTLHours: 0}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for non-positive session TTL")
	}
}

package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DB_PATH", "JWT_SECRET", "JWT_TTL"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %s, want :8080", cfg.Addr)
	}
	if cfg.DBPath != "./data/tripledger.db" {
		t.Errorf("DBPath = %s, want default", cfg.DBPath)
	}
	if cfg.JWTTTL != 24*time.Hour {
		t.Errorf("JWTTTL = %s, want 24h", cfg.JWTTTL)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("DB_PATH", "/tmp/test.db")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_TTL", "45m")

	cfg := Load()

	if cfg.Addr != ":9999" {
		t.Errorf("Addr = %s, want :9999", cfg.Addr)
	}
	if cfg.DBPath != "/tmp/test.db" {
		t.Errorf("DBPath = %s, want /tmp/test.db", cfg.DBPath)
	}
	if cfg.JWTSecret != "s3cret" {
		t.Errorf("JWTSecret = %s, want s3cret", cfg.JWTSecret)
	}
	if cfg.JWTTTL != 45*time.Minute {
		t.Errorf("JWTTTL = %s, want 45m", cfg.JWTTTL)
	}
}

func TestLoadIgnoresBadTTL(t *testing.T) {
	t.Setenv("JWT_TTL", "not-a-duration")

	if cfg := Load(); cfg.JWTTTL != 24*time.Hour {
		t.Errorf("JWTTTL = %s, want 24h fallback", cfg.JWTTTL)
	}
}

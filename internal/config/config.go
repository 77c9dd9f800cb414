// Package config loads server configuration from the environment.
package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the server needs to start.
type Config struct {
	Addr      string
	DBPath    string
	JWTSecret string
	JWTTTL    time.Duration
}

// Load reads configuration from the environment, consulting a local .env
// file first when one exists. Missing values fall back to development
// defaults.
func Load() Config {
	// Absence of a .env file is not an error; real deployments set the
	// environment directly.
	_ = godotenv.Load()

	cfg := Config{
		Addr:      ":" + getEnv("PORT", "8080"),
		DBPath:    getEnv("DB_PATH", "./data/tripledger.db"),
		JWTSecret: getEnv("JWT_SECRET", "dev-only-secret-change-me"),
		JWTTTL:    24 * time.Hour,
	}

	if ttl := os.Getenv("JWT_TTL"); ttl != "" {
		if d, err := time.ParseDuration(ttl); err == nil {
			cfg.JWTTTL = d
		}
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

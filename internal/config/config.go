// Package config loads server configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	defaultPort     = 8080
	defaultDBPath   = "./data/tripsettle.db"
	defaultTokenTTL = 24 * time.Hour
)

// Config holds the server's runtime configuration.
type Config struct {
	// Port is the TCP port the HTTP server listens on.
	Port int

	// DBPath is the SQLite database file path.
	DBPath string

	// JWTSecret signs session tokens. Required.
	JWTSecret string

	// TokenTTL is how long issued tokens stay valid.
	TokenTTL time.Duration
}

// Load reads configuration from the environment, applying defaults for
// everything except JWT_SECRET.
func Load() (*Config, error) {
	cfg := &Config{
		Port:     defaultPort,
		DBPath:   getEnv("DB_PATH", defaultDBPath),
		TokenTTL: defaultTokenTTL,
	}

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		cfg.Port = port
	}

	if v := os.Getenv("TOKEN_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid TOKEN_TTL %q: %w", v, err)
		}
		cfg.TokenTTL = ttl
	}

	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

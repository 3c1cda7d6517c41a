package app

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config is read from the environment once at startup; nothing else in
// the codebase touches os.Getenv.
type Config struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	DBSSLMode  string

	RedisAddr string

	SigningKey []byte
	TokenTTL   time.Duration
}

func LoadConfig() (Config, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}

	ttl := 60 * time.Minute
	if raw := os.Getenv("TOKEN_TTL_MINUTES"); raw != "" {
		minutes, err := strconv.Atoi(raw)
		if err != nil || minutes <= 0 {
			return Config{}, fmt.Errorf("TOKEN_TTL_MINUTES must be a positive integer, got %q", raw)
		}
		ttl = time.Duration(minutes) * time.Minute
	}

	return Config{
		DBHost:     envOr("DB_HOST", "localhost"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBPort:     envOr("DB_PORT", "5432"),
		DBSSLMode:  envOr("DB_SSLMODE", "disable"),
		RedisAddr:  envOr("REDIS_ADDR", "localhost:6379"),
		SigningKey: []byte(secret),
		TokenTTL:   ttl,
	}, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

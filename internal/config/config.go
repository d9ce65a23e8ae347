package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

// AppConfig is the process configuration, read once from the environment.
type AppConfig struct {
	Port        string
	GinMode     string
	JWTSecret   string
	TokenTTL    time.Duration
	RedisAddr   string
	RedisPass   string
	RedisDB     int
	MockLatency time.Duration
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func mustAtoi(s string) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int value %q: %v", s, err)
	}
	return i
}

// Load reads the configuration with development defaults. REDIS_ADDR left
// empty keeps sessions in process memory; MOCK_LATENCY_MS adds a
// configurable delay to every core operation for UI backpressure testing.
func Load() AppConfig {
	return AppConfig{
		Port:        getenv("APP_PORT", "8080"),
		GinMode:     getenv("GIN_MODE", "debug"),
		JWTSecret:   getenv("JWT_SECRET", "contractdesk-dev-secret"),
		TokenTTL:    time.Duration(mustAtoi(getenv("TOKEN_TTL_MINUTES", "720"))) * time.Minute,
		RedisAddr:   getenv("REDIS_ADDR", ""),
		RedisPass:   getenv("REDIS_PASSWORD", ""),
		RedisDB:     mustAtoi(getenv("REDIS_DB", "0")),
		MockLatency: time.Duration(mustAtoi(getenv("MOCK_LATENCY_MS", "0"))) * time.Millisecond,
	}
}

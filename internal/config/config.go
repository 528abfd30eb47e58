package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port int
	Env  string

	// CORS
	AllowedOrigins []string

	// Steam Web API
	SteamAPIKey  string
	SteamBaseURL string

	// Logging
	LogPath   string
	LogPrefix string

	// Cache. CacheTTL of 0 keeps records for the process lifetime.
	CacheTTL time.Duration
	RedisURL string

	// Subscription watcher. WatchInterval of 0 disables it.
	WatchInterval    time.Duration
	WatchConcurrency int
}

// Load loads configuration from a .env file (when present) and environment
// variables. It returns an error if critical configuration is missing.
func Load() (*Config, error) {
	// Deployment config lives in a file, same as environment overrides.
	_ = godotenv.Load()

	cfg := &Config{
		Port: getEnvInt("PORT", 3000),
		Env:  getEnv("ENV", "development"),

		SteamBaseURL: getEnv("STEAM_API_BASE_URL", ""),

		LogPath:   getEnv("LOG_PATH", ""),
		LogPrefix: getEnv("LOG_PREFIX", "match-api"),

		CacheTTL: getEnvDuration("CACHE_TTL", 0),
		RedisURL: getEnv("REDIS_URL", ""),

		WatchInterval:    getEnvDuration("WATCH_INTERVAL", 5*time.Minute),
		WatchConcurrency: getEnvInt("WATCH_CONCURRENCY", 4),
	}

	// CORS
	origins := getEnv("ALLOWED_ORIGINS", "http://localhost:3000")
	rawOrigins := strings.Split(origins, ",")
	for _, o := range rawOrigins {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
		}
	}

	// Critical configuration - fail if missing
	var err error
	if cfg.SteamAPIKey, err = getEnvRequired("STEAM_API_KEY"); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvRequired(key string) (string, error) {
	if value := os.Getenv(key); value != "" {
		return value, nil
	}
	return "", fmt.Errorf("missing required environment variable: %s", key)
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

package config

import (
	"os"
	"strconv"
)

type AppConfig struct {
	// Server
	HTTPAddr string

	// Upstream commerce API
	UpstreamAPIURL   string
	UpstreamWSURL    string
	UpstreamAPIToken string

	// Redis (snapshot store); leave RedisAddr empty to run without it
	RedisAddr string
	RedisPass string

	// Console identity used to key the notification snapshot
	AdminID string

	// List-view tuning
	DefaultPageSize int
}

// Load loads environment variables into AppConfig.
func Load() AppConfig {
	return AppConfig{
		HTTPAddr: getEnv("HTTP_ADDR", ":8000"),

		UpstreamAPIURL:   getEnv("UPSTREAM_API_URL", "http://localhost:9000/api"),
		UpstreamWSURL:    getEnv("UPSTREAM_WS_URL", "ws://localhost:9000/socket"),
		UpstreamAPIToken: getEnv("UPSTREAM_API_TOKEN", ""),

		RedisAddr: getEnv("REDIS_ADDR", ""),
		RedisPass: getEnv("REDIS_PASS", ""),

		AdminID: getEnv("ADMIN_ID", "default"),

		DefaultPageSize: getEnvInt("DEFAULT_PAGE_SIZE", 12),
	}
}

// --- Helper functions ---

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

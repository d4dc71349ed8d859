package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultAPIKey is the build-time credential, set with
// -ldflags "-X zentube/internal/config.DefaultAPIKey=...".
// YOUTUBE_API_KEY takes precedence over it.
var DefaultAPIKey = ""

// Storage backends
const (
	BackendSQLite   = "sqlite"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

// Config holds all configuration values for the application
type Config struct {
	Port              string
	AllowedOrigins    []string
	YouTubeAPIKey     string
	YouTubeAPIBaseURL string
	RegionCode        string
	FeedPageSize      int
	RelatedLimit      int
	HistoryLimit      int
	HTTPClientTimeout time.Duration
	StorageBackend    string
	SQLitePath        string
	RedisURL          string
	DatabaseURL       string
	LogLevel          string
	Environment       string
}

// Load loads configuration from a .env file, if present, and environment variables
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:              getEnv("PORT", "8080"),
		AllowedOrigins:    parseOrigins(getEnv("ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:5174")),
		YouTubeAPIKey:     strings.TrimSpace(getEnv("YOUTUBE_API_KEY", DefaultAPIKey)),
		YouTubeAPIBaseURL: getEnv("YOUTUBE_API_BASE_URL", "https://youtube.googleapis.com/"),
		RegionCode:        getEnv("YOUTUBE_REGION_CODE", "US"),
		StorageBackend:    strings.ToLower(getEnv("STORAGE_BACKEND", BackendSQLite)),
		SQLitePath:        getEnv("SQLITE_PATH", ""),
		RedisURL:          getEnv("REDIS_URL", ""),
		DatabaseURL:       getEnv("DATABASE_URL", ""),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		Environment:       getEnv("ENVIRONMENT", "production"),
	}

	var err error
	if cfg.FeedPageSize, err = getIntEnv("FEED_PAGE_SIZE", 24, 1, 50); err != nil {
		return nil, err
	}
	if cfg.RelatedLimit, err = getIntEnv("RELATED_LIMIT", 15, 1, 50); err != nil {
		return nil, err
	}
	if cfg.HistoryLimit, err = getIntEnv("HISTORY_LIMIT", 50, 1, 1000); err != nil {
		return nil, err
	}
	if cfg.HTTPClientTimeout, err = getDurationEnv("HTTP_CLIENT_TIMEOUT", 15*time.Second); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the selected storage backend has what it needs
func (c *Config) Validate() error {
	switch c.StorageBackend {
	case BackendSQLite:
	case BackendRedis:
		if c.RedisURL == "" {
			return fmt.Errorf("REDIS_URL is required when STORAGE_BACKEND=redis")
		}
	case BackendPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required when STORAGE_BACKEND=postgres")
		}
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q", c.StorageBackend)
	}
	return nil
}

// getEnv gets an environment variable with a fallback value
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getIntEnv gets an integer environment variable within [min, max]
func getIntEnv(key string, fallback, min, max int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if n < min || n > max {
		return 0, fmt.Errorf("%s must be between %d and %d, got %d", key, min, max, n)
	}
	return n, nil
}

// getDurationEnv gets a duration environment variable such as "15s"
func getDurationEnv(key string, fallback time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

// parseOrigins parses comma-separated origins into a slice
func parseOrigins(origins string) []string {
	if origins == "" {
		return []string{}
	}

	parts := strings.Split(origins, ",")
	result := make([]string, 0, len(parts))

	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}

package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	DBUrl           string
	JWTSecret       string
	RedisURL        string
	ProfileCacheTTL time.Duration
	AppEnv          string
	LogLevel        string
	APIBaseURL      string
	APIToken        string
	BMRPolicy       string
	AllowMockData   bool
}

// LoadConfig reads the service configuration. JWT_SECRET is mandatory.
func LoadConfig() (*Config, error) {
	cfg := load()
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	return cfg, nil
}

// LoadClientConfig reads the subset needed to talk to the profile API.
func LoadClientConfig() (*Config, error) {
	cfg := load()
	if cfg.APIBaseURL == "" {
		return nil, fmt.Errorf("API_BASE_URL is required")
	}
	return cfg, nil
}

func load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	return &Config{
		Port:            getEnv("PORT", "8080"),
		DBUrl:           getEnv("DB_URL", ""),
		JWTSecret:       getEnv("JWT_SECRET", ""),
		RedisURL:        getEnv("REDIS_URL", ""),
		ProfileCacheTTL: getEnvDuration("PROFILE_CACHE_TTL", 10*time.Minute),
		AppEnv:          normalizeEnv(getEnv("APP_ENV", "production")),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		APIBaseURL:      strings.TrimRight(getEnv("API_BASE_URL", ""), "/"),
		APIToken:        getEnv("API_TOKEN", ""),
		BMRPolicy:       getEnv("BMR_POLICY", ""),
		AllowMockData:   getEnvBool("ALLOW_MOCK_PROFILE", true),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback
	}

	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback
	}
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil || d < 0 {
		return fallback
	}
	return d
}

func normalizeEnv(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "dev", "develop", "development", "local":
		return "development"
	case "prod", "production":
		return "production"
	case "stage", "staging":
		return "staging"
	case "test", "testing":
		return "test"
	default:
		return strings.ToLower(strings.TrimSpace(value))
	}
}

func (c *Config) IsDevelopment() bool {
	return c != nil && c.AppEnv == "development"
}

// MockFallbackEnabled is the single switch for the client's mock profile
// fallback. It can only be true in development.
func (c *Config) MockFallbackEnabled() bool {
	return c.IsDevelopment() && c.AllowMockData
}

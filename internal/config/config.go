package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string

	// Upstream completion API
	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAIBaseURL string

	// Static data origin (affiliates.json, data/states/*.json)
	SiteURL string

	// Redis (optional; enables shared rate-limit store + enrichment cache)
	RedisURL string

	// Rate limiting
	RateLimitMax           int
	RateLimitWindowSeconds int

	// CORS
	AllowedOrigins []string

	// Logging
	LogLevel  string
	LogFormat string
}

// Default production origins; overridable via ALLOWED_ORIGINS.
var defaultOrigins = []string{
	"https://rebateatlas.netlify.app",
	"https://rebateatlas.org",
	"https://www.rebateatlas.org",
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:                   getEnvOrDefault("PORT", "8080"),
		Env:                    getEnvOrDefault("ENV", "development"),
		OpenAIAPIKey:           mustGetEnv("OPENAI_API_KEY"),
		OpenAIModel:            getEnvOrDefault("OPENAI_MODEL", "gpt-4o-mini"),
		OpenAIBaseURL:          getEnvOrDefault("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		SiteURL:                mustGetEnv("SITE_URL"),
		RedisURL:               getEnvOrDefault("REDIS_URL", ""),
		RateLimitMax:           getEnvAsIntOrDefault("RATE_LIMIT_MAX", 15),
		RateLimitWindowSeconds: getEnvAsIntOrDefault("RATE_LIMIT_WINDOW_SECONDS", 60),
		AllowedOrigins:         getEnvAsListOrDefault("ALLOWED_ORIGINS", defaultOrigins),
		LogLevel:               getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:              getEnvOrDefault("LOG_FORMAT", "text"),
	}

	return cfg
}

func mustGetEnv(key string) string {
	val := os.Getenv(key)
	if val == "" {
		panic(fmt.Sprintf("required environment variable %s is not set", key))
	}
	return val
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}

func getEnvAsListOrDefault(key string, defaultVal []string) []string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	parts := strings.Split(val, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultVal
	}
	return out
}

package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	JWTSecret string // Required: shared secret for signing access tokens
	Issuer    string // Optional: issuer claim for tokens (default: capabilities)

	TokenTTL     time.Duration // Optional: access token lifetime (default: 8h)
	DatabaseFile string        // Optional: path to SQLite database file (default: ./capabilities.db)

	AdminEmail    string // Optional: seed admin account email (created when the user table is empty)
	AdminPassword string // Optional: seed admin account password (generated if empty)

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	return Config{
		JWTSecret:           os.Getenv("CAP_JWT_SECRET"),
		Issuer:              getEnvOrDefault("CAP_ISSUER", "capabilities"),
		TokenTTL:            getEnvDurationOrDefault("CAP_TOKEN_TTL", 8*time.Hour),
		DatabaseFile:        getEnvOrDefault("CAP_DATABASE_FILE", "capabilities.db"),
		AdminEmail:          os.Getenv("CAP_ADMIN_EMAIL"),
		AdminPassword:       os.Getenv("CAP_ADMIN_PASSWORD"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are taken as minutes.
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}

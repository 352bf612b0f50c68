// Package config centralises configuration parsing for the enrollment service.
package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config captures runtime configuration values for the enrollment service.
type Config struct {
	HTTPAddress     string
	StaticDir       string
	CORSAllowOrigin string
	LogLevel        string
	LogFormat       string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// Load reads environment variables into Config, applying defaults that
// stand on their own for local dev. A .env file in the working
// directory is honored when present.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		HTTPAddress:     getEnv("HTTP_ADDRESS", ":8080"),
		StaticDir:       getEnv("STATIC_DIR", "web/static"),
		CORSAllowOrigin: getEnv("CORS_ALLOW_ORIGIN", "*"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "json"),
		ReadTimeout:     getDurationEnv("HTTP_READ_TIMEOUT", 5*time.Second),
		WriteTimeout:    getDurationEnv("HTTP_WRITE_TIMEOUT", 10*time.Second),
		IdleTimeout:     getDurationEnv("HTTP_IDLE_TIMEOUT", 60*time.Second),
		ShutdownTimeout: getDurationEnv("SHUTDOWN_TIMEOUT", 15*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}

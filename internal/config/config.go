// Package config loads application configuration from the environment.
//
// CONFIG SOURCES, IN ORDER:
// 1. A .env file in the working directory, if present (loaded via godotenv —
//    values already set in the real environment win over the file)
// 2. Environment variables
// 3. Built-in defaults
//
// Every field has a default, so Load never fails on a blank environment —
// the client points at a local backend out of the box.
package config

import (
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the client.
//
// Note there is deliberately no HTTP timeout field: the client relies on
// transport defaults, matching the backend contract's assumption that a hung
// call simply hangs its loading indicator.
type Config struct {
	APIBaseURL string // base path of the remote event API, e.g. http://localhost:8080/api
	DBPath     string // local SQLite database for session + registration cache
	LogLevel   slog.Level
}

// Load reads configuration from the environment, consulting .env if present.
func Load() *Config {
	// Ignore the error — a missing .env file is the normal case.
	godotenv.Load()

	return &Config{
		APIBaseURL: strings.TrimRight(getEnv("EVENTHUB_API_URL", "http://localhost:8080/api"), "/"),
		DBPath:     getEnv("EVENTHUB_DB_PATH", "data/eventhub.db"),
		LogLevel:   parseLevel(getEnv("EVENTHUB_LOG_LEVEL", "info")),
	}
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

// parseLevel maps a level name to a slog.Level, defaulting to Info on
// anything it doesn't recognise.
func parseLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

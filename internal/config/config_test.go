package config

import (
	"log/slog"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	// t.Setenv with an empty value makes variables set by the host
	// environment (or a stray .env) not leak into the assertions.
	t.Setenv("EVENTHUB_API_URL", "")
	t.Setenv("EVENTHUB_DB_PATH", "")
	t.Setenv("EVENTHUB_LOG_LEVEL", "")

	cfg := Load()

	if cfg.APIBaseURL != "http://localhost:8080/api" {
		t.Errorf("APIBaseURL = %q, want default", cfg.APIBaseURL)
	}
	if cfg.DBPath != "data/eventhub.db" {
		t.Errorf("DBPath = %q, want default", cfg.DBPath)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v, want info", cfg.LogLevel)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("EVENTHUB_API_URL", "http://events.internal:9000/api/")
	t.Setenv("EVENTHUB_DB_PATH", "/tmp/test.db")
	t.Setenv("EVENTHUB_LOG_LEVEL", "debug")

	cfg := Load()

	// Trailing slash is trimmed so URL joining stays predictable.
	if cfg.APIBaseURL != "http://events.internal:9000/api" {
		t.Errorf("APIBaseURL = %q, want trimmed env value", cfg.APIBaseURL)
	}
	if cfg.DBPath != "/tmp/test.db" {
		t.Errorf("DBPath = %q, want env value", cfg.DBPath)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v, want debug", cfg.LogLevel)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
		{"info", slog.LevelInfo},
		{"nonsense", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

// Package config provides small helpers for reading configuration from
// environment variables with defaults. Malformed values fall back to the
// default with a warning instead of failing startup.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

// GetEnvString returns the environment variable value, or defaultValue when
// the variable is unset or empty. No validation, no logging.
func GetEnvString(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// GetEnvInt parses the environment variable as an integer. Unset, empty or
// unparseable values yield defaultValue; parse failures are logged.
//
//	batch := GetEnvInt("PUBLISH_BATCH_SIZE", 100)
func GetEnvInt(key string, defaultValue int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		slog.Warn("invalid integer value for environment variable, using default",
			slog.String("key", key),
			slog.String("value", raw),
			slog.Int("default", defaultValue))
		return defaultValue
	}
	return value
}

// GetEnvDuration parses the environment variable with time.ParseDuration
// ("30s", "5m", "1h30m"). Unset, empty or unparseable values yield
// defaultValue; parse failures are logged.
//
//	timeout := GetEnvDuration("PUBLISH_TIMEOUT", 5*time.Minute)
func GetEnvDuration(key string, defaultValue time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(raw)
	if err != nil {
		slog.Warn("invalid duration value for environment variable, using default",
			slog.String("key", key),
			slog.String("value", raw),
			slog.String("default", defaultValue.String()))
		return defaultValue
	}
	return value
}

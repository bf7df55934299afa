// Package config provides small helpers for reading typed values from
// environment variables. Invalid values never fail start-up on their own:
// the default is used and a warning is logged.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// GetEnvString returns the trimmed value of key, or defaultValue when the
// variable is unset or blank.
//
// Example:
//
//	addr := GetEnvString("SERVER_ADDR", ":5000")
func GetEnvString(key, defaultValue string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	return value
}

// GetEnvInt returns the value of key parsed as a base-10 integer.
//
// If the variable is unset the default is returned silently. If it is set
// but not an integer, a warning is logged and the default is returned.
//
// Example:
//
//	limit := GetEnvInt("NEWS_RESULT_LIMIT", 10)
func GetEnvInt(key string, defaultValue int) int {
	valueStr := strings.TrimSpace(os.Getenv(key))
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		slog.Warn("invalid integer value for environment variable, using default",
			slog.String("key", key),
			slog.String("value", valueStr),
			slog.Int("default", defaultValue),
			slog.String("error", err.Error()))
		return defaultValue
	}
	return value
}

// GetEnvDuration returns the value of key parsed with time.ParseDuration
// ("10s", "1m30s").
//
// Unset variables yield the default; unparsable values yield the default
// and a warning.
func GetEnvDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := strings.TrimSpace(os.Getenv(key))
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		slog.Warn("invalid duration value for environment variable, using default",
			slog.String("key", key),
			slog.String("value", valueStr),
			slog.String("default", defaultValue.String()),
			slog.String("error", err.Error()))
		return defaultValue
	}
	return value
}

// GetEnvStringList splits a comma-separated variable into trimmed, non-empty
// parts. The default is returned when nothing usable is left.
//
// Example:
//
//	// CORS_ALLOWED_ORIGINS="https://a.example, https://b.example"
//	origins := GetEnvStringList("CORS_ALLOWED_ORIGINS", []string{"*"})
//	// ["https://a.example", "https://b.example"]
func GetEnvStringList(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if strings.TrimSpace(valueStr) == "" {
		return defaultValue
	}

	parts := strings.Split(valueStr, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}

	if len(result) == 0 {
		return defaultValue
	}
	return result
}

// LookupEnvSecret returns the raw value of a credential variable and whether
// it is usable. Secrets are never logged, so no warning is emitted here.
func LookupEnvSecret(key string) (string, bool) {
	value, ok := os.LookupEnv(key)
	if !ok {
		return "", false
	}
	value = strings.TrimSpace(value)
	return value, value != ""
}

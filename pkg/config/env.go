// Package config reads typed settings from environment variables.
// Invalid values never fail start-up: the default is used and a warning is logged.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// GetEnvString returns the value of key, or defaultValue when unset or empty.
//
//	dsn := GetEnvString("DATABASE_URL", "file:blog.db")
func GetEnvString(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// GetEnvInt returns the value of key parsed as an int.
//
//	port := GetEnvInt("DB_MAX_OPEN_CONNS", 25)
func GetEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(strings.TrimSpace(valueStr))
	if err != nil {
		warnInvalid(key, valueStr, strconv.Itoa(defaultValue), err)
		return defaultValue
	}
	return value
}

// GetEnvBool returns the value of key parsed with strconv.ParseBool
// ("1", "t", "true", "0", "f", "false" and their case variants).
func GetEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		warnInvalid(key, valueStr, strconv.FormatBool(defaultValue), err)
		return defaultValue
	}
	return value
}

// GetEnvDuration returns the value of key parsed with time.ParseDuration ("30s", "1h30m").
func GetEnvDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		warnInvalid(key, valueStr, defaultValue.String(), err)
		return defaultValue
	}
	return value
}

// GetEnvStringList returns a comma-separated list from key. Items are trimmed
// and blanks dropped; an all-blank value yields defaultValue.
//
//	// POST_CATEGORIES="Fiction, Non-Fiction, Poetry"
//	cats := GetEnvStringList("POST_CATEGORIES", nil) // ["Fiction" "Non-Fiction" "Poetry"]
func GetEnvStringList(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
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

func warnInvalid(key, value, defaultValue string, err error) {
	slog.Warn("invalid value for environment variable, using default",
		slog.String("key", key),
		slog.String("value", value),
		slog.String("default", defaultValue),
		slog.String("error", err.Error()))
}

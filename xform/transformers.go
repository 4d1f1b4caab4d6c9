// Package xform holds small string transformers used to parse configuration values.
// Each has the shape func(A) (B, error) so it can be chained with envutil.Map.
package xform

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

// ErrInvalidLogLevel is returned when a log level string is not recognized.
var ErrInvalidLogLevel = errors.New("invalid log level")

// TrimString removes leading and trailing whitespace from a string.
func TrimString(s string) (string, error) {
	return strings.TrimSpace(s), nil
}

// ToLower lowercases a string.
func ToLower(s string) (string, error) {
	return strings.ToLower(s), nil
}

// Bool parses a string as a boolean value.
// Accepts: "1", "t", "T", "true", "TRUE", "True", "0", "f", "F", "false", "FALSE", "False".
func Bool(value string) (bool, error) {
	return strconv.ParseBool(value)
}

// SlogLevel parses "debug", "info", "warn" or "error" (case-sensitive; pair it with
// ToLower) into a slog.Level.
func SlogLevel(value string) (slog.Level, error) {
	switch value {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, value)
	}
}

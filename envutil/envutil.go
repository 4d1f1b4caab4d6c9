// Package envutil reads typed configuration from environment variables.
//
//	logJSON := envutil.Bool(ctx, "LOG_JSON", envutil.Default(false)).ValueOrElse(false)
package envutil

import (
	"context"
	"log/slog"
	"os"

	"github.com/amp-labs/vval/xform"
)

// get returns a Reader for key, preferring a context override over the process environment.
func get(ctx context.Context, key string) Reader[string] {
	val, ok := getEnvOverride(ctx, key)
	if !ok {
		val, ok = os.LookupEnv(key)
	}

	return Reader[string]{
		key:     key,
		present: ok,
		value:   val,
	}
}

// String returns a Reader for the given environment variable key.
func String(ctx context.Context, key string, opts ...Option[string]) Reader[string] {
	return apply(get(ctx, key), opts)
}

// Bool returns a Reader that parses the variable with xform.Bool.
func Bool(ctx context.Context, key string, opts ...Option[bool]) Reader[bool] {
	return apply(Map(Map(get(ctx, key), xform.TrimString), xform.Bool), opts)
}

// SlogLevel returns a Reader that parses the variable as a log level, ignoring case
// and surrounding whitespace.
func SlogLevel(ctx context.Context, key string, opts ...Option[slog.Level]) Reader[slog.Level] {
	return apply(Map(Map(Map(get(ctx, key), xform.TrimString), xform.ToLower), xform.SlogLevel), opts)
}

func apply[T any](rdr Reader[T], opts []Option[T]) Reader[T] {
	for _, opt := range opts {
		if opt != nil {
			rdr = opt(rdr)
		}
	}

	return rdr
}

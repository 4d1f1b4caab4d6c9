package envutil

import (
	"context"

	"github.com/amp-labs/vval/contexts"
)

type envContextKey string

// WithEnvOverride makes every reader built from ctx see value for key, whatever the
// process environment holds.
func WithEnvOverride(ctx context.Context, key string, value string) context.Context {
	return contexts.WithValue[envContextKey, string](ctx, envContextKey(key), value)
}

func getEnvOverride(ctx context.Context, key string) (string, bool) {
	return contexts.GetValue[envContextKey, string](ctx, envContextKey(key))
}

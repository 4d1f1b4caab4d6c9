// Package contexts provides typed helpers around context.Context values.
package contexts

import "context"

// EnsureContext returns the first non-nil context passed in. If every value is nil
// (or none are given), context.Background() is returned.
func EnsureContext(ctx ...context.Context) context.Context {
	for _, c := range ctx {
		if c != nil {
			return c
		}
	}

	return context.Background()
}

// WithValue stores value under key with compile-time typing of both.
// A nil ctx is replaced with context.Background().
func WithValue[K any, V any](ctx context.Context, key K, value V) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithValue(ctx, key, value)
}

// GetValue is the typed counterpart of ctx.Value. It returns false when ctx is nil,
// when nothing is stored under key, or when the stored value is not a V.
func GetValue[K any, V any](ctx context.Context, key K) (V, bool) {
	var zero V

	if ctx == nil {
		return zero, false
	}

	v, ok := ctx.Value(key).(V)
	if !ok {
		return zero, false
	}

	return v, true
}

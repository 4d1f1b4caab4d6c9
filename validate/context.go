package validate

import (
	"context"

	"github.com/amp-labs/vval/contexts"
)

type contextKey string

const optionsKey contextKey = "validateOptions"

// WithOptions returns a context carrying default options for every validation call made
// with it. Options passed to a call are applied after these, so they win.
//
//	ctx = validate.WithOptions(ctx, validate.WithAllErrors())
//	_, err := validate.ValidateIterable(ctx, ports, reflect.TypeFor[int]())
func WithOptions(ctx context.Context, opts ...Option) context.Context {
	existing := contextOptions(ctx)

	all := make([]Option, 0, len(existing)+len(opts))
	all = append(all, existing...)
	all = append(all, opts...)

	return contexts.WithValue[contextKey, []Option](ctx, optionsKey, all)
}

func contextOptions(ctx context.Context) []Option {
	opts, _ := contexts.GetValue[contextKey, []Option](ctx, optionsKey)

	return opts
}

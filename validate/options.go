package validate

import "context"

// DefaultName is used in messages when no Name option is given.
const DefaultName = "value"

type config struct {
	name      string
	allErrors bool
}

// Option configures a single validation call.
type Option func(*config)

// Name sets the variable name used in error messages.
func Name(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// WithAllErrors makes ValidateIterable check every element and report all failures
// instead of stopping at the first one.
func WithAllErrors() Option {
	return func(c *config) {
		c.allErrors = true
	}
}

// newConfig applies the options stored in ctx by WithOptions, then opts.
func newConfig(ctx context.Context, opts []Option) *config {
	cfg := &config{name: DefaultName}

	for _, opt := range contextOptions(ctx) {
		if opt != nil {
			opt(cfg)
		}
	}

	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}

	if cfg.name == "" {
		cfg.name = DefaultName
	}

	return cfg
}

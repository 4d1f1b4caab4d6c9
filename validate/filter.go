package validate

import (
	"context"
	"fmt"

	"github.com/amp-labs/vval/contexts"
	"github.com/amp-labs/vval/errors"
)

// ValidateFilter returns nil if predicate(value) is true, and an errors.ErrValidation
// error otherwise. A nil predicate fails with errors.ErrMalformedSpec. A panic in the
// predicate is not recovered.
func ValidateFilter[T any](ctx context.Context, value T, predicate func(T) bool, opts ...Option) error {
	ctx = contexts.EnsureContext(ctx) //nolint:contextcheck
	cfg := newConfig(ctx, opts)

	_, err := run(ctx, opValidateFilter, cfg, func(context.Context) (struct{}, error) {
		if predicate == nil {
			return struct{}{}, fmt.Errorf("%w: the filter for '%s' is not callable", errors.ErrMalformedSpec, cfg.name)
		}

		if predicate(value) {
			return struct{}{}, nil
		}

		actual := fmt.Sprintf("%v", value)

		return struct{}{}, rejected("filter", cfg.name, actual,
			"'%s' did not satisfy the filter, got: '%s'.", cfg.name, actual)
	})

	return err
}

// Package assert provides type assertion utilities with error handling.
package assert

import (
	"fmt"

	"github.com/amp-labs/vval/errors"
)

// Type asserts that val holds a T. On mismatch it returns the zero T and an error
// wrapping errors.ErrWrongType that names both types.
//
//nolint:ireturn
func Type[T any](val any) (T, error) {
	of, ok := val.(T)
	if !ok {
		return of, fmt.Errorf("%w: expected type %T, but received %T", errors.ErrWrongType, of, val)
	}

	return of, nil
}

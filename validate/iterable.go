package validate

import (
	"context"
	"errors"
	"fmt"

	"github.com/amp-labs/vval/contexts"
	vvalErrors "github.com/amp-labs/vval/errors"
	"github.com/amp-labs/vval/spec"
)

// ValidateIterable reports whether every element of iterable matches typ, as Validate
// would check it. An empty iterable passes for any typ, even a malformed one.
//
// The first failing element's error is returned; its message names the element as
// '<name>[<index>]'. With WithAllErrors, every element is checked and the rejections are
// joined. A non-iterable argument is itself a rejection (errors.ErrValidation).
func ValidateIterable(ctx context.Context, iterable any, typ any, opts ...Option) (bool, error) {
	ctx = contexts.EnsureContext(ctx) //nolint:contextcheck
	cfg := newConfig(ctx, opts)

	return run(ctx, opValidateIterable, cfg, func(context.Context) (bool, error) {
		elems, ok := spec.Elements(iterable)
		if !ok {
			actual := spec.TypeName(iterable)

			return false, rejected("iterable", cfg.name, actual,
				"Expected an iterable for '%s', got: '%s'.", cfg.name, actual)
		}

		var collected vvalErrors.Collection

		index := 0

		for elem := range elems {
			_, err := validateValue(elem, typ, fmt.Sprintf("%s[%d]", cfg.name, index))
			if err != nil {
				if !cfg.allErrors || !errors.Is(err, vvalErrors.ErrValidation) {
					return false, err
				}

				collected.Add(err)
			}

			index++
		}

		if collected.HasError() {
			return false, collected.GetError()
		}

		return true, nil
	})
}

package validate

import (
	"context"

	"github.com/amp-labs/vval/contexts"
	"github.com/amp-labs/vval/spec"
)

// Validate reports whether value is an instance of any type in typ.
//
// typ may be a single type (reflect.Type or spec.Unit), a union, or an iterable of type
// specifications nested to any depth. Units are tried in order and the first match wins.
// When nothing matches, the error wraps errors.ErrValidation and reads
//
//	Expected 'int, float64' for 'port', got: 'string'.
//
// A malformed specification fails with errors.ErrMalformedSpec (or ErrMalformedUnit for a
// bad union member), and a generic type with errors.ErrUnsupportedGeneric, but only once
// matching reaches it: an earlier unit that matches wins first.
func Validate(ctx context.Context, value any, typ any, opts ...Option) (bool, error) {
	ctx = contexts.EnsureContext(ctx) //nolint:contextcheck
	cfg := newConfig(ctx, opts)

	return run(ctx, opValidate, cfg, func(context.Context) (bool, error) {
		return validateValue(value, typ, cfg.name)
	})
}

func validateValue(value any, typ any, name string) (bool, error) {
	units, err := spec.Normalize(typ)
	if err != nil {
		return false, err
	}

	for _, unit := range units {
		ok, err := ValidateSingle(value, unit)
		if err != nil {
			return false, err
		}

		if ok {
			return true, nil
		}
	}

	expected := unitNames(units)
	actual := spec.TypeName(value)

	return false, rejected(expected, name, actual,
		"Expected '%s' for '%s', got: '%s'.", expected, name, actual)
}

package validate

import (
	"fmt"

	"github.com/amp-labs/vval/errors"
	"github.com/amp-labs/vval/spec"
)

// ValidateSingle reports whether value matches one unit.
//
// A generic unit is refused with errors.ErrUnsupportedGeneric whatever the value. The
// callable marker matches any non-nil func, spec.Nil matches only a nil value, and a type
// unit matches values of exactly that type (or implementing it, for interface types).
// Anything else fails with errors.ErrMalformedUnit.
func ValidateSingle(value any, unit spec.Unit) (bool, error) {
	if spec.IsGeneric(unit) {
		return false, fmt.Errorf("%w: '%s' is parameterized, which is not supported; use a plain type",
			errors.ErrUnsupportedGeneric, unit.Name())
	}

	switch unit.Kind() {
	case spec.KindCallable:
		return spec.IsCallable(value), nil
	case spec.KindNil:
		return value == nil, nil
	case spec.KindType:
		return spec.IsInstance(value, unit.ReflectType()), nil
	case spec.KindInvalid:
	}

	return false, fmt.Errorf("%w: expected a type or the callable marker, got: '%v' (%s)",
		errors.ErrMalformedUnit, unit.Raw(), spec.TypeName(unit.Raw()))
}

package spec

import (
	"fmt"
	"iter"
	"reflect"

	"github.com/amp-labs/vval/errors"
)

// ExtractTypes flattens an iterable of specifications into matchable units, in the
// order they are met. Unions contribute their members, nested iterables are flattened
// recursively, and duplicates are kept. Generic types are accepted here; matching them
// fails later with errors.ErrUnsupportedGeneric.
//
// Fails with errors.ErrMalformedSpec if specs is not iterable, or on the first element
// that is neither a type, the callable marker, a union nor an iterable of those.
// Strings are never specifications.
func ExtractTypes(specs any) ([]Unit, error) {
	elems, ok := specElements(specs)
	if !ok {
		return nil, fmt.Errorf("%w: expected an iterable of type specifications, got: '%v' (%s)",
			errors.ErrMalformedSpec, specs, TypeName(specs))
	}

	var units []Unit

	for elem := range elems {
		var err error

		units, err = appendUnits(units, elem)
		if err != nil {
			return nil, err
		}
	}

	return units, nil
}

// Normalize turns any accepted specification into units. Iterables are flattened (a
// union directly yields its members), a single type or unit is one unit, and a lone
// func is kept as an invalid unit so that matching reports it.
func Normalize(typ any) ([]Unit, error) {
	if u, ok := typ.(Union); ok {
		return u.Members(), nil
	}

	if _, ok := specElements(typ); ok {
		return ExtractTypes(typ)
	}

	switch t := typ.(type) {
	case Unit:
		return []Unit{t}, nil
	case reflect.Type:
		return []Unit{Type(t)}, nil
	}

	if IsCallable(typ) {
		return []Unit{invalid(typ)}, nil
	}

	return nil, malformed(typ)
}

func appendUnits(units []Unit, elem any) ([]Unit, error) {
	switch e := elem.(type) {
	case Unit:
		if e.kind == KindInvalid {
			return nil, malformed(e.raw)
		}

		return append(units, e), nil
	case reflect.Type:
		return append(units, Type(e)), nil
	case Union:
		return append(units, e.members...), nil
	}

	if _, ok := specElements(elem); ok {
		nested, err := ExtractTypes(elem)
		if err != nil {
			return nil, err
		}

		return append(units, nested...), nil
	}

	return nil, malformed(elem)
}

func specElements(obj any) (iter.Seq[any], bool) {
	if obj != nil && reflect.TypeOf(obj).Kind() == reflect.String {
		return nil, false
	}

	return Elements(obj)
}

func malformed(elem any) error {
	return fmt.Errorf("%w: expected a type, the callable marker, a union or an iterable of those, "+
		"got: '%v' (%s)", errors.ErrMalformedSpec, elem, TypeName(elem))
}

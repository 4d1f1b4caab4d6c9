// Package compare provides utilities for comparing values.
package compare

import "reflect"

// Comparable is implemented by types that decide equality themselves.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Equal reports whether a and b are equal. When a implements Comparable[any] its
// Equals method decides; otherwise reflect.DeepEqual is used, so values of different
// dynamic types are never equal and slices or maps compare by content.
func Equal(a, b any) bool {
	if c, ok := a.(Comparable[any]); ok {
		return c.Equals(b)
	}

	return reflect.DeepEqual(a, b)
}

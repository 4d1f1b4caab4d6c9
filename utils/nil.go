package utils //nolint:revive // utils is an appropriate package name for utility functions

import "reflect"

// IsNilish reports whether val is a literal nil, or a typed value whose
// kind can be nil (func, map, pointer, slice, ...) and is.
func IsNilish(val any) bool {
	if val == nil {
		return true
	}

	rv := reflect.ValueOf(val)

	switch rv.Kind() { //nolint:exhaustive
	case reflect.Chan, reflect.Func, reflect.Map, reflect.Pointer,
		reflect.UnsafePointer, reflect.Interface, reflect.Slice:
		return rv.IsNil()
	default:
		return false
	}
}

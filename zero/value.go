// Package zero provides the zero value of a type parameter.
package zero

// Value returns the zero value for type T.
//
// Example:
//
//	var ok = zero.Value[bool]()       // false
//	var units = zero.Value[[]int]()   // nil
func Value[T any]() T {
	var zeroVal T

	return zeroVal
}

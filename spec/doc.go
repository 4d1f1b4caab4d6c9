// Package spec describes type specifications and flattens them into matchable units.
//
// A type specification is one of:
//
//   - an atomic type: a reflect.Type, or a Unit built with Type / TypeFor
//   - the callable marker: Callable
//   - a union: a Union built with OneOf or Optional
//   - any Go iterable (slice, array, iter.Seq[any], Iterable) holding specifications,
//     nested as deeply as needed
//
// ExtractTypes and Normalize turn a specification into a flat, ordered []Unit, which the
// validate package tests values against. Nothing here is cached; specifications are
// expected to be freshly built literals, and cyclic ones are not detected.
//
// Generic (parameterized) types such as Box[int] can appear in a specification, but they
// are refused when matched: see IsGeneric.
package spec

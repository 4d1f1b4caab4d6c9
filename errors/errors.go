// Package errors holds the sentinel errors shared by the vval packages, plus a small
// accumulator for reporting several failures at once.
//
// Every error returned by spec and validate wraps exactly one of the four kind sentinels
// (ErrMalformedSpec, ErrUnsupportedGeneric, ErrMalformedUnit, ErrValidation), so callers
// can pick out the kind they care about with errors.Is.
package errors

import "errors"

var (
	// ErrMalformedSpec means the caller built a type specification out of something that is
	// neither a type, a union, the callable marker, nor an iterable of those.
	ErrMalformedSpec = errors.New("malformed type specification")

	// ErrUnsupportedGeneric means the specification names a generic (parameterized) type.
	// Such types are never matched structurally; ask for the non-generic type instead.
	ErrUnsupportedGeneric = errors.New("unsupported generic type")

	// ErrMalformedUnit means a single matchable unit was neither a type nor the callable marker.
	ErrMalformedUnit = errors.New("malformed matchable unit")

	// ErrValidation is the ordinary rejection of bad input data: the value matched none of
	// the allowed types, was not one of the allowed options, or failed a filter.
	ErrValidation = errors.New("validation failed")

	ErrWrongType     = errors.New("wrong type")
	ErrPanicRecovery = errors.New("recovered from panic")
)

// Collection is a thread-unsafe utility for accumulating multiple errors.
// It provides methods to add errors, check for errors, and retrieve them as a single combined error.
// Use this when you need to collect errors from multiple operations and return them together.
type Collection struct {
	errors []error
}

// Add appends an error to the collection. Nil errors are automatically ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// Clear removes all errors from the collection, resetting it to an empty state.
func (c *Collection) Clear() {
	c.errors = nil
}

// HasError returns true if the collection contains at least one error.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// Len returns the number of errors collected so far.
func (c *Collection) Len() int {
	return len(c.errors)
}

// GetError returns the collected errors as a single error.
// Returns nil if the collection is empty, the single error if there's only one,
// or a joined error (using errors.Join) if there are multiple errors.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}

// Package lazy provides values that are computed on first use.
package lazy

import "sync"

// Of is a lazy value that is initialized at most once.
type Of[T any] struct {
	once   sync.Once
	create func() T
	value  T
}

// Get returns the value, computing it on the first call. Safe for concurrent use.
func (t *Of[T]) Get() T { //nolint:ireturn
	t.once.Do(func() {
		if t.create != nil {
			t.value = t.create()
			t.create = nil
		}
	})

	return t.value
}

// New creates a new lazy value. The callback will be called later, when the
// value is first accessed.
func New[T any](f func() T) *Of[T] {
	return &Of[T]{create: f}
}

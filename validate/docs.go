// Package validate checks values against type specifications at runtime.
//
// A type specification is a reflect.Type, a spec.Unit, a spec.Union, the spec.Callable
// marker, or any iterable nesting of those (see package spec). The entry points are:
//
//   - Validate: does the value match any of the specified types?
//   - ValidateIterable: does every element of an iterable match?
//   - ValidateOption: is the value one of an allowed set?
//   - ValidateFilter: does the value satisfy a predicate?
//
// Every failure wraps exactly one sentinel from package errors, so callers can tell bad
// data from a bad call:
//
//	ok, err := validate.Validate(ctx, port, reflect.TypeFor[int](), validate.Name("port"))
//	switch {
//	case errors.Is(err, vvalErrors.ErrValidation):
//	    // the data is wrong; err.Error() is
//	    // "validation failed: Expected 'int' for 'port', got: 'string'."
//	case err != nil:
//	    // the specification itself is wrong (malformed, or generic)
//	}
//
// Each call runs inside an OpenTelemetry span when a tracer is present in the context
// (spans.WithTracer), is counted in Prometheus metrics, and logs rejections at debug
// level and misuse at warn level through logger.Get(ctx).
package validate

package spans

import (
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// WithAttribute adds an attribute to the span when it is created.
//
//	spans.StartErr(ctx, "vval.validate_option",
//	    spans.WithAttribute("vval.variable", attribute.StringValue(name)),
//	).Enter(check)
func WithAttribute(key attribute.Key, value attribute.Value) Option {
	return func(r *runner) {
		r.sso = append(r.sso, trace.WithAttributes(attribute.KeyValue{
			Key:   key,
			Value: value,
		}))
	}
}

// WithSpanKind sets the OpenTelemetry span kind. The default is SpanKindServer; library
// code that runs inside the caller's own work should use SpanKindInternal.
func WithSpanKind(kind trace.SpanKind) Option {
	return func(r *runner) {
		r.spanKind = kind
	}
}

// WithErrorMessage sets a prefix for the span status description when the function
// returns an error.
func WithErrorMessage(description string) Option {
	return func(r *runner) {
		r.failure = description
	}
}

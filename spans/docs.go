// Package spans runs functions inside OpenTelemetry spans with a small fluent API.
//
// The orchestrators handle the span lifecycle: errors are recorded and set the span
// status, panics are recorded (with a stack trace) and re-raised. Two signatures are
// supported, both receiving the context and the span:
//   - StartErr: func(context.Context, trace.Span) error
//   - StartValErr: func(context.Context, trace.Span) (T, error)
//
// Usage example:
//
//	ctx = spans.WithTracer(ctx, tracer)
//	ok, err := spans.StartValErr[bool](ctx, "vval.validate",
//	    spans.WithAttribute("vval.variable", attribute.StringValue("port")),
//	).Enter(func(ctx context.Context, span trace.Span) (bool, error) {
//	    return check(ctx)
//	})
package spans

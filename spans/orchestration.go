package spans

import (
	"context"

	"github.com/amp-labs/vval/zero"
	"go.opentelemetry.io/otel/trace"
)

// StartErrorOrchestrator runs a function returning an error. Create via spans.StartErr().
type StartErrorOrchestrator struct {
	ctx  context.Context //nolint:containedctx
	name string
	opts []Option
}

// StartErr creates an orchestrator for a function that can fail but returns no value.
// Errors returned by the function are recorded in the span with an Error status.
//
//	err := spans.StartErr(ctx, "vval.validate_filter").Enter(func(ctx context.Context, span trace.Span) error {
//	    return check(ctx)
//	})
func StartErr(ctx context.Context, name string, opts ...Option) *StartErrorOrchestrator {
	return &StartErrorOrchestrator{
		ctx:  ctx,
		name: name,
		opts: opts,
	}
}

// Enter executes f within the span and returns its error.
func (o *StartErrorOrchestrator) Enter(f func(ctx context.Context, span trace.Span) error) error {
	if f == nil {
		return nil
	}

	_, err := invoke[struct{}](o.ctx, o.name, func(ctx context.Context, span trace.Span) (struct{}, error) {
		return struct{}{}, f(ctx, span)
	}, o.opts...)

	return err
}

// StartValueErrorOrchestrator runs a function returning a value and an error.
// Create via spans.StartValErr().
type StartValueErrorOrchestrator[T any] struct {
	ctx  context.Context //nolint:containedctx
	name string
	opts []Option
}

// StartValErr creates an orchestrator for a fallible function that produces a result.
//
//	ok, err := spans.StartValErr[bool](ctx, "vval.validate",
//	    spans.WithAttribute("vval.variable", attribute.StringValue(name)),
//	).Enter(func(ctx context.Context, span trace.Span) (bool, error) {
//	    return match(ctx)
//	})
func StartValErr[Value any](ctx context.Context, name string, opts ...Option) *StartValueErrorOrchestrator[Value] {
	return &StartValueErrorOrchestrator[Value]{
		ctx:  ctx,
		name: name,
		opts: opts,
	}
}

// Enter executes f within the span. When f fails, the zero value is returned with the
// error, whatever value f produced.
func (o *StartValueErrorOrchestrator[T]) Enter(f func(ctx context.Context, span trace.Span) (T, error)) (T, error) {
	if f == nil {
		return zero.Value[T](), nil
	}

	return invoke[T](o.ctx, o.name, f, o.opts...)
}

package spans

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/amp-labs/vval/assert"
	"github.com/amp-labs/vval/utils"
	"github.com/amp-labs/vval/zero"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Option configures a runner. Options are applied when an orchestrator enters.
type Option func(*runner)

func newRunner(tracer trace.Tracer, spanName string, opts ...Option) *runner {
	r := &runner{
		spanName: spanName,
		spanKind: trace.SpanKindServer,
		tracer:   tracer,
	}

	for _, option := range opts {
		if option != nil {
			option(r)
		}
	}

	return r
}

// runner executes a function within an OpenTelemetry span. It handles span lifecycle,
// error recording, panic recovery and status reporting.
type runner struct {
	spanName string
	// failure prefixes the span status description on error (optional).
	failure  string
	spanKind trace.SpanKind
	tracer   trace.Tracer

	// sso are span start options passed to tracer.Start().
	sso []trace.SpanStartOption
}

// runWithSpan executes operation within a span. A panic is recorded on the span
// (attribute "panic" and an error status) and then re-raised.
func (r *runner) runWithSpan(
	ctx context.Context,
	operation func(ctx context.Context, span trace.Span) (any, error),
) (valOut any, errOut error) {
	if r == nil || r.tracer == nil {
		return operation(ctx, trace.SpanFromContext(ctx))
	}

	opts := make([]trace.SpanStartOption, len(r.sso)+1)

	copy(opts, r.sso)
	opts[len(r.sso)] = trace.WithSpanKind(r.spanKind)

	ctx, span := r.tracer.Start(ctx, r.spanName, opts...) //nolint:spancheck

	defer func() {
		defer span.End()

		if panicErr := recover(); panicErr != nil {
			span.SetAttributes(attribute.KeyValue{
				Key:   "panic",
				Value: attribute.Int64Value(1),
			})

			err := utils.GetPanicRecoveryError(panicErr, debug.Stack())

			if errOut == nil {
				errOut = err
			} else {
				errOut = errors.Join(errOut, err)
			}

			span.RecordError(errOut)
			r.setErrorStatus(span, errOut)

			panic(panicErr)
		}
	}()

	val, err := operation(ctx, span)
	if err != nil {
		span.RecordError(err)
		r.setErrorStatus(span, err)
	} else {
		span.SetStatus(codes.Ok, "ok")
	}

	return val, err
}

func (r *runner) setErrorStatus(span trace.Span, err error) {
	if len(r.failure) > 0 {
		span.SetStatus(codes.Error, fmt.Sprintf("%s: %s", r.failure, err.Error()))
	} else {
		span.SetStatus(codes.Error, err.Error())
	}
}

// invoke executes call within a span if a tracer is found in the context. If not, call
// runs bare and the instrumentation gap is counted.
func invoke[T any](
	ctx context.Context, name string,
	call func(ctx context.Context, span trace.Span) (T, error), opts ...Option,
) (T, error) {
	tracer, found := TracerFromContext(ctx)
	if !found {
		spanWithoutTracerCounter.WithLabelValues(name).Inc()

		value, err := call(ctx, trace.SpanFromContext(ctx))
		if err != nil {
			return zero.Value[T](), err
		}

		return value, nil
	}

	r := newRunner(tracer, name, opts...)

	ret, err := r.runWithSpan(ctx, func(ctx context.Context, span trace.Span) (any, error) {
		return call(ctx, span)
	})
	if err != nil {
		return zero.Value[T](), err
	}

	value, err := assert.Type[T](ret)
	if err != nil {
		return zero.Value[T](), err
	}

	return value, nil
}

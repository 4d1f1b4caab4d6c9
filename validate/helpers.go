package validate

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	vvalErrors "github.com/amp-labs/vval/errors"
	"github.com/amp-labs/vval/logger"
	"github.com/amp-labs/vval/spans"
	"github.com/amp-labs/vval/spec"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// run executes check inside a span, then records metrics and logs the outcome.
func run[T any](
	ctx context.Context, operation string, cfg *config,
	check func(ctx context.Context) (T, error),
) (T, error) {
	start := time.Now()

	result, err := spans.StartValErr[T](ctx, "vval."+operation,
		spans.WithSpanKind(trace.SpanKindInternal),
		spans.WithAttribute("vval.operation", attribute.StringValue(operation)),
		spans.WithAttribute("vval.variable", attribute.StringValue(cfg.name)),
	).Enter(func(ctx context.Context, _ trace.Span) (T, error) {
		return check(ctx)
	})

	outcome := outcomeOf(err)

	validationsTotal.WithLabelValues(operation, outcome).Inc()
	validationTime.WithLabelValues(operation, strconv.FormatBool(err != nil)).
		Observe(float64(time.Since(start).Microseconds()) / 1000.0) //nolint:mnd

	switch outcome {
	case outcomeRejected:
		// The error carries the variable (and expected/actual) as annotations.
		logger.Get(ctx).Debug("value rejected",
			"operation", operation, "error", err)
	case outcomeMisuse:
		logger.Get(ctx).Warn("invalid validation call",
			"operation", operation, "variable", cfg.name, "error", err)
	}

	return result, err
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return outcomeOK
	case errors.Is(err, vvalErrors.ErrValidation):
		return outcomeRejected
	default:
		return outcomeMisuse
	}
}

// rejected builds an ErrValidation error and annotates it with the expected and actual
// descriptions, so that the log handler can emit them as attributes.
func rejected(expected, variable, actual, format string, args ...any) error {
	err := fmt.Errorf("%w: "+format, append([]any{vvalErrors.ErrValidation}, args...)...)

	return logger.AnnotateError(err, "expected", expected, "variable", variable, "actual", actual)
}

func unitNames(units []spec.Unit) string {
	names := make([]string, len(units))
	for i, u := range units {
		names[i] = u.Name()
	}

	return strings.Join(names, ", ")
}

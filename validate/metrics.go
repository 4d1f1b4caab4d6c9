package validate

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	opValidate         = "validate"
	opValidateIterable = "validate_iterable"
	opValidateOption   = "validate_option"
	opValidateFilter   = "validate_filter"

	outcomeOK       = "ok"
	outcomeRejected = "rejected"
	outcomeMisuse   = "misuse"
)

var (
	// validationsTotal counts calls to the validation entry points.
	//
	// Labels:
	//   - operation: validate, validate_iterable, validate_option or validate_filter
	//   - outcome: "ok" when the value passed, "rejected" when it failed validation
	//     (errors.ErrValidation), "misuse" when the call itself was wrong (malformed
	//     specification or unit, generic type)
	//
	// Usage example in dashboards:
	//   - sum(rate(vval_validate_calls_total{outcome="rejected"}[5m])) by (operation)
	//   - vval_validate_calls_total{outcome="misuse"} > 0 usually means a programming error
	validationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "vval_validate_calls_total",
		Help: "The total number of calls to the vval validation functions",
	}, []string{"operation", "outcome"})

	// validationTime tracks how long validation calls take, in milliseconds. Checks are
	// in-memory, so the buckets start well below a millisecond.
	validationTime = promauto.NewHistogramVec(prometheus.HistogramOpts{ //nolint:gochecknoglobals
		Name: "vval_validate_time_millis",
		Help: "The time it takes to validate, in milliseconds",
		Buckets: []float64{
			0.001, 0.01, 0.05, 0.1, 0.5, 1, 5, 10, 50, 100,
		},
	}, []string{"operation", "has_error"})
)

// init pre-initializes every operation × outcome combination so that dashboards and
// rate() queries see a series from process start.
func init() {
	for _, op := range []string{opValidate, opValidateIterable, opValidateOption, opValidateFilter} {
		for _, outcome := range []string{outcomeOK, outcomeRejected, outcomeMisuse} {
			validationsTotal.WithLabelValues(op, outcome).Add(0)
		}
	}
}

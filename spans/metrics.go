package spans

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// spanWithoutTracerCounter counts spans that were skipped because the context carried
// no tracer (spans.WithTracer was never called).
//
// Metric name: vval_spans_without_tracer_total
// Labels:
//   - span_name: The name of the span that was attempted
//
// Example PromQL query:
//
//	sum by (span_name) (rate(vval_spans_without_tracer_total[5m]))
var spanWithoutTracerCounter = promauto.NewCounterVec( //nolint:gochecknoglobals
	prometheus.CounterOpts{
		Namespace: "vval",
		Subsystem: "spans",
		Name:      "without_tracer_total",
		Help:      "Total number of span executions without a tracer in context",
	},
	[]string{"span_name"},
)

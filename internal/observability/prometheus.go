package observability

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"textractkit/pkg/client"
)

// PrometheusRecorder exports call counts and latency histograms labelled by
// operation and status.
type PrometheusRecorder struct {
	calls    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

var _ client.MetricsRecorder = (*PrometheusRecorder)(nil)

// NewPrometheusRecorder registers the collectors with reg. A nil reg uses a
// fresh registry.
func NewPrometheusRecorder(reg prometheus.Registerer) (*PrometheusRecorder, error) {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	rec := &PrometheusRecorder{
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "textract",
			Subsystem: "client",
			Name:      "calls_total",
			Help:      "Textract API calls by operation and outcome.",
		}, []string{"operation", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "textract",
			Subsystem: "client",
			Name:      "call_duration_seconds",
			Help:      "Textract API call latency.",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10),
		}, []string{"operation", "status"}),
	}
	for _, c := range []prometheus.Collector{rec.calls, rec.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return rec, nil
}

// Observe records one call outcome.
func (r *PrometheusRecorder) Observe(_ context.Context, operation string, success bool, duration time.Duration) {
	if operation == "" {
		return
	}
	status := statusLabel(success)
	r.calls.WithLabelValues(operation, status).Inc()
	r.duration.WithLabelValues(operation, status).Observe(duration.Seconds())
}

package llm

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusObserver records LLM call counts and latencies.
type PrometheusObserver struct {
	calls   *prometheus.CounterVec
	latency *prometheus.HistogramVec
}

// NewPrometheusObserver registers the LLM collectors on reg, reusing
// collectors that are already registered under the same names.
func NewPrometheusObserver(reg prometheus.Registerer) (*PrometheusObserver, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	calls := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "clientbuddy",
			Subsystem: "llm",
			Name:      "calls_total",
			Help:      "LLM calls by task and outcome.",
		},
		[]string{"task", "status"},
	)
	latency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "clientbuddy",
			Subsystem: "llm",
			Name:      "call_duration_seconds",
			Help:      "Wall time of LLM calls including retries.",
			Buckets:   []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32, 64},
		},
		[]string{"task"},
	)

	if err := reg.Register(calls); err != nil {
		var already prometheus.AlreadyRegisteredError
		if !errors.As(err, &already) {
			return nil, err
		}
		calls = already.ExistingCollector.(*prometheus.CounterVec)
	}
	if err := reg.Register(latency); err != nil {
		var already prometheus.AlreadyRegisteredError
		if !errors.As(err, &already) {
			return nil, err
		}
		latency = already.ExistingCollector.(*prometheus.HistogramVec)
	}

	return &PrometheusObserver{calls: calls, latency: latency}, nil
}

func (o *PrometheusObserver) OnCallComplete(event LLMCallEvent) {
	status := "ok"
	if !event.Success {
		status = event.ErrorCode
	}
	o.calls.WithLabelValues(string(event.Task), status).Inc()
	o.latency.WithLabelValues(string(event.Task)).Observe((time.Duration(event.LatencyMs) * time.Millisecond).Seconds())
}

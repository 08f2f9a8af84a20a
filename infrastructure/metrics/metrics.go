package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for gateway calls
const (
	OutcomeTransportError = "transport_error"
	OutcomeHTTPError      = "http_error"
	OutcomeDecoded        = "decoded"
)

// Metrics holds Prometheus metrics for gateway calls
type Metrics struct {
	RequestCounter  *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

// NewMetrics registers the gateway metrics on reg. Pass prometheus.DefaultRegisterer to expose
// them on the default /metrics handler.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RequestCounter: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "bomapay",
				Subsystem: "gateway",
				Name:      "requests_total",
				Help:      "Total number of bank gateway requests",
			},
			[]string{"path", "outcome"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "bomapay",
				Subsystem: "gateway",
				Name:      "request_duration_seconds",
				Help:      "Bank gateway request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"path"},
		),
	}
}

// Observe records one finished call. Safe on a nil *Metrics.
func (m *Metrics) Observe(path, outcome string, took time.Duration) {
	if m == nil {
		return
	}
	m.RequestCounter.WithLabelValues(path, outcome).Inc()
	m.RequestDuration.WithLabelValues(path).Observe(took.Seconds())
}

package gateway

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics observes every upstream call.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics creates the gateway collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "reservas",
			Name:      "upstream_requests_total",
			Help:      "Upstream service calls by service, method and status code.",
		}, []string{"service", "method", "code"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "reservas",
			Name:      "upstream_request_duration_seconds",
			Help:      "Upstream service call latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"service", "method"}),
	}
	reg.MustRegister(m.requests, m.duration)
	return m
}

// observe is safe on a nil receiver so the client works without metrics.
func (m *Metrics) observe(s Service, method, code string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(string(s), method, code).Inc()
	m.duration.WithLabelValues(string(s), method).Observe(elapsed.Seconds())
}

package internal

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts what the preview service does with flash messages.
type Metrics struct {
	Rendered *prometheus.CounterVec
	Rejected *prometheus.CounterVec
	Requests *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Rendered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "flashhop",
			Name:      "flash_rendered_total",
			Help:      "Flash messages rendered, by output format.",
		}, []string{"format"}),
		Rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "flashhop",
			Name:      "flash_rejected_total",
			Help:      "Flash messages rejected, by reason.",
		}, []string{"reason"}),
		Requests: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "flashhop",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "code"}),
	}

	reg.MustRegister(m.Rendered, m.Rejected, m.Requests)
	return m
}

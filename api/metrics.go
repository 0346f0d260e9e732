package api

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	requests   *prometheus.CounterVec
	latency    *prometheus.HistogramVec
	operations *prometheus.CounterVec
}

func newMetrics(registry prometheus.Registerer) *metrics {
	m := &metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "signup",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method and status code.",
		}, []string{"method", "code"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "signup",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "signup",
			Name:      "operations_total",
			Help:      "Sign up operations by result. result is ok or the error code returned.",
		}, []string{"operation", "result"}),
	}

	registry.MustRegister(m.requests, m.latency, m.operations)

	return m
}

func (m *metrics) observeRequest(method string, code string, latency time.Duration) {
	m.requests.WithLabelValues(method, code).Inc()
	m.latency.WithLabelValues(method).Observe(latency.Seconds())
}

func (m *metrics) observeOperation(operation string, result string) {
	m.operations.WithLabelValues(operation, result).Inc()
}

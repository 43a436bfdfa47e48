package server

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors reported by the server.
type Metrics struct {
	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	classifications *prometheus.CounterVec
	feedback        prometheus.Counter
	rateLimited     prometheus.Counter
}

// MustNewMetrics constructs Metrics registered with reg. Tests should pass a
// fresh prometheus.NewRegistry() to avoid duplicate registration panics.
func MustNewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "meeting_mbti",
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "HTTP requests by route pattern, method and status code.",
			},
			[]string{"route", "method", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "meeting_mbti",
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "HTTP request latency by route pattern and method.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"route", "method"},
		),
		classifications: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "meeting_mbti",
				Name:      "classifications_total",
				Help:      "Completed survey classifications by Type A code.",
			},
			[]string{"type_a"},
		),
		feedback: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "meeting_mbti",
				Name:      "feedback_submitted_total",
				Help:      "Meeting feedback rows accepted.",
			},
		),
		rateLimited: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "meeting_mbti",
				Subsystem: "http",
				Name:      "rate_limited_total",
				Help:      "Requests rejected by the rate limiter.",
			},
		),
	}
	reg.MustRegister(m.requests, m.requestDuration, m.classifications, m.feedback, m.rateLimited)
	return m
}

// Package metrics registers the gateway's Prometheus collectors on the
// default registry and exposes small helpers so callers never touch
// collector handles directly.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for upstream request observations.
const (
	OutcomeOK             = "ok"
	OutcomeRejected       = "rejected"
	OutcomeBadStatus      = "bad_status"
	OutcomeNoData         = "no_data"
	OutcomeTransportError = "transport_error"
)

var (
	upstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gateway_upstream_requests_total",
		Help: "Upstream exchanges by endpoint and outcome.",
	}, []string{"endpoint", "outcome"})

	upstreamDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "gateway_upstream_request_seconds",
		Help:    "Upstream exchange latency by endpoint.",
		Buckets: prometheus.DefBuckets,
	}, []string{"endpoint"})

	activeSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "gateway_active_sessions",
		Help: "Upstream sessions currently open.",
	})
)

func ObserveUpstreamRequest(endpoint, outcome string, d time.Duration) {
	upstreamRequests.WithLabelValues(endpoint, outcome).Inc()
	upstreamDuration.WithLabelValues(endpoint).Observe(d.Seconds())
}

func SessionOpened() { activeSessions.Inc() }
func SessionClosed() { activeSessions.Dec() }

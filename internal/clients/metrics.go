package clients

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeOK             = "ok"
	outcomeEmpty          = "empty"
	outcomeTransportError = "transport_error"
	outcomeBadStatus      = "bad_status"
	outcomeDecodeError    = "decode_error"
)

var (
	upstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipefinder_upstream_requests_total",
			Help: "Total number of recipe API requests by endpoint and outcome",
		},
		[]string{"path", "outcome"},
	)

	upstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recipefinder_upstream_request_duration_seconds",
			Help:    "Recipe API request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path"},
	)
)

package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Search phases, used as metric labels and in published events.
const (
	PhaseEmptyInput = "empty_input"
	PhaseExact      = "exact"
	PhaseFallback   = "fallback"
	PhaseNoResults  = "no_results"
)

var (
	searchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipefinder_searches_total",
			Help: "Total number of ingredient searches by the phase that produced the result",
		},
		[]string{"phase"},
	)

	fallbackLookups = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recipefinder_fallback_lookups",
			Help:    "Number of single-ingredient lookups issued per fallback search",
			Buckets: []float64{1, 2, 4, 8, 16, 32, 64},
		},
	)
)

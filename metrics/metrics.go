// Package metrics exposes Prometheus instrumentation for graph generation
// and layout stepping. Metrics register themselves through promauto, so
// importing the package is all the wiring a consumer needs.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// GenerationsTotal counts generation calls, labeled by model and outcome.
	GenerationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skein_generations_total",
			Help: "Total number of graph generation calls",
		},
		[]string{"model", "outcome"},
	)

	// GraphNodes tracks the node count of the current graph.
	GraphNodes = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "skein_graph_nodes",
			Help: "Number of nodes in the current graph",
		},
	)

	// GraphEdges tracks the edge count of the current graph.
	GraphEdges = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "skein_graph_edges",
			Help: "Number of edges in the current graph",
		},
	)

	// StepDuration measures one layout step end to end.
	StepDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "skein_step_duration_seconds",
			Help:    "Duration of one layout simulation step",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
	)
)

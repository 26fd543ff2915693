package main

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// RouteQueryTotal counts queries by kind and outcome.
	RouteQueryTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "transit_route_queries_total",
			Help: "Total number of route queries answered",
		},
		[]string{"query", "outcome"},
	)

	// GraphStops tracks the number of stops in the loaded network.
	GraphStops = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "transit_graph_stops",
			Help: "Number of stops in the transit network",
		},
	)

	// GraphConnections tracks the number of directed tracks in the loaded network.
	GraphConnections = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "transit_graph_connections",
			Help: "Number of directed connections in the transit network",
		},
	)
)

func init() {
	prometheus.MustRegister(RouteQueryTotal)
	prometheus.MustRegister(GraphStops)
	prometheus.MustRegister(GraphConnections)
}

package main

import (
	"github.com/prometheus/client_golang/prometheus"

	"lg/flux-api/internal/engine"
)

var (
	computationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "flux_api",
		Subsystem: "engine",
		Name:      "computations_total",
		Help:      "Engine computations served, by operation.",
	}, []string{"operation"})
	fluxZoneTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "flux_api",
		Subsystem: "engine",
		Name:      "flux_zone_total",
		Help:      "Flux states computed, by resulting zone.",
	}, []string{"zone"})
	missingMetricsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "flux_api",
		Subsystem: "engine",
		Name:      "missing_metrics_total",
		Help:      "Requests that needed body metrics the profile did not have.",
	})
)

func init() {
	prometheus.MustRegister(computationsTotal, fluxZoneTotal, missingMetricsTotal)
}

// recordComputation counts one engine call for operation.
func recordComputation(operation string) {
	computationsTotal.WithLabelValues(operation).Inc()
}

// recordFlux counts a flux computation and its zone.
func recordFlux(f engine.FluxState) {
	recordComputation("flux")
	fluxZoneTotal.WithLabelValues(string(f.Zone)).Inc()
}

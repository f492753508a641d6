// Copyright (c) 2026 Reserva. All rights reserved.

// Package metrics exposes Prometheus instrumentation for the HTTP layer.
//
// Collectors are registered against a dedicated registry rather than the
// global default one so tests can build isolated registries.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTPRequests counts finished HTTP requests by route pattern, method and status.
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "reserva", Name: "http_requests_total", Help: "HTTP requests."},
		[]string{"route", "method", "status"},
	)

	// HTTPLatency observes request duration by route pattern and method.
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "reserva", Name: "http_request_duration_seconds",
			Help:    "HTTP request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
)

// InitRegistry builds a registry with all application collectors registered.
func InitRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(HTTPRequests, HTTPLatency)
	return registry
}

// Handler returns the /metrics scrape endpoint for the given registry.
func Handler(registry *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}

// ObserveHTTP records one finished request.
func ObserveHTTP(route, method string, status int, duration time.Duration) {
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPLatency.WithLabelValues(route, method).Observe(duration.Seconds())
}

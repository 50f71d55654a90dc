package main

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the service's prometheus instruments on a private
// registry so tests can create as many as they like.
type Metrics struct {
	registry *prometheus.Registry

	GenerationsTotal   *prometheus.CounterVec
	GenerationDuration prometheus.Histogram
	HTTPRequestsTotal  *prometheus.CounterVec
}

// NewMetrics builds and registers all instruments.
func NewMetrics() *Metrics {
	m := &Metrics{registry: prometheus.NewRegistry()}

	m.GenerationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "repoworld_generations_total",
		Help: "Layout generation runs by outcome.",
	}, []string{"outcome"})

	m.GenerationDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "repoworld_generation_duration_seconds",
		Help:    "Wall time of one layout generation run.",
		Buckets: prometheus.DefBuckets,
	})

	m.HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "repoworld_http_requests_total",
		Help: "HTTP requests by route and status.",
	}, []string{"route", "status"})

	m.registry.MustRegister(m.GenerationsTotal, m.GenerationDuration, m.HTTPRequestsTotal)
	return m
}

// Handler serves the registry in prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

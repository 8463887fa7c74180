// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups the collectors used by the handlers.
type Metrics struct {
	RequestDuration  *prometheus.HistogramVec
	RequestsTotal    *prometheus.CounterVec
	LookupsTotal     *prometheus.CounterVec
	UpstreamDuration *prometheus.HistogramVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "whois_api_request_duration_seconds",
				Help:    "Time taken to serve HTTP requests",
				Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10, 30},
			},
			[]string{"method", "route", "status"},
		),
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "whois_api_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		LookupsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "whois_api_lookups_total",
				Help: "WHOIS lookups by record type and outcome",
			},
			[]string{"type", "outcome"},
		),
		UpstreamDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "whois_api_upstream_duration_seconds",
				Help:    "Time taken by the WHOIS provider to answer",
				Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 20, 30},
			},
			[]string{"outcome"},
		),
	}

	reg.MustRegister(m.RequestDuration, m.RequestsTotal, m.LookupsTotal, m.UpstreamDuration)

	return m
}

// ObserveUpstream records one call to the WHOIS provider.
func (m *Metrics) ObserveUpstream(outcome string, elapsed time.Duration) {
	m.UpstreamDuration.WithLabelValues(outcome).Observe(elapsed.Seconds())
}

// ObserveLookup counts one lookup request by record type and outcome.
func (m *Metrics) ObserveLookup(recordType, outcome string) {
	m.LookupsTotal.WithLabelValues(recordType, outcome).Inc()
}

// ObserveRequest records one served HTTP request.
func (m *Metrics) ObserveRequest(method, route, status string, elapsed time.Duration) {
	m.RequestsTotal.WithLabelValues(method, route, status).Inc()
	m.RequestDuration.WithLabelValues(method, route, status).Observe(elapsed.Seconds())
}

// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package metrics holds the Prometheus collectors for the API.
//
// Collectors are registered on a per-instance registry so several servers (or
// tests) can coexist in one process. All Record methods are nil-safe: a nil
// [*Metrics] turns them into no-ops.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the marketplace.
type Metrics struct {
	registry *prometheus.Registry

	// HTTP metrics
	HTTPRequests *prometheus.CounterVec
	HTTPLatency  *prometheus.HistogramVec

	// Domain metrics
	Signups            *prometheus.CounterVec
	CampaignsCreated   *prometheus.CounterVec
	Applications       *prometheus.CounterVec
	ApplicationReviews *prometheus.CounterVec

	// Guard metrics
	RateLimitHits prometheus.Counter
}

// NewMetrics creates and registers all collectors under the given namespace.
func NewMetrics(namespace string) *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,

		HTTPRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total HTTP requests by route pattern, method and status",
			},
			[]string{"route", "method", "status"},
		),
		HTTPLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency in seconds",
				Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
			},
			[]string{"route", "method"},
		),

		Signups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "signups_total",
				Help:      "Completed signups by role",
			},
			[]string{"role"},
		),
		CampaignsCreated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "campaigns_created_total",
				Help:      "Campaigns created by category",
			},
			[]string{"category"},
		),
		Applications: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "applications_total",
				Help:      "Application submissions by outcome",
			},
			[]string{"outcome"},
		),
		ApplicationReviews: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "application_reviews_total",
				Help:      "Application status decisions",
			},
			[]string{"status"},
		),

		RateLimitHits: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rate_limit_hits_total",
				Help:      "Requests rejected by the per-IP rate limiter",
			},
		),
	}
}

// Handler returns the HTTP handler exposing this instance's registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry (used by tests).
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordHTTP records one finished request.
func (m *Metrics) RecordHTTP(route, method string, status int, latency time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.HTTPLatency.WithLabelValues(route, method).Observe(latency.Seconds())
}

// RecordSignup records a completed signup.
func (m *Metrics) RecordSignup(role string) {
	if m == nil {
		return
	}
	m.Signups.WithLabelValues(role).Inc()
}

// RecordCampaignCreated records a new campaign.
func (m *Metrics) RecordCampaignCreated(category string) {
	if m == nil {
		return
	}
	m.CampaignsCreated.WithLabelValues(category).Inc()
}

// RecordApplication records an application attempt outcome ("submitted", "duplicate", ...).
func (m *Metrics) RecordApplication(outcome string) {
	if m == nil {
		return
	}
	m.Applications.WithLabelValues(outcome).Inc()
}

// RecordReview records a review decision.
func (m *Metrics) RecordReview(status string) {
	if m == nil {
		return
	}
	m.ApplicationReviews.WithLabelValues(status).Inc()
}

// RecordRateLimitHit records a throttled request.
func (m *Metrics) RecordRateLimitHit() {
	if m == nil {
		return
	}
	m.RateLimitHits.Inc()
}

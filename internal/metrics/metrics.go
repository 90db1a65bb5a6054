// Package metrics collects Prometheus metrics for HTTP traffic, search provider
// calls and bookmark toggles.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for provider calls
const (
	OutcomeSuccess     = "success"
	OutcomeBadResponse = "bad_response"
	OutcomeTransport   = "transport_error"
)

// Recorder is the subset of metrics the service layer writes to
type Recorder interface {
	RecordProviderCall(provider, outcome string, duration time.Duration)
	RecordBookmarkToggle(kind, action string)
}

// Collector is the Prometheus-backed Recorder
type Collector struct {
	httpRequests    *prometheus.CounterVec
	httpLatency     *prometheus.HistogramVec
	providerCalls   *prometheus.CounterVec
	providerLatency *prometheus.HistogramVec
	bookmarkToggles *prometheus.CounterVec
}

// NewCollector creates a Collector and registers its metrics with reg
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "platepal_http_requests_total",
			Help: "HTTP requests by method, route and status code",
		}, []string{"method", "route", "status"}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "platepal_http_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		providerCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "platepal_provider_calls_total",
			Help: "Search provider calls by provider and outcome",
		}, []string{"provider", "outcome"}),
		providerLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "platepal_provider_call_duration_seconds",
			Help:    "Search provider call latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"provider"}),
		bookmarkToggles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "platepal_bookmark_toggles_total",
			Help: "Bookmark toggles by kind and resulting action",
		}, []string{"kind", "action"}),
	}

	reg.MustRegister(
		c.httpRequests,
		c.httpLatency,
		c.providerCalls,
		c.providerLatency,
		c.bookmarkToggles,
	)

	return c
}

// RecordProviderCall records one outbound search call
func (c *Collector) RecordProviderCall(provider, outcome string, duration time.Duration) {
	c.providerCalls.WithLabelValues(provider, outcome).Inc()
	c.providerLatency.WithLabelValues(provider).Observe(duration.Seconds())
}

// RecordBookmarkToggle records the result of a bookmark toggle
func (c *Collector) RecordBookmarkToggle(kind, action string) {
	c.bookmarkToggles.WithLabelValues(kind, action).Inc()
}

// Middleware records request counts and latency per matched route
func (c *Collector) Middleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		route := ctx.FullPath()
		if route == "" {
			route = "unmatched"
		}
		c.httpRequests.WithLabelValues(ctx.Request.Method, route, strconv.Itoa(ctx.Writer.Status())).Inc()
		c.httpLatency.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}

// Handler returns the scrape handler for gatherer
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// Nop discards everything recorded to it
type Nop struct{}

func (Nop) RecordProviderCall(string, string, time.Duration) {}

func (Nop) RecordBookmarkToggle(string, string) {}

package api

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	activeConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_connections",
			Help: "Number of active HTTP connections",
		},
	)

	contactMutations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contact_mutations_total",
			Help: "Total number of contact mutation attempts",
		},
		[]string{"operation", "outcome"},
	)

	cacheEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contact_cache_events_total",
			Help: "Total number of contact snapshot cache events",
		},
		[]string{"event"},
	)
)

// metricsMiddleware records request counts and latencies per route
func metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		activeConnections.Inc()
		defer activeConnections.Dec()

		c.Next()

		// Use the route template so /v1/contacts/7 and /v1/contacts/8
		// land in the same series
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		httpRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, path).Observe(duration)
	}
}

// RecordMutation counts a mutation attempt, e.g. ("update", "success")
func RecordMutation(operation, outcome string) {
	contactMutations.WithLabelValues(operation, outcome).Inc()
}

// RecordCacheEvent counts a snapshot cache event, e.g. "refresh"
func RecordCacheEvent(event string) {
	cacheEvents.WithLabelValues(event).Inc()
}

package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis command errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quill_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// FeedAssemblies counts following-feed assemblies by outcome.
	FeedAssemblies = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quill_feed_assemblies_total",
		Help: "Total number of feed assemblies by outcome",
	}, []string{"outcome"})

	// ProfileStatsLatency records profile stats composition latency.
	ProfileStatsLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "quill_profile_stats_latency_seconds",
		Help:    "Latency of the concurrent profile stats composition",
		Buckets: prometheus.DefBuckets,
	})
)

// InitMetrics creates the Prometheus HTTP middleware for the given service name.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}

// MetricsMiddleware returns the request-level Prometheus handler.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}

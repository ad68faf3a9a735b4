package metrics

import "github.com/prometheus/client_golang/prometheus"

// Response cache Prometheus metrics.
var (
	ResponseCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "newsmeta",
			Name:      "response_cache_total",
			Help:      "Response cache hits and misses",
		},
		[]string{"result"}, // "hit" / "miss"
	)

	QueryDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "newsmeta",
			Name:      "query_duration_seconds",
			Help:      "Database query duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"operation"}, // "count" / "fetch"
	)
)

var cacheMetricsRegistered bool

// RegisterCacheMetrics registers cache and query metrics. Must be called once from main.
func RegisterCacheMetrics() {
	if cacheMetricsRegistered {
		return
	}
	prometheus.MustRegister(ResponseCacheTotal)
	prometheus.MustRegister(QueryDuration)
	cacheMetricsRegistered = true
}

package prometheus

import (
	"time"

	"github.com/Pearlman11/RentReady/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HttpRequestsTotal   *prometheus.CounterVec
	HttpRequestDuration *prometheus.HistogramVec

	// Database operation metrics
	DbOperationDuration *prometheus.HistogramVec

	// Entity CRUD metrics
	EntityOperationsCounter *prometheus.CounterVec
)

var initialized bool

// InitMetrics initializes Prometheus metrics with configuration
func InitMetrics(config *config.Config) {
	if initialized {
		return
	}
	initialized = true

	// Use metric prefix from configuration
	prefix := config.Metrics.Prefix

	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	DbOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_db_operation_duration_seconds",
			Help:    "Duration of database operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation_type"},
	)

	EntityOperationsCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_operations_total",
			Help: "Total number of entity operations",
		},
		[]string{"entity", "operation"},
	)
}

// TrackDBOperation returns a function that records the duration of a database operation
func TrackDBOperation(operationType string) func(startTime time.Time) {
	return func(startTime time.Time) {
		if DbOperationDuration == nil {
			return
		}
		duration := time.Since(startTime).Seconds()
		DbOperationDuration.WithLabelValues(operationType).Observe(duration)
	}
}

// RecordEntityOperation increments the counter for CRUD operations on an entity
func RecordEntityOperation(entity, operation string) {
	if EntityOperationsCounter == nil {
		return
	}
	EntityOperationsCounter.WithLabelValues(entity, operation).Inc()
}

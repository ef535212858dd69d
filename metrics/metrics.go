package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestCounter counts HTTP requests by status code, method, and path
	RequestCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dduhack_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"status", "method", "path"},
	)

	// RequestDuration measures HTTP request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dduhack_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"status", "method", "path"},
	)

	// RequestInProgress counts HTTP requests currently being processed
	RequestInProgress = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dduhack_http_requests_in_progress",
			Help: "Number of HTTP requests currently being processed",
		},
		[]string{"method", "path"},
	)

	// RateLimiterRejections counts rejected requests due to rate limiting
	RateLimiterRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dduhack_rate_limiter_rejections_total",
			Help: "Total number of requests rejected by rate limiter",
		},
		[]string{"ip"},
	)

	// DatabaseOperationDuration measures database operation duration
	DatabaseOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dduhack_db_operation_duration_seconds",
			Help:    "Database operation duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "table"},
	)

	// RegistrationsCreated counts accepted registrations per hackathon
	RegistrationsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dduhack_registrations_created_total",
			Help: "Total number of registrations created",
		},
		[]string{"hackathon", "mode"},
	)

	// SubmissionsFinalized counts finalized submissions by resulting status
	SubmissionsFinalized = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dduhack_submissions_finalized_total",
			Help: "Total number of finalized submissions",
		},
		[]string{"hackathon", "status"},
	)

	// ScoresRecorded counts judge score writes (inserts and revisions)
	ScoresRecorded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dduhack_scores_recorded_total",
			Help: "Total number of judge scores recorded",
		},
		[]string{"hackathon"},
	)

	// NotificationFailures counts best-effort notifications that failed
	NotificationFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dduhack_notification_failures_total",
			Help: "Total number of notification deliveries that failed",
		},
	)

	// MemoryStats tracks memory usage stats
	MemoryStats = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dduhack_memory_stats_bytes",
			Help: "Memory statistics in bytes",
		},
		[]string{"type"},
	)

	// GoroutineCount tracks the number of goroutines
	GoroutineCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dduhack_goroutine_count",
			Help: "Number of goroutines",
		},
	)

	// SystemCPUUsage tracks CPU usage percentage
	SystemCPUUsage = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dduhack_system_cpu_usage_percent",
			Help: "CPU usage percentage by core",
		},
		[]string{"core"},
	)

	// SystemLoadAverage tracks system load averages
	SystemLoadAverage = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dduhack_system_load_average",
			Help: "System load average",
		},
		[]string{"period"},
	)
)

// RecordDBOperation records the duration of a database operation
func RecordDBOperation(operation string, table string, startTime time.Time) {
	duration := time.Since(startTime).Seconds()
	DatabaseOperationDuration.WithLabelValues(operation, table).Observe(duration)
}

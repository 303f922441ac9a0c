// Logroute - Category-Routed Structured Logging
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/logroute

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Labels are bounded: category names never become label values, only the
// sink name (a handful per process) does.

var (
	// Logger Lifecycle Metrics
	LoggersCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "logroute_loggers_created_total",
			Help: "Total number of CreateLogger calls by outcome",
		},
		[]string{"sink", "result"}, // result: "created", "reused", "rejected"
	)

	LoggersLive = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "logroute_loggers_live",
			Help: "Current number of registered, not yet collected category loggers",
		},
		[]string{"sink"},
	)

	// Write Path Metrics
	EntriesWritten = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "logroute_entries_written_total",
			Help: "Total number of log entries delivered to a sink",
		},
		[]string{"sink", "level"},
	)

	EntriesSkipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "logroute_entries_skipped_total",
			Help: "Total number of log calls that produced no entry",
		},
		[]string{"sink", "reason"}, // reason: "disabled", "empty", "nil_formatter", "formatter_panic"
	)

	// Memory Buffer Metrics
	BufferEvictions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "logroute_buffer_evictions_total",
			Help: "Total number of entries dropped from in-memory buffers for capacity",
		},
		[]string{"sink"},
	)

	BufferReads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "logroute_buffer_reads_total",
			Help: "Total number of recent-entry reads",
		},
		[]string{"sink", "result"}, // result: "hit", "miss"
	)

	BufferReadEntries = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "logroute_buffer_read_entries",
			Help:    "Number of entries returned per recent-entry read",
			Buckets: []float64{0, 1, 10, 50, 100, 250, 500, 1024, 4096},
		},
	)

	// Guarded Writer Metrics
	WriterDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "logroute_writer_dropped_total",
			Help: "Total number of writes dropped by a guarded writer",
		},
		[]string{"name", "reason"}, // reason: "open", "error"
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)

	AppUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)
)

// Logger creation outcomes.
const (
	ResultCreated  = "created"
	ResultReused   = "reused"
	ResultRejected = "rejected"
)

// Skip reasons.
const (
	SkipDisabled       = "disabled"
	SkipEmpty          = "empty"
	SkipNilFormatter   = "nil_formatter"
	SkipFormatterPanic = "formatter_panic"
)

// RecordLoggerCreated records the outcome of one CreateLogger call.
func RecordLoggerCreated(sink, result string) {
	LoggersCreated.WithLabelValues(sink, result).Inc()
	if result == ResultCreated {
		LoggersLive.WithLabelValues(sink).Inc()
	}
}

// RecordLoggerCollected records that a registered logger was garbage collected.
func RecordLoggerCollected(sink string) {
	LoggersLive.WithLabelValues(sink).Dec()
}

// RecordEntryWritten records one entry delivered to a sink.
func RecordEntryWritten(sink, level string) {
	EntriesWritten.WithLabelValues(sink, level).Inc()
}

// RecordEntrySkipped records a log call that produced no entry.
func RecordEntrySkipped(sink, reason string) {
	EntriesSkipped.WithLabelValues(sink, reason).Inc()
}

// RecordEvictions adds n evicted entries for sink. n <= 0 is ignored.
func RecordEvictions(sink string, n int) {
	if n > 0 {
		BufferEvictions.WithLabelValues(sink).Add(float64(n))
	}
}

// RecordBufferRead records a recent-entry read and how many entries it returned.
func RecordBufferRead(sink string, found bool, entries int) {
	result := "miss"
	if found {
		result = "hit"
		BufferReadEntries.Observe(float64(entries))
	}
	BufferReads.WithLabelValues(sink, result).Inc()
}

// RecordWriterDrop records a write dropped by a guarded writer.
func RecordWriterDrop(name, reason string) {
	WriterDropped.WithLabelValues(name, reason).Inc()
}

// RecordCircuitBreakerRequest records the outcome of a request through a breaker.
func RecordCircuitBreakerRequest(name, result string) {
	CircuitBreakerRequests.WithLabelValues(name, result).Inc()
}

// RecordCircuitBreakerTransition records a state change and updates the state gauge.
// States are "closed", "half-open" and "open".
func RecordCircuitBreakerTransition(name, from, to string) {
	CircuitBreakerTransitions.WithLabelValues(name, from, to).Inc()
	CircuitBreakerState.WithLabelValues(name).Set(breakerStateValue(to))
}

func breakerStateValue(state string) float64 {
	switch state {
	case "half-open":
		return 1
	case "open":
		return 2
	default:
		return 0
	}
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit records a request rejected by the rate limiter.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// SetAppInfo publishes the build information gauge.
func SetAppInfo(version, goVersion string) {
	AppInfo.WithLabelValues(version, goVersion).Set(1)
}

// TrackUptime updates AppUptime every interval until stop is closed.
func TrackUptime(start time.Time, interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	AppUptime.Set(time.Since(start).Seconds())
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			AppUptime.Set(time.Since(start).Seconds())
		}
	}
}

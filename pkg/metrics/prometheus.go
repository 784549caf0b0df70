// Package metrics provides Prometheus metrics for the boardroom service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns all Prometheus metrics for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// HTTP surface
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Phase workflow
	phaseRequests *prometheus.CounterVec

	// Model gateway
	modelCalls        *prometheus.CounterVec
	modelCallErrors   prometheus.Counter
	modelCallLatency  prometheus.Histogram
	modelInputTokens  prometheus.Counter
	modelOutputTokens prometheus.Counter

	// Roster cache
	rosterRefreshes     prometheus.Counter
	rosterRefreshErrors prometheus.Counter
	rosterSize          prometheus.Gauge
	rosterAgeSeconds    prometheus.Gauge

	// Process health
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
}

// Global manager bound to a custom registry so the default Go collectors
// do not leak into the scrape.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "boardroom",
		subsystem:        "service",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint, method and status",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.phaseRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "phase_requests_total",
			Help:      "Total number of phase invocations by phase and outcome",
		},
		[]string{"phase", "outcome"},
	)

	m.modelCalls = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "model_calls_total",
			Help:      "Total number of successful model completions by model",
		},
		[]string{"model"},
	)

	m.modelCallErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "model_call_errors_total",
		Help:      "Total number of failed model completions",
	})

	m.modelCallLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "model_call_latency_milliseconds",
		Help:      "Model completion round-trip latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.modelInputTokens = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "model_input_tokens_total",
		Help:      "Total input tokens sent to the model provider",
	})

	m.modelOutputTokens = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "model_output_tokens_total",
		Help:      "Total output tokens returned by the model provider",
	})

	m.rosterRefreshes = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "roster_refreshes_total",
		Help:      "Total number of successful roster refreshes",
	})

	m.rosterRefreshErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "roster_refresh_errors_total",
		Help:      "Total number of failed roster refresh attempts",
	})

	m.rosterSize = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "roster_size",
		Help:      "Number of experts in the current roster snapshot",
	})

	m.rosterAgeSeconds = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "roster_age_seconds",
		Help:      "Age of the current roster snapshot in seconds",
	})

	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_memory_bytes",
		Help:      "Current allocated heap memory in bytes",
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_goroutines",
		Help:      "Current number of goroutines",
	})
}

// GetRegistry returns the custom registry backing the global manager, for
// the promhttp handler.
func GetRegistry() *prometheus.Registry { return customRegistry }

// Package-level helpers recording against the global manager.

// RecordHTTPRequest counts one HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records one HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, ms float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(ms)
}

// RecordPhaseRequest counts one phase invocation with its outcome
// ("ok", "bad_request", "model_error", "parse_error").
func RecordPhaseRequest(phase, outcome string) {
	globalManager.phaseRequests.WithLabelValues(phase, outcome).Inc()
}

// RecordModelCall records one successful completion and its latency.
func RecordModelCall(model string, ms float64) {
	globalManager.modelCalls.WithLabelValues(model).Inc()
	globalManager.modelCallLatency.Observe(ms)
}

// RecordModelCallError counts one failed completion.
func RecordModelCallError() { globalManager.modelCallErrors.Inc() }

// RecordModelTokens accumulates token usage.
func RecordModelTokens(input, output int) {
	globalManager.modelInputTokens.Add(float64(input))
	globalManager.modelOutputTokens.Add(float64(output))
}

// RecordRosterRefresh counts one successful refresh and sets the size gauge.
func RecordRosterRefresh(size int) {
	globalManager.rosterRefreshes.Inc()
	globalManager.rosterSize.Set(float64(size))
}

// RecordRosterRefreshError counts one failed refresh attempt.
func RecordRosterRefreshError() { globalManager.rosterRefreshErrors.Inc() }

// UpdateRosterSize sets the snapshot size gauge.
func UpdateRosterSize(size int) { globalManager.rosterSize.Set(float64(size)) }

// UpdateRosterAge sets the snapshot age gauge.
func UpdateRosterAge(seconds float64) { globalManager.rosterAgeSeconds.Set(seconds) }

// UpdateSystemMemoryUsage sets the heap gauge.
func UpdateSystemMemoryUsage(bytes uint64) { globalManager.systemMemoryUsage.Set(float64(bytes)) }

// UpdateSystemGoroutineCount sets the goroutine gauge.
func UpdateSystemGoroutineCount(count int) { globalManager.systemGoroutineCount.Set(float64(count)) }

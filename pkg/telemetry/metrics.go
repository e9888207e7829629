package telemetry

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures the Prometheus metrics.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "choc").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for render duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus metrics.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

// defaultMetricsConfig returns the default metrics configuration.
func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace:   "choc",
		Subsystem:   "",
		ConstLabels: nil,
		Buckets:     prometheus.DefBuckets,
		Registry:    prometheus.DefaultRegisterer,
	}
}

// metrics holds the Prometheus metrics for Choc.
type metrics struct {
	rendersTotal   *prometheus.CounterVec
	renderDuration prometheus.Histogram
	renderBytes    prometheus.Histogram
	replacesTotal  prometheus.Counter
	patchesApplied prometheus.Counter
	parsesTotal    *prometheus.CounterVec
}

// globalMetrics is the singleton metrics instance.
// Created on first call to EnableMetrics().
var (
	globalMetrics   *metrics
	globalMetricsMu sync.Mutex
)

// initMetrics initializes the Prometheus metrics.
func initMetrics(config MetricsConfig) *metrics {
	factory := promauto.With(config.Registry)

	return &metrics{
		rendersTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "renders_total",
			Help:        "Total number of document renders",
			ConstLabels: config.ConstLabels,
		}, []string{"status"}),

		renderDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "render_duration_seconds",
			Help:        "Render duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),

		renderBytes: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "render_bytes",
			Help:        "Rendered output size in bytes",
			ConstLabels: config.ConstLabels,
			Buckets:     []float64{256, 1024, 4096, 16384, 65536, 262144, 1048576}, // 256B to 1MB
		}),

		replacesTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "replace_content_total",
			Help:        "Total number of content replacement operations",
			ConstLabels: config.ConstLabels,
		}),

		patchesApplied: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "patches_applied_total",
			Help:        "Total number of patches applied by content replacement",
			ConstLabels: config.ConstLabels,
		}),

		parsesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "parses_total",
			Help:        "Total number of HTML parses",
			ConstLabels: config.ConstLabels,
		}, []string{"status"}),
	}
}

// EnableMetrics initializes Prometheus metrics collection. Until it is
// called, the recording functions are no-ops.
//
// Metrics collected:
//   - choc_renders_total: Counter of renders by status
//   - choc_render_duration_seconds: Histogram of render duration
//   - choc_render_bytes: Histogram of rendered output size
//   - choc_replace_content_total: Counter of content replacements
//   - choc_patches_applied_total: Counter of patches applied
//   - choc_parses_total: Counter of HTML parses by status
//
// Example:
//
//	telemetry.EnableMetrics(
//	    telemetry.WithNamespace("myapp"),
//	)
//
//	// Expose metrics endpoint
//	http.Handle("/metrics", promhttp.Handler())
func EnableMetrics(opts ...MetricsOption) {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}

	// Initialize metrics once
	globalMetricsMu.Lock()
	if globalMetrics == nil {
		globalMetrics = initMetrics(config)
	}
	globalMetricsMu.Unlock()
}

// =============================================================================
// Metrics Recording Functions
// =============================================================================

// RecordRender records one render with its duration and output size.
// Called by the Renderer wrapper; call it directly when rendering
// through pkg/render without the wrapper.
func RecordRender(status string, duration time.Duration, bytes int) {
	if globalMetrics != nil {
		globalMetrics.rendersTotal.WithLabelValues(status).Inc()
		globalMetrics.renderDuration.Observe(duration.Seconds())
		if bytes > 0 {
			globalMetrics.renderBytes.Observe(float64(bytes))
		}
	}
}

// RecordReplaceContent records one content replacement and the number
// of patches it applied.
func RecordReplaceContent(patches int) {
	if globalMetrics != nil {
		globalMetrics.replacesTotal.Inc()
		globalMetrics.patchesApplied.Add(float64(patches))
	}
}

// RecordParse records one HTML parse.
func RecordParse(status string) {
	if globalMetrics != nil {
		globalMetrics.parsesTotal.WithLabelValues(status).Inc()
	}
}

package overridable

import (
	"context"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Resolution sites.
const (
	siteRegion    = "region"
	siteComponent = "component"
)

// Resolution outcomes.
const (
	outcomeOverride = "override" // single replacement rendered
	outcomeExpand   = "expand"   // list of replacements rendered
	outcomeDefault  = "default"  // default implementation or cloned child
	outcomeEmpty    = "empty"    // region with neither child nor override
	outcomeError    = "error"
)

// MetricsConfig configures the Prometheus resolution metrics.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "overridable").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the resolution metrics.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithRegisterer sets the Prometheus registerer.
func WithRegisterer(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "overridable",
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics holds the resolution counters.
type Metrics struct {
	resolutions *prometheus.CounterVec
}

var (
	globalMetrics   *Metrics
	globalMetricsMu sync.Mutex
)

// EnableMetrics registers the resolution metrics and starts recording them.
// Only the first call registers; later calls return the existing collector.
//
// Metrics collected:
//   - overridable_resolutions_total: Counter of region and wrapper
//     resolutions by site (region, component) and outcome
//     (override, expand, default, empty, error)
func EnableMetrics(opts ...MetricsOption) *Metrics {
	globalMetricsMu.Lock()
	defer globalMetricsMu.Unlock()

	if globalMetrics != nil {
		return globalMetrics
	}

	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}

	factory := promauto.With(config.Registry)
	globalMetrics = &Metrics{
		resolutions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "resolutions_total",
			Help:        "Total number of override resolutions by site and outcome",
			ConstLabels: config.ConstLabels,
		}, []string{"site", "outcome"}),
	}
	return globalMetrics
}

// GetMetrics returns the collector created by EnableMetrics, or nil.
func GetMetrics() *Metrics {
	globalMetricsMu.Lock()
	defer globalMetricsMu.Unlock()
	return globalMetrics
}

// observe records a resolution decision on the metrics collector, if
// enabled, and as an event on the span in ctx, if recording.
func observe(ctx context.Context, site, id, outcome string) {
	if m := GetMetrics(); m != nil {
		m.resolutions.WithLabelValues(site, outcome).Inc()
	}

	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}
	span.AddEvent("overridable.resolve", trace.WithAttributes(
		attribute.String("overridable.site", site),
		attribute.String("overridable.id", id),
		attribute.String("overridable.outcome", outcome),
	))
}

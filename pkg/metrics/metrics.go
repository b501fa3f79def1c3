// Package metrics provides Prometheus instrumentation for awrite buffers.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds the metric instances shared by instrumented buffers.
type Registry struct {
	// Fill path
	FillBytes  *prometheus.CounterVec
	FillCalls  *prometheus.CounterVec
	FillErrors *prometheus.CounterVec

	// Flush path
	Flushes      *prometheus.CounterVec
	FlushErrors  *prometheus.CounterVec
	FlushedBytes *prometheus.CounterVec

	// Scratch region occupancy, 0.0 to 1.0
	BufferUtilization *prometheus.GaugeVec
}

// DefaultRegistry is the registry used when no custom registerer is
// configured.
var DefaultRegistry *Registry

func init() {
	DefaultRegistry = NewRegistry(prometheus.DefaultRegisterer)
}

// NewRegistry creates a metrics registry backed by the given Prometheus
// registerer.
func NewRegistry(reg prometheus.Registerer) *Registry {
	factory := promauto.With(reg)

	return &Registry{
		FillBytes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "awrite",
				Subsystem: "buffer",
				Name:      "fill_bytes_total",
				Help:      "Total bytes staged into scratch regions",
			},
			[]string{"buffer_name"},
		),

		FillCalls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "awrite",
				Subsystem: "buffer",
				Name:      "fill_calls_total",
				Help:      "Total number of fill operations",
			},
			[]string{"buffer_name"},
		),

		FillErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "awrite",
				Subsystem: "buffer",
				Name:      "fill_errors_total",
				Help:      "Total number of fill operations that overflowed the scratch region",
			},
			[]string{"buffer_name"},
		),

		Flushes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "awrite",
				Subsystem: "buffer",
				Name:      "flushes_total",
				Help:      "Total number of successful flushes",
			},
			[]string{"buffer_name"},
		),

		FlushErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "awrite",
				Subsystem: "buffer",
				Name:      "flush_errors_total",
				Help:      "Total number of flushes rejected by the sink",
			},
			[]string{"buffer_name"},
		),

		FlushedBytes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "awrite",
				Subsystem: "buffer",
				Name:      "flushed_bytes_total",
				Help:      "Total bytes accepted by sinks",
			},
			[]string{"buffer_name"},
		),

		BufferUtilization: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "awrite",
				Subsystem: "buffer",
				Name:      "utilization",
				Help:      "Fraction of the scratch region currently staged",
			},
			[]string{"buffer_name"},
		),
	}
}

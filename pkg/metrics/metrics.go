// Package metrics holds the shared OpenTelemetry instrumentation helpers.
// Instruments are created against the global providers, so whatever provider
// the server installs (Prometheus exporter) receives them.
package metrics

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

// Namespace prefixes every instrument and tracer name.
const Namespace = "phishsniper"

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// Meter returns the global meter for the given component.
func Meter(component string) metric.Meter {
	return otel.Meter(Namespace + "/" + component)
}

// Tracer returns the global tracer for the given component.
func Tracer(component string) trace.Tracer {
	return otel.Tracer(Namespace + "/" + component)
}

// Counter creates an int64 counter, falling back to a no-op instrument when the
// provider rejects the definition.
func Counter(m metric.Meter, name, desc string) metric.Int64Counter {
	c, err := m.Int64Counter(Namespace+"."+name, metric.WithDescription(desc))
	if err != nil {
		return noop.Int64Counter{}
	}

	return c
}

// Latency creates a float64 histogram in seconds using DefaultBuckets.
func Latency(m metric.Meter, name, desc string) metric.Float64Histogram {
	h, err := m.Float64Histogram(Namespace+"."+name,
		metric.WithDescription(desc),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...))
	if err != nil {
		return noop.Float64Histogram{}
	}

	return h
}

package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records flowsim engine metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordEvaluation records a flow evaluation with its duration and the
	// reachable share of the graph.
	RecordEvaluation(ctx context.Context, duration time.Duration, reachable, nodes int)

	// RecordTrace records an ancestor trace request.
	RecordTrace(ctx context.Context, duration time.Duration, highlighted int)

	// RecordSchemaDiscovery records a condition schema recomputation.
	RecordSchemaDiscovery(ctx context.Context, conditions int)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	evaluations    metric.Int64Counter
	evalLatency    metric.Float64Histogram
	reachableNodes metric.Int64Histogram
	traceRequests  metric.Int64Counter
	traceLatency   metric.Float64Histogram
	conditions     metric.Int64Histogram
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics returns the default OTel metrics instance.
// Lazily initializes the metrics on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

// newOtelMetrics creates a new OTel metrics instance.
func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("flowsim")

	evaluations, err := meter.Int64Counter("flowsim.flow.evaluations",
		metric.WithDescription("Number of flow evaluations"),
	)
	if err != nil {
		return nil, err
	}

	evalLatency, err := meter.Float64Histogram("flowsim.flow.latency_ms",
		metric.WithDescription("Flow evaluation latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	reachableNodes, err := meter.Int64Histogram("flowsim.flow.reachable_nodes",
		metric.WithDescription("Reachable node count per evaluation"),
	)
	if err != nil {
		return nil, err
	}

	traceRequests, err := meter.Int64Counter("flowsim.trace.requests",
		metric.WithDescription("Number of ancestor trace requests"),
	)
	if err != nil {
		return nil, err
	}

	traceLatency, err := meter.Float64Histogram("flowsim.trace.latency_ms",
		metric.WithDescription("Ancestor trace latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	conditions, err := meter.Int64Histogram("flowsim.schema.conditions",
		metric.WithDescription("Distinct conditions discovered per schema scan"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		evaluations:    evaluations,
		evalLatency:    evalLatency,
		reachableNodes: reachableNodes,
		traceRequests:  traceRequests,
		traceLatency:   traceLatency,
		conditions:     conditions,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordEvaluation records a flow evaluation.
func (m *otelMetrics) RecordEvaluation(ctx context.Context, duration time.Duration, reachable, nodes int) {
	attrs := []attribute.KeyValue{
		attribute.Int("total_nodes", nodes),
	}

	m.evaluations.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.evalLatency.Record(ctx, float64(duration.Milliseconds()), metric.WithAttributes(attrs...))
	m.reachableNodes.Record(ctx, int64(reachable), metric.WithAttributes(attrs...))
}

// RecordTrace records an ancestor trace request.
func (m *otelMetrics) RecordTrace(ctx context.Context, duration time.Duration, highlighted int) {
	attrs := []attribute.KeyValue{
		attribute.Int("highlighted_nodes", highlighted),
	}
	m.traceRequests.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.traceLatency.Record(ctx, float64(duration.Milliseconds()), metric.WithAttributes(attrs...))
}

// RecordSchemaDiscovery records a condition schema recomputation.
func (m *otelMetrics) RecordSchemaDiscovery(ctx context.Context, conditions int) {
	m.conditions.Record(ctx, int64(conditions))
}

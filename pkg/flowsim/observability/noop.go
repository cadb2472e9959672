package observability

import (
	"context"
	"time"
)

// NoopMetrics is a MetricsRecorder that does nothing.
// Use when metrics are disabled to avoid overhead.
type NoopMetrics struct{}

// Compile-time interface check.
var _ MetricsRecorder = NoopMetrics{}

// RecordEvaluation does nothing.
func (NoopMetrics) RecordEvaluation(_ context.Context, _ time.Duration, _, _ int) {}

// RecordTrace does nothing.
func (NoopMetrics) RecordTrace(_ context.Context, _ time.Duration, _ int) {}

// RecordSchemaDiscovery does nothing.
func (NoopMetrics) RecordSchemaDiscovery(_ context.Context, _ int) {}

// Package observability provides structured logging, metrics, and tracing
// helpers for flowsim sessions.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
package observability

import (
	"log/slog"
	"time"
)

// EnrichLogger adds flowsim session context to a logger.
// Returns a new logger with the session_id field attached.
func EnrichLogger(logger *slog.Logger, sessionID string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(slog.String("session_id", sessionID))
}

// LogEvaluation logs a completed flow evaluation.
func LogEvaluation(logger *slog.Logger, sessionID string, durationMs float64, reachable, nodes, edges int) {
	if logger == nil {
		return
	}
	logger.Debug("flow evaluated",
		slog.String("session_id", sessionID),
		slog.Float64("duration_ms", durationMs),
		slog.Int("reachable_nodes", reachable),
		slog.Int("total_nodes", nodes),
		slog.Int("total_edges", edges),
	)
}

// LogTrace logs a completed ancestor trace.
func LogTrace(logger *slog.Logger, sessionID, nodeID string, highlighted int) {
	if logger == nil {
		return
	}
	logger.Debug("ancestors traced",
		slog.String("session_id", sessionID),
		slog.String("node_id", nodeID),
		slog.Int("highlighted_nodes", highlighted),
	)
}

// LogContextChange logs a simulation context mutation.
func LogContextChange(logger *slog.Logger, sessionID, condition string, set bool) {
	if logger == nil {
		return
	}
	logger.Debug("simulation context changed",
		slog.String("session_id", sessionID),
		slog.String("condition", condition),
		slog.Bool("set", set),
	)
}

// LogImport logs a successful document import.
func LogImport(logger *slog.Logger, path string, nodes, edges int) {
	if logger == nil {
		return
	}
	logger.Info("document imported",
		slog.String("path", path),
		slog.Int("nodes", nodes),
		slog.Int("edges", edges),
	)
}

// LogImportError logs a failed document import.
func LogImportError(logger *slog.Logger, path string, err error) {
	if logger == nil {
		return
	}
	logger.Error("document import failed",
		slog.String("path", path),
		slog.String("error", err.Error()),
	)
}

// LogStoreError logs a flow store failure (non-fatal for the session).
func LogStoreError(logger *slog.Logger, name, op string, err error) {
	if logger == nil {
		return
	}
	logger.Warn("flow store operation failed",
		slog.String("flow", name),
		slog.String("operation", op),
		slog.String("error", err.Error()),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time in milliseconds.
//
// Example:
//
//	done := TimedOperation()
//	// ... do work ...
//	durationMs := done()
func TimedOperation() func() float64 {
	start := time.Now()
	return func() float64 {
		return float64(time.Since(start).Milliseconds())
	}
}

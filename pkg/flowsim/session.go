package flowsim

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"github.com/flowsim-io/flowsim/pkg/flowsim/observability"
)

// Session pairs a graph store with a mutable simulation context and
// recomputes the engine's derived views on demand. It is the in-process
// realization of the hosting application's control loop: mutate the graph
// or the context, then re-ask for Conditions, Evaluate, or Trace.
//
// The engine functions themselves stay pure; Session only adds snapshot
// discipline, locking, and observability around them. Session is safe for
// concurrent use.
type Session struct {
	mu    sync.RWMutex
	graph *Graph
	sim   Context

	id      string
	logger  *slog.Logger
	metrics observability.MetricsRecorder
	tracing bool
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithLogger sets the structured logger for the session.
// Defaults to slog.Default().
func WithLogger(logger *slog.Logger) SessionOption {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithMetrics sets the metrics recorder for the session.
// Defaults to a no-op recorder.
func WithMetrics(m observability.MetricsRecorder) SessionOption {
	return func(s *Session) {
		s.metrics = m
	}
}

// WithTracing enables OpenTelemetry spans around engine calls.
func WithTracing(enabled bool) SessionOption {
	return func(s *Session) {
		s.tracing = enabled
	}
}

// WithSessionID sets the session identifier used in logs and spans.
// Auto-generated if not configured.
func WithSessionID(id string) SessionOption {
	return func(s *Session) {
		s.id = id
	}
}

// NewSession creates a session over the given graph store.
// The graph may keep being mutated by the host; every engine call takes a
// fresh snapshot.
func NewSession(g *Graph, opts ...SessionOption) *Session {
	s := &Session{
		graph:   g,
		sim:     make(Context),
		id:      uuid.New().String(),
		logger:  slog.Default(),
		metrics: observability.NoopMetrics{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Graph returns the underlying graph store.
func (s *Session) Graph() *Graph {
	return s.graph
}

// Set assigns a condition value in the simulation context.
func (s *Session) Set(condition string, value any) {
	s.mu.Lock()
	s.sim[condition] = value
	s.mu.Unlock()

	observability.LogContextChange(s.logger, s.id, condition, true)
}

// Unset removes a condition from the simulation context, returning it to
// the unconstrained state in which every rule referencing it passes.
func (s *Session) Unset(condition string) {
	s.mu.Lock()
	delete(s.sim, condition)
	s.mu.Unlock()

	observability.LogContextChange(s.logger, s.id, condition, false)
}

// ResetContext clears the whole simulation context.
func (s *Session) ResetContext() {
	s.mu.Lock()
	s.sim = make(Context)
	s.mu.Unlock()
}

// ContextSnapshot returns a copy of the current simulation context.
func (s *Session) ContextSnapshot() Context {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sim.Clone()
}

// Conditions recomputes the condition schema from the current graph.
func (s *Session) Conditions(ctx context.Context) []Condition {
	if s.tracing {
		var span trace.Span
		ctx, span = observability.StartSchemaSpan(ctx, s.id)
		defer observability.EndSpanWithError(span, nil)
	}

	_, edges := s.graph.Snapshot()
	conditions := DiscoverConditions(edges)

	s.metrics.RecordSchemaDiscovery(ctx, len(conditions))
	return conditions
}

// Evaluate runs flow reachability over a snapshot of the graph and the
// current simulation context.
func (s *Session) Evaluate(ctx context.Context) Result {
	if s.tracing {
		var span trace.Span
		ctx, span = observability.StartEvaluateSpan(ctx, s.id)
		defer observability.EndSpanWithError(span, nil)
	}

	start := time.Now()
	nodes, edges := s.graph.Snapshot()
	sim := s.ContextSnapshot()

	res := EvaluateFlow(nodes, edges, sim)
	elapsed := time.Since(start)

	s.metrics.RecordEvaluation(ctx, elapsed, len(res.ReachableNodes), len(nodes))
	observability.LogEvaluation(s.logger, s.id,
		float64(elapsed.Milliseconds()), len(res.ReachableNodes), len(nodes), len(edges))
	return res
}

// Trace computes the ancestor closure of a focus node over the current
// graph, ignoring rules and context.
func (s *Session) Trace(ctx context.Context, nodeID string) TraceResult {
	if s.tracing {
		var span trace.Span
		ctx, span = observability.StartTraceSpan(ctx, s.id, nodeID)
		defer observability.EndSpanWithError(span, nil)
	}

	start := time.Now()
	_, edges := s.graph.Snapshot()
	res := TraceAncestors(nodeID, edges)
	elapsed := time.Since(start)

	s.metrics.RecordTrace(ctx, elapsed, len(res.Nodes))
	observability.LogTrace(s.logger, s.id, nodeID, len(res.Nodes))
	return res
}

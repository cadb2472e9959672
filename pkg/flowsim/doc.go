/*
Package flowsim evaluates conditional feature-flow graphs.

# Overview

flowsim is a Go library for simulating how a runtime context propagates
through a directed graph of named features connected by rule-gated paths.
Given a graph snapshot and a set of condition values, it answers which
nodes are actually reachable, which edges are traversable, how a node
could be reached at all, and what conditions the graph's rules imply.

The engine is four pure functions:

  - EvaluateRule / EvaluateEdgeRules: one rule (or one edge's rule list)
    against one context.
  - DiscoverConditions: infer the condition schema (names, types, observed
    values) from all rules in the graph.
  - EvaluateFlow: propagate reachability from root nodes outward.
  - TraceAncestors: the backward closure of a focus node over raw
    connectivity.

All four take full snapshots as arguments and return fresh results.
There is no hidden state, no caching, and no error surface: every
structurally valid input produces a result.

# Basic Usage

Build a graph, then evaluate it under a context:

	g := flowsim.NewGraph().
	    AddNode("landing", "Landing").
	    AddNode("dashboard", "Dashboard").
	    AddEdge("e1", "landing", "dashboard").
	    AddRule("e1", flowsim.Rule{
	        ID:        flowsim.NewID(),
	        Condition: "role",
	        Operator:  flowsim.OpIs,
	        Value:     "admin",
	    })

	nodes, edges := g.Snapshot()
	res := flowsim.EvaluateFlow(nodes, edges, flowsim.Context{"role": "admin"})
	fmt.Println(res.ReachableNodes["dashboard"]) // true

# Rule Semantics

Rules on one edge combine with logical AND; an edge with no rules is
always satisfied. A condition absent from the context passes (default
open): paths are not blocked by conditions nobody has set. Equality is
strict, so the number 5 never equals the string "5"; the ordering
operators require both sides numeric and yield false on any mismatch
rather than erroring. Unknown operators pass, keeping the evaluator
total over future operator additions.

# Reachability

Root nodes (no incoming edges) are unconditionally reachable. From them,
reachability spreads breadth-first across rule-satisfied edges. The
result covers every input edge: edges in unreachable or rule-blocked
sub-graphs report false, never go missing. Cycles terminate because each
node expands once; a graph that is one big cycle has no roots and
nothing is reachable.

# Sessions

Session wraps a Graph with a mutable simulation context and adds
logging, metrics, and tracing around the engine calls:

	sess := flowsim.NewSession(g,
	    flowsim.WithLogger(logger),
	    flowsim.WithMetrics(observability.NewMetricsRecorder()),
	    flowsim.WithTracing(true))

	sess.Set("role", "admin")
	res := sess.Evaluate(ctx)

# Import and Export

Document carries the {nodes, edges} interchange shape with JSON and YAML
codecs. Validate rejects structural violations (missing or duplicate
IDs, dangling endpoints) before data reaches the engine, which assumes
those invariants and does not re-check them:

	doc, err := flowsim.DecodeFile("flow.yaml")
	if err != nil { ... }
	if err := doc.Validate(); err != nil { ... }
	g, _ := doc.Graph()

# Thread Safety

  - The engine functions are pure and safe from any goroutine.
  - Graph and Session are safe for concurrent use; snapshots are deep
    copies, so an evaluation never observes a half-applied mutation.
  - Store implementations (see the store subpackage) are safe for
    concurrent use.

# Subpackages

  - store: named flow document persistence (memory, SQLite)
  - observability: logging, metrics, and tracing helpers
*/
package flowsim

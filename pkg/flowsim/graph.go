package flowsim

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Graph is the host-side mutable store of nodes and edges driving the
// engine. Mutators take the write lock; Snapshot takes the read lock and
// returns deep copies, so a running evaluation always sees a fixed
// point-in-time view while the host keeps editing.
//
// Mutators panic on programmer errors (empty or duplicate IDs, unknown
// endpoints) rather than returning errors: a violated ID invariant here
// means the hosting application is broken, and the engine downstream
// assumes these invariants hold. Data arriving from outside the process
// goes through Document.Validate first, which reports the same problems
// as errors.
//
// Example:
//
//	g := flowsim.NewGraph().
//	    AddNode("start", "Start").
//	    AddNode("checkout", "Checkout").
//	    AddEdge("e1", "start", "checkout").
//	    AddRule("e1", flowsim.Rule{
//	        ID:        flowsim.NewID(),
//	        Condition: "role",
//	        Operator:  flowsim.OpIs,
//	        Value:     "customer",
//	    })
type Graph struct {
	mu    sync.RWMutex
	nodes []Node
	edges []Edge
}

// NewGraph creates an empty graph store.
func NewGraph() *Graph {
	return &Graph{}
}

// NewID returns a fresh opaque identifier for nodes, edges, or rules.
func NewID() string {
	return uuid.New().String()
}

// AddNode adds a node with a zero position.
// Returns the graph for method chaining.
//
// Panics if id is empty or already present.
func (g *Graph) AddNode(id, label string) *Graph {
	return g.AddNodeAt(id, label, Position{})
}

// AddNodeAt adds a node at the given diagram position.
// Returns the graph for method chaining.
//
// Panics if id is empty or already present.
func (g *Graph) AddNodeAt(id, label string, pos Position) *Graph {
	if id == "" {
		panic("flowsim: node ID cannot be empty")
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.nodeIndex(id) >= 0 {
		panic(fmt.Sprintf("flowsim: duplicate node ID: %s", id))
	}

	g.nodes = append(g.nodes, Node{
		ID:       id,
		Position: pos,
		Data:     NodeData{Label: label},
	})
	return g
}

// SetDescription sets the description of an existing node.
//
// Panics if the node does not exist.
func (g *Graph) SetDescription(id, description string) *Graph {
	g.mu.Lock()
	defer g.mu.Unlock()

	i := g.nodeIndex(id)
	if i < 0 {
		panic(fmt.Sprintf("flowsim: unknown node ID: %s", id))
	}
	g.nodes[i].Data.Description = description
	return g
}

// MoveNode updates a node's diagram position.
//
// Panics if the node does not exist.
func (g *Graph) MoveNode(id string, pos Position) *Graph {
	g.mu.Lock()
	defer g.mu.Unlock()

	i := g.nodeIndex(id)
	if i < 0 {
		panic(fmt.Sprintf("flowsim: unknown node ID: %s", id))
	}
	g.nodes[i].Position = pos
	return g
}

// AddEdge adds a directed edge between two existing nodes.
// Returns the graph for method chaining. Self-loops are allowed; the
// engine's visited guard keeps them from cycling.
//
// Panics if id is empty or duplicate, or if either endpoint is unknown.
func (g *Graph) AddEdge(id, source, target string) *Graph {
	if id == "" {
		panic("flowsim: edge ID cannot be empty")
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.edgeIndex(id) >= 0 {
		panic(fmt.Sprintf("flowsim: duplicate edge ID: %s", id))
	}
	if g.nodeIndex(source) < 0 {
		panic(fmt.Sprintf("flowsim: edge source does not exist: %s", source))
	}
	if g.nodeIndex(target) < 0 {
		panic(fmt.Sprintf("flowsim: edge target does not exist: %s", target))
	}

	g.edges = append(g.edges, Edge{ID: id, Source: source, Target: target})
	return g
}

// AddRule appends a rule to an existing edge.
// Returns the graph for method chaining.
//
// Panics if the edge is unknown, the rule ID is empty, or the rule ID
// already exists on that edge.
func (g *Graph) AddRule(edgeID string, r Rule) *Graph {
	if r.ID == "" {
		panic("flowsim: rule ID cannot be empty")
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	i := g.edgeIndex(edgeID)
	if i < 0 {
		panic(fmt.Sprintf("flowsim: unknown edge ID: %s", edgeID))
	}
	for _, existing := range g.edges[i].Rules {
		if existing.ID == r.ID {
			panic(fmt.Sprintf("flowsim: duplicate rule ID on edge %s: %s", edgeID, r.ID))
		}
	}

	g.edges[i].Rules = append(g.edges[i].Rules, r)
	return g
}

// RemoveRule removes a rule from an edge. Unknown edge or rule IDs are a
// no-op, so removal is idempotent.
func (g *Graph) RemoveRule(edgeID, ruleID string) *Graph {
	g.mu.Lock()
	defer g.mu.Unlock()

	i := g.edgeIndex(edgeID)
	if i < 0 {
		return g
	}

	rules := g.edges[i].Rules
	for j, r := range rules {
		if r.ID == ruleID {
			g.edges[i].Rules = append(rules[:j:j], rules[j+1:]...)
			break
		}
	}
	return g
}

// RemoveEdge removes an edge. Unknown IDs are a no-op.
func (g *Graph) RemoveEdge(id string) *Graph {
	g.mu.Lock()
	defer g.mu.Unlock()

	if i := g.edgeIndex(id); i >= 0 {
		g.edges = append(g.edges[:i:i], g.edges[i+1:]...)
	}
	return g
}

// RemoveNode removes a node and every edge touching it, so the store
// never hands the engine a dangling endpoint. Unknown IDs are a no-op.
func (g *Graph) RemoveNode(id string) *Graph {
	g.mu.Lock()
	defer g.mu.Unlock()

	i := g.nodeIndex(id)
	if i < 0 {
		return g
	}
	g.nodes = append(g.nodes[:i:i], g.nodes[i+1:]...)

	kept := g.edges[:0:0]
	for _, e := range g.edges {
		if e.Source != id && e.Target != id {
			kept = append(kept, e)
		}
	}
	g.edges = kept
	return g
}

// NodeCount returns the number of nodes in the store.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.nodes)
}

// EdgeCount returns the number of edges in the store.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.edges)
}

// Snapshot returns deep copies of the node and edge sequences in
// insertion order. Later mutations of the graph do not affect a snapshot,
// and mutating a snapshot does not affect the graph.
func (g *Graph) Snapshot() ([]Node, []Edge) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nodes := make([]Node, len(g.nodes))
	copy(nodes, g.nodes)

	edges := make([]Edge, len(g.edges))
	for i, e := range g.edges {
		rules := make([]Rule, len(e.Rules))
		copy(rules, e.Rules)
		e.Rules = rules
		edges[i] = e
	}
	return nodes, edges
}

// nodeIndex returns the position of a node, or -1. Caller holds the lock.
func (g *Graph) nodeIndex(id string) int {
	for i, n := range g.nodes {
		if n.ID == id {
			return i
		}
	}
	return -1
}

// edgeIndex returns the position of an edge, or -1. Caller holds the lock.
func (g *Graph) edgeIndex(id string) int {
	for i, e := range g.edges {
		if e.ID == id {
			return i
		}
	}
	return -1
}

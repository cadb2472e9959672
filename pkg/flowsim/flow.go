package flowsim

// Result is the output of EvaluateFlow.
//
// ReachableNodes is the set of node IDs reachable from a root through
// rule-satisfied edges. ValidEdges has exactly one entry per input edge:
// true when the edge's source is reachable and its rules pass, false
// otherwise. An edge in a disconnected or rule-blocked sub-graph is
// recorded false, never omitted.
type Result struct {
	ReachableNodes map[string]bool `json:"reachableNodes"`
	ValidEdges     map[string]bool `json:"validEdges"`
}

// EvaluateFlow computes reachability for a graph snapshot under a
// simulation context.
//
// Root nodes (nodes that are no edge's target) are unconditionally
// reachable. Reachability then propagates breadth-first: an edge leaving a
// reachable node is valid iff its rules pass, and a valid edge makes its
// target reachable. Each node is expanded at most once, so cycles
// terminate; a pure cycle with no root node yields an empty reachable set.
//
// The result is a pure function of its inputs. The traversal uses an
// explicit FIFO queue seeded in node input order, so identical inputs
// produce identical results. O(V + E).
func EvaluateFlow(nodes []Node, edges []Edge, sim Context) Result {
	reachable := make(map[string]bool, len(nodes))
	valid := make(map[string]bool, len(edges))

	hasIncoming := make(map[string]bool, len(nodes))
	outgoing := make(map[string][]Edge, len(nodes))
	for _, e := range edges {
		hasIncoming[e.Target] = true
		outgoing[e.Source] = append(outgoing[e.Source], e)
	}

	queue := make([]string, 0, len(nodes))
	for _, n := range nodes {
		if !hasIncoming[n.ID] {
			reachable[n.ID] = true
			queue = append(queue, n.ID)
		}
	}

	expanded := make(map[string]bool, len(nodes))
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		// A node can be enqueued via several incoming paths; expand once.
		if expanded[id] {
			continue
		}
		expanded[id] = true

		for _, e := range outgoing[id] {
			ok := EvaluateEdgeRules(e, sim)
			valid[e.ID] = ok
			if !ok {
				continue
			}
			reachable[e.Target] = true
			queue = append(queue, e.Target)
		}
	}

	// Edges whose source was never reached stay invalid. This keeps the
	// result total over the input edge set: unreachable source and failed
	// rules both present as false.
	for _, e := range edges {
		if _, ok := valid[e.ID]; !ok {
			valid[e.ID] = false
		}
	}

	return Result{ReachableNodes: reachable, ValidEdges: valid}
}

package flowsim

// TraceResult is the ancestor closure of a focus node: every node and edge
// on some backward path from the focus to a root.
type TraceResult struct {
	Nodes map[string]bool `json:"highlightedNodes"`
	Edges map[string]bool `json:"highlightedEdges"`
}

// TraceAncestors computes the ancestor closure of focusID over raw
// connectivity. Rules and the simulation context are ignored entirely:
// this answers "how could one reach this node at all", not "is it
// currently reachable".
//
// The traversal walks incoming edges breadth-first from the focus node.
// Membership in the node set doubles as the visited guard, so cyclic
// graphs terminate and each node is enqueued at most once. A root focus
// yields just itself and no edges. O(V + E), cheap enough to recompute
// per hover event.
func TraceAncestors(focusID string, edges []Edge) TraceResult {
	incoming := make(map[string][]Edge, len(edges))
	for _, e := range edges {
		incoming[e.Target] = append(incoming[e.Target], e)
	}

	nodes := map[string]bool{focusID: true}
	marked := make(map[string]bool)

	queue := []string{focusID}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		for _, e := range incoming[id] {
			marked[e.ID] = true
			if !nodes[e.Source] {
				nodes[e.Source] = true
				queue = append(queue, e.Source)
			}
		}
	}

	return TraceResult{Nodes: nodes, Edges: marked}
}

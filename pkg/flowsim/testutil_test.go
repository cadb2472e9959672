package flowsim

// Shared fixtures used across tests.

// node builds a minimal node.
func node(id string) Node {
	return Node{ID: id, Data: NodeData{Label: id}}
}

// edge builds an edge with optional rules.
func edge(id, source, target string, rules ...Rule) Edge {
	return Edge{ID: id, Source: source, Target: target, Rules: rules}
}

// rule builds a rule with a derived ID.
func rule(condition string, op Operator, value any) Rule {
	return Rule{ID: "r-" + condition, Condition: condition, Operator: op, Value: value}
}

// chainGraph builds A->B->C->D with no rules.
func chainGraph() ([]Node, []Edge) {
	nodes := []Node{node("A"), node("B"), node("C"), node("D")}
	edges := []Edge{
		edge("ab", "A", "B"),
		edge("bc", "B", "C"),
		edge("cd", "C", "D"),
	}
	return nodes, edges
}

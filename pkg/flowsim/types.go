package flowsim

// Operator is the comparison applied by a rule against a context value.
type Operator string

// Supported rule operators.
const (
	// OpIs passes when the context value strictly equals the rule value.
	OpIs Operator = "is"

	// OpIsNot passes when the context value strictly differs from the rule value.
	OpIsNot Operator = "is_not"

	// OpGreaterThan passes when both values are numeric and context > rule.
	OpGreaterThan Operator = "greater_than"

	// OpLessThan passes when both values are numeric and context < rule.
	OpLessThan Operator = "less_than"
)

// Position is a 2-D diagram position. The engine never reads it; it is
// carried for the hosting presentation layer.
type Position struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// NodeData holds the user-facing fields of a feature node.
type NodeData struct {
	Label       string `json:"label" yaml:"label"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Node is a named feature in the flow diagram.
// IDs are opaque strings and must be unique within a snapshot.
type Node struct {
	ID       string   `json:"id" yaml:"id"`
	Position Position `json:"position" yaml:"position"`
	Data     NodeData `json:"data" yaml:"data"`
}

// Rule is a single predicate attached to an edge. Value may be a string,
// a number, or a boolean. Rules on one edge combine with logical AND.
type Rule struct {
	ID        string   `json:"id" yaml:"id"`
	Condition string   `json:"condition" yaml:"condition"`
	Operator  Operator `json:"operator" yaml:"operator"`
	Value     any      `json:"value" yaml:"value"`
}

// Edge is a directed, rule-gated connection between two nodes.
// Multiple edges may share the same source and target pair.
type Edge struct {
	ID     string `json:"id" yaml:"id"`
	Source string `json:"source" yaml:"source"`
	Target string `json:"target" yaml:"target"`
	Rules  []Rule `json:"rules,omitempty" yaml:"rules,omitempty"`
}

// Context is a simulation context: condition names mapped to concrete
// values. A name absent from the context is unconstrained, and every rule
// referencing it passes.
type Context map[string]any

// Clone returns an independent copy of the context.
func (c Context) Clone() Context {
	out := make(Context, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

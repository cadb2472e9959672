package flowsim

// EvaluateRule reports whether a single rule passes against the simulation
// context. It is total: every input yields a boolean, never an error.
//
// Policy, in order:
//   - A condition absent from the context passes. Absence means "no opinion",
//     so a path is never blocked by conditions nobody has set yet.
//   - OpIs and OpIsNot compare strictly: a number never equals its string
//     form, though numbers of different widths compare numerically.
//   - OpGreaterThan and OpLessThan require both sides to be numeric; any
//     type mismatch yields false rather than an error.
//   - Unknown operators pass, keeping the evaluator total over operator
//     additions the current build does not know about.
func EvaluateRule(r Rule, sim Context) bool {
	actual, ok := sim[r.Condition]
	if !ok {
		return true
	}

	switch r.Operator {
	case OpIs:
		return strictEqual(actual, r.Value)
	case OpIsNot:
		return !strictEqual(actual, r.Value)
	case OpGreaterThan:
		a, aok := toNumber(actual)
		b, bok := toNumber(r.Value)
		return aok && bok && a > b
	case OpLessThan:
		a, aok := toNumber(actual)
		b, bok := toNumber(r.Value)
		return aok && bok && a < b
	default:
		return true
	}
}

// EvaluateEdgeRules reports whether every rule on the edge passes.
// An edge with no rules is always satisfied.
func EvaluateEdgeRules(e Edge, sim Context) bool {
	for _, r := range e.Rules {
		if !EvaluateRule(r, sim) {
			return false
		}
	}
	return true
}

// strictEqual compares two values without cross-type coercion.
// Numeric values compare numerically regardless of width, so int 5 equals
// float64 5, but neither equals the string "5".
func strictEqual(a, b any) bool {
	if an, ok := toNumber(a); ok {
		bn, bok := toNumber(b)
		return bok && an == bn
	}

	switch av := a.(type) {
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	}
	return false
}

// toNumber converts a numeric value to float64.
// Bools and strings are not numbers; "5" does not convert.
func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

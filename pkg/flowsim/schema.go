package flowsim

import (
	"fmt"
	"sort"
)

// ConditionType classifies the observed values of a condition.
type ConditionType string

// Condition value classifications.
const (
	// ConditionBoolean means every observed value is a bool.
	ConditionBoolean ConditionType = "boolean"

	// ConditionNumber means every observed value is numeric.
	ConditionNumber ConditionType = "number"

	// ConditionEnum is the fallback for string or mixed-type values.
	ConditionEnum ConditionType = "enum"
)

// Condition is one entry of the inferred condition schema: a condition
// name, its inferred type, and the deduplicated set of values observed
// across all rules in the graph.
type Condition struct {
	Name   string        `json:"name" yaml:"name"`
	Type   ConditionType `json:"type" yaml:"type"`
	Values []any         `json:"values" yaml:"values"`
}

// DiscoverConditions scans every rule on every edge and infers the
// condition schema. It is a derived view recomputed from the full edge
// set on each call, so it never goes stale against the graph.
//
// Entries are sorted by condition name. Values are deduplicated and
// sorted by their string form; numeric values string-sort too ("25"
// before "30" before "7"), which keeps the ordering rule uniform across
// value types.
func DiscoverConditions(edges []Edge) []Condition {
	type bucket struct {
		keys   []string
		values map[string]any
	}
	buckets := make(map[string]*bucket)

	for _, e := range edges {
		for _, r := range e.Rules {
			b := buckets[r.Condition]
			if b == nil {
				b = &bucket{values: make(map[string]any)}
				buckets[r.Condition] = b
			}
			key := valueKey(r.Value)
			if _, seen := b.values[key]; !seen {
				b.values[key] = r.Value
				b.keys = append(b.keys, key)
			}
		}
	}

	out := make([]Condition, 0, len(buckets))
	for name, b := range buckets {
		sort.Slice(b.keys, func(i, j int) bool {
			return valueString(b.values[b.keys[i]]) < valueString(b.values[b.keys[j]])
		})

		values := make([]any, len(b.keys))
		for i, k := range b.keys {
			values[i] = b.values[k]
		}

		out = append(out, Condition{
			Name:   name,
			Type:   inferType(values),
			Values: values,
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// inferType classifies values: boolean if all bool, number if all numeric,
// enum otherwise.
func inferType(values []any) ConditionType {
	allBool, allNumber := true, true
	for _, v := range values {
		if _, ok := v.(bool); !ok {
			allBool = false
		}
		if _, ok := toNumber(v); !ok {
			allNumber = false
		}
	}
	switch {
	case allBool && len(values) > 0:
		return ConditionBoolean
	case allNumber && len(values) > 0:
		return ConditionNumber
	default:
		return ConditionEnum
	}
}

// valueKey identifies a value for deduplication. The type prefix keeps
// true and "true" distinct.
func valueKey(v any) string {
	return fmt.Sprintf("%T|%v", v, v)
}

// valueString is the string form used for sorting values.
func valueString(v any) string {
	return fmt.Sprintf("%v", v)
}

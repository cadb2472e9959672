package flowsim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  any
	}{
		{"empty", "", ""},
		{"plain string", "admin", "admin"},
		{"string with spaces trimmed", "  admin  ", "admin"},
		{"true", "true", true},
		{"false", "false", false},
		{"mixed-case bool", "True", true},
		{"integer", "42", int64(42)},
		{"negative integer", "-7", int64(-7)},
		{"float", "3.5", 3.5},
		{"quoted number stays string", `"5"`, "5"},
		{"single-quoted string", "'hello world'", "hello world"},
		{"quoted bool stays string", `"true"`, "true"},
		{"not quite a number", "1.2.3", "1.2.3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseValue(tt.input))
		})
	}
}

// TestParseValue_FeedsRuleEvaluation closes the loop from textual input to
// rule semantics: a parsed "5" compares as a number, a quoted "5" does not.
func TestParseValue_FeedsRuleEvaluation(t *testing.T) {
	r := rule("count", OpIs, 5)

	assert.True(t, EvaluateRule(r, Context{"count": ParseValue("5")}))
	assert.False(t, EvaluateRule(r, Context{"count": ParseValue(`"5"`)}))
}

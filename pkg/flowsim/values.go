package flowsim

import (
	"encoding/json"
	"strings"
)

// ParseValue interprets a textual value as a typed rule or context value.
// It handles quoted strings, boolean literals, and numbers; anything else
// stays a plain string. Hosts use this to turn free-form form input or
// CLI flags like --set premium=true into properly typed context entries,
// so "5" quoted stays a string while 5 becomes a number.
func ParseValue(s string) any {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	// Quoted strings (single or double) are always strings.
	if (strings.HasPrefix(s, "'") && strings.HasSuffix(s, "'") && len(s) >= 2) ||
		(strings.HasPrefix(s, "\"") && strings.HasSuffix(s, "\"") && len(s) >= 2) {
		return s[1 : len(s)-1]
	}

	switch strings.ToLower(s) {
	case "true":
		return true
	case "false":
		return false
	}

	// json.Number gives precise number parsing without float surprises
	// for integer input.
	var num json.Number
	if err := json.Unmarshal([]byte(s), &num); err == nil {
		if i, err := num.Int64(); err == nil {
			return i
		}
		if f, err := num.Float64(); err == nil {
			return f
		}
	}

	return s
}

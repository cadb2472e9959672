package flowsim

import (
	"errors"
	"fmt"
)

// Sentinel errors for document validation and decoding. The engine itself
// never returns errors; these belong to the import/export boundary that
// keeps malformed data away from it.
var (
	// ErrMissingNodeID indicates a node without an ID.
	ErrMissingNodeID = errors.New("node ID missing")

	// ErrDuplicateNodeID indicates two nodes sharing an ID.
	ErrDuplicateNodeID = errors.New("duplicate node ID")

	// ErrMissingEdgeID indicates an edge without an ID.
	ErrMissingEdgeID = errors.New("edge ID missing")

	// ErrDuplicateEdgeID indicates two edges sharing an ID.
	ErrDuplicateEdgeID = errors.New("duplicate edge ID")

	// ErrDanglingEndpoint indicates an edge endpoint naming no node in the
	// document.
	ErrDanglingEndpoint = errors.New("edge endpoint does not exist")

	// ErrMissingRuleID indicates a rule without an ID.
	ErrMissingRuleID = errors.New("rule ID missing")

	// ErrDuplicateRuleID indicates two rules on one edge sharing an ID.
	ErrDuplicateRuleID = errors.New("duplicate rule ID")

	// ErrMissingCondition indicates a rule with an empty condition name.
	ErrMissingCondition = errors.New("rule condition missing")

	// ErrUnsupportedFormat indicates a file extension DecodeFile cannot handle.
	ErrUnsupportedFormat = errors.New("unsupported document format")
)

// ValidationError wraps one structural problem found in a document,
// carrying the offending element's ID (or positional stand-in) for
// user-facing messages.
type ValidationError struct {
	// Element describes what was malformed ("node", "edge", "rule").
	Element string
	// ID is the offending element's ID, or its index form like "#3" when
	// the ID itself is missing.
	ID string
	// Err is the underlying sentinel error.
	Err error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Element, e.ID, e.Err)
}

// Unwrap returns the underlying sentinel for errors.Is support.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

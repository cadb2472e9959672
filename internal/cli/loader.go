package cli

import (
	"fmt"
	"strings"

	"github.com/flowsim-io/flowsim/pkg/flowsim"
)

// loadDocument reads and parses a flow document, translating failures into
// exit-coded errors after reporting them through the formatter.
func loadDocument(formatter *OutputFormatter, path string) (*flowsim.Document, error) {
	doc, err := flowsim.DecodeFile(path)
	if err != nil {
		_ = formatter.Error(ErrCodeRead, err.Error(), nil)
		return nil, WrapExitError(ExitCommandError, fmt.Sprintf("cannot load %s", path), err)
	}
	formatter.VerboseLog("Loaded %s: %d node(s), %d edge(s)", path, len(doc.Nodes), len(doc.Edges))
	return doc, nil
}

// loadValidDocument loads a document and additionally requires it to
// validate, so the engine's structural assumptions hold.
func loadValidDocument(formatter *OutputFormatter, path string) (*flowsim.Document, error) {
	doc, err := loadDocument(formatter, path)
	if err != nil {
		return nil, err
	}
	if err := doc.Validate(); err != nil {
		_ = formatter.Error(ErrCodeValidate, err.Error(), nil)
		return nil, WrapExitError(ExitFailure, fmt.Sprintf("%s failed validation", path), err)
	}
	return doc, nil
}

// parseContext builds a simulation context from repeated --set key=value
// flags. Values go through flowsim.ParseValue so numbers and booleans keep
// their types.
func parseContext(assignments []string) (flowsim.Context, error) {
	sim := flowsim.Context{}
	for _, assignment := range assignments {
		key, raw, found := strings.Cut(assignment, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid --set value %q: expected key=value", assignment)
		}
		sim[key] = flowsim.ParseValue(raw)
	}
	return sim, nil
}

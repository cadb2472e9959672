package flowsim

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Document is the serialized interchange form of a graph: top-level node
// and edge arrays. Decoding does not validate; call Validate before
// handing the data to the engine, which assumes structural invariants
// hold.
type Document struct {
	Nodes []Node `json:"nodes" yaml:"nodes"`
	Edges []Edge `json:"edges" yaml:"edges"`
}

// DecodeFile reads a document from a file, auto-detecting the format by
// extension. Supported extensions: .json, .yaml, .yml.
func DecodeFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return DecodeJSON(data)
	case ".yaml", ".yml":
		return DecodeYAML(data)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
}

// DecodeJSON parses a JSON document.
func DecodeJSON(data []byte) (*Document, error) {
	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parse json document: %w", err)
	}
	return &d, nil
}

// DecodeYAML parses a YAML document.
func DecodeYAML(data []byte) (*Document, error) {
	var d Document
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parse yaml document: %w", err)
	}
	return &d, nil
}

// EncodeJSON serializes the document as indented JSON.
func (d *Document) EncodeJSON() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// EncodeYAML serializes the document as YAML.
func (d *Document) EncodeYAML() ([]byte, error) {
	return yaml.Marshal(d)
}

// Validate checks structural completeness: IDs present and unique,
// edge endpoints resolving to nodes, rule conditions named. All problems
// are reported at once via errors.Join; nil means the document satisfies
// the invariants the engine assumes.
//
// Unknown rule operators are deliberately not rejected. The evaluator is
// total over operators and treats unrecognized ones as passing, so a
// document written by a newer build still loads.
func (d *Document) Validate() error {
	var errs []error

	nodeIDs := make(map[string]bool, len(d.Nodes))
	for i, n := range d.Nodes {
		switch {
		case n.ID == "":
			errs = append(errs, &ValidationError{"node", fmt.Sprintf("#%d", i), ErrMissingNodeID})
		case nodeIDs[n.ID]:
			errs = append(errs, &ValidationError{"node", n.ID, ErrDuplicateNodeID})
		default:
			nodeIDs[n.ID] = true
		}
	}

	edgeIDs := make(map[string]bool, len(d.Edges))
	for i, e := range d.Edges {
		id := e.ID
		switch {
		case e.ID == "":
			id = fmt.Sprintf("#%d", i)
			errs = append(errs, &ValidationError{"edge", id, ErrMissingEdgeID})
		case edgeIDs[e.ID]:
			errs = append(errs, &ValidationError{"edge", e.ID, ErrDuplicateEdgeID})
		default:
			edgeIDs[e.ID] = true
		}

		if !nodeIDs[e.Source] {
			errs = append(errs, &ValidationError{"edge", id, fmt.Errorf("%w: source %q", ErrDanglingEndpoint, e.Source)})
		}
		if !nodeIDs[e.Target] {
			errs = append(errs, &ValidationError{"edge", id, fmt.Errorf("%w: target %q", ErrDanglingEndpoint, e.Target)})
		}

		ruleIDs := make(map[string]bool, len(e.Rules))
		for j, r := range e.Rules {
			switch {
			case r.ID == "":
				errs = append(errs, &ValidationError{"rule", fmt.Sprintf("%s#%d", id, j), ErrMissingRuleID})
			case ruleIDs[r.ID]:
				errs = append(errs, &ValidationError{"rule", r.ID, ErrDuplicateRuleID})
			default:
				ruleIDs[r.ID] = true
			}
			if r.Condition == "" {
				errs = append(errs, &ValidationError{"rule", r.ID, ErrMissingCondition})
			}
		}
	}

	return errors.Join(errs...)
}

// Graph validates the document and builds a Graph store from it.
func (d *Document) Graph() (*Graph, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	g := NewGraph()
	for _, n := range d.Nodes {
		g.AddNodeAt(n.ID, n.Data.Label, n.Position)
		if n.Data.Description != "" {
			g.SetDescription(n.ID, n.Data.Description)
		}
	}
	for _, e := range d.Edges {
		g.AddEdge(e.ID, e.Source, e.Target)
		for _, r := range e.Rules {
			g.AddRule(e.ID, r)
		}
	}
	return g, nil
}

// FromGraph captures a graph snapshot as a document ready for export.
func FromGraph(g *Graph) *Document {
	nodes, edges := g.Snapshot()
	return &Document{Nodes: nodes, Edges: edges}
}

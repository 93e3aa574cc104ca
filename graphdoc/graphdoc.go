package graphdoc

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/stepgraph/core"
)

// Sentinel errors for document validation.
var (
	// ErrNoNodes indicates the document declares no nodes.
	ErrNoNodes = errors.New("graphdoc: document has no nodes")

	// ErrEmptyNodeID indicates a node with an empty id.
	ErrEmptyNodeID = errors.New("graphdoc: node id is empty")

	// ErrDuplicateNodeID indicates two nodes share an id.
	ErrDuplicateNodeID = errors.New("graphdoc: duplicate node id")

	// ErrDanglingEdge indicates an edge endpoint names no declared node.
	ErrDanglingEdge = errors.New("graphdoc: edge endpoint not declared")

	// ErrUnknownStart indicates start names no declared node.
	ErrUnknownStart = errors.New("graphdoc: start node not declared")
)

// Document is one authored graph plus its default start node.
type Document struct {
	Name  string      `yaml:"name,omitempty" json:"name,omitempty"`
	Start string      `yaml:"start,omitempty" json:"start,omitempty"`
	Nodes []core.Node `yaml:"nodes" json:"nodes"`
	Edges []core.Edge `yaml:"edges,omitempty" json:"edges,omitempty"`
}

// Parse decodes and validates a YAML graph document.
//
// Missing edge IDs are generated (e1, e2, …) and a missing start defaults
// to the first declared node, mirroring the authoring layer's policy.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("graphdoc: decode: %w", err)
	}
	if err := doc.normalize(); err != nil {
		return nil, err
	}

	return &doc, nil
}

// Load reads and parses the YAML graph document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("graphdoc: read %s: %w", path, err)
	}

	return Parse(data)
}

// normalize validates node/edge references and fills defaulted fields.
func (d *Document) normalize() error {
	if len(d.Nodes) == 0 {
		return ErrNoNodes
	}

	seen := make(map[string]bool, len(d.Nodes))
	for _, n := range d.Nodes {
		if n.ID == "" {
			return ErrEmptyNodeID
		}
		if seen[n.ID] {
			return fmt.Errorf("%w: %q", ErrDuplicateNodeID, n.ID)
		}
		seen[n.ID] = true
	}

	for i := range d.Edges {
		e := &d.Edges[i]
		if !seen[e.Source] {
			return fmt.Errorf("%w: %q", ErrDanglingEdge, e.Source)
		}
		if !seen[e.Target] {
			return fmt.Errorf("%w: %q", ErrDanglingEdge, e.Target)
		}
		if e.ID == "" {
			e.ID = fmt.Sprintf("e%d", i+1)
		}
	}

	if d.Start == "" {
		d.Start = d.Nodes[0].ID
	} else if !seen[d.Start] {
		return fmt.Errorf("%w: %q", ErrUnknownStart, d.Start)
	}

	return nil
}

package editor

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/stepgraph/core"
)

// Sentinel errors for authoring operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("editor: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("editor: edge not found")

	// ErrSelfLoop indicates an attempt to connect a node to itself.
	ErrSelfLoop = errors.New("editor: self-loop not allowed")

	// ErrDuplicateEdge indicates an attempt to duplicate an existing
	// undirected connection.
	ErrDuplicateEdge = errors.New("editor: duplicate edge not allowed")
)

// Editor holds a graph under construction. The zero value is not usable;
// call New. An Editor is not safe for concurrent use — it models a single
// interactive authoring session.
type Editor struct {
	nodes    []core.Node
	edges    []core.Edge
	startID  string
	nextNode int
	nextEdge int
}

// New returns an empty Editor.
func New() *Editor {
	return &Editor{}
}

// AddNode appends a node with a generated ID at the given position and
// returns it. An empty label defaults to the generated ID.
func (ed *Editor) AddNode(label string, x, y float64) core.Node {
	ed.nextNode++
	id := fmt.Sprintf("n%d", ed.nextNode)
	if label == "" {
		label = id
	}
	node := core.Node{ID: id, Label: label, X: x, Y: y}
	ed.nodes = append(ed.nodes, node)

	return node
}

// MoveNode updates a node's position. Position is render-only data; moving
// a node never changes any step sequence.
func (ed *Editor) MoveNode(id string, x, y float64) error {
	for i := range ed.nodes {
		if ed.nodes[i].ID == id {
			ed.nodes[i].X = x
			ed.nodes[i].Y = y

			return nil
		}
	}

	return fmt.Errorf("%w: %q", ErrNodeNotFound, id)
}

// RemoveNode deletes a node and every edge incident to it. A removed start
// selection falls back to the default (first authored node).
func (ed *Editor) RemoveNode(id string) error {
	idx := -1
	for i := range ed.nodes {
		if ed.nodes[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}

	ed.nodes = append(ed.nodes[:idx], ed.nodes[idx+1:]...)

	kept := ed.edges[:0]
	for _, e := range ed.edges {
		if e.Source != id && e.Target != id {
			kept = append(kept, e)
		}
	}
	ed.edges = kept

	if ed.startID == id {
		ed.startID = ""
	}

	return nil
}

// Connect creates an undirected edge between two existing nodes and returns
// it. Self-loops and duplicates of an existing connection (in either
// orientation) are rejected.
func (ed *Editor) Connect(sourceID, targetID string) (core.Edge, error) {
	if sourceID == targetID {
		return core.Edge{}, fmt.Errorf("%w: %q", ErrSelfLoop, sourceID)
	}
	if !ed.hasNode(sourceID) {
		return core.Edge{}, fmt.Errorf("%w: %q", ErrNodeNotFound, sourceID)
	}
	if !ed.hasNode(targetID) {
		return core.Edge{}, fmt.Errorf("%w: %q", ErrNodeNotFound, targetID)
	}
	for _, e := range ed.edges {
		if (e.Source == sourceID && e.Target == targetID) ||
			(e.Source == targetID && e.Target == sourceID) {
			return core.Edge{}, fmt.Errorf("%w: %s–%s", ErrDuplicateEdge, sourceID, targetID)
		}
	}

	ed.nextEdge++
	edge := core.Edge{
		ID:     fmt.Sprintf("e%d", ed.nextEdge),
		Source: sourceID,
		Target: targetID,
	}
	ed.edges = append(ed.edges, edge)

	return edge, nil
}

// Disconnect removes the edge with the given ID.
func (ed *Editor) Disconnect(edgeID string) error {
	for i := range ed.edges {
		if ed.edges[i].ID == edgeID {
			ed.edges = append(ed.edges[:i], ed.edges[i+1:]...)

			return nil
		}
	}

	return fmt.Errorf("%w: %q", ErrEdgeNotFound, edgeID)
}

// SelectStart pins the traversal start node for subsequent StartNode calls.
func (ed *Editor) SelectStart(id string) error {
	if !ed.hasNode(id) {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}
	ed.startID = id

	return nil
}

// StartNode returns the selected start node ID, defaulting to the first
// authored node. ok is false only when the graph is empty.
func (ed *Editor) StartNode() (id string, ok bool) {
	if ed.startID != "" {
		return ed.startID, true
	}
	if len(ed.nodes) > 0 {
		return ed.nodes[0].ID, true
	}

	return "", false
}

// Nodes returns a copy of the authored nodes in authoring order.
func (ed *Editor) Nodes() []core.Node {
	out := make([]core.Node, len(ed.nodes))
	copy(out, ed.nodes)

	return out
}

// Edges returns a copy of the authored edges in authoring order.
func (ed *Editor) Edges() []core.Edge {
	out := make([]core.Edge, len(ed.edges))
	copy(out, ed.edges)

	return out
}

func (ed *Editor) hasNode(id string) bool {
	for i := range ed.nodes {
		if ed.nodes[i].ID == id {
			return true
		}
	}

	return false
}

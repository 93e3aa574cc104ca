// This file declares Node, Edge, NodeState, Step, and StepSequence —
// the wire-visible vocabulary of the step-generation engine.
package core

// NodeState is the visual state of a node at one instant of a replay.
type NodeState string

// The four node states a Step may assign. Exactly one applies per node.
const (
	// StateDefault marks a node not yet touched by the traversal.
	StateDefault NodeState = "default"

	// StateVisited marks a node that has been discovered or fully processed.
	StateVisited NodeState = "visited"

	// StateCurrent marks the single node being processed right now.
	StateCurrent NodeState = "current"

	// StateArticulation marks an identified cut vertex.
	StateArticulation NodeState = "articulation"
)

// Node is a vertex of the caller's graph. Position and label exist purely
// for rendering; the steppers operate on IDs alone.
type Node struct {
	// ID uniquely identifies this node within its graph.
	ID string `json:"id" yaml:"id"`

	// Label is the display name shown in narrations and renderings.
	Label string `json:"label" yaml:"label"`

	// X, Y are 2D canvas coordinates, carried through untouched.
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Edge is an undirected connection between two nodes. Source/Target record
// authoring order only; every stepper treats the edge symmetrically.
type Edge struct {
	// ID uniquely identifies this edge within its graph.
	ID string `json:"id" yaml:"id"`

	// Source and Target are the endpoint node IDs.
	Source string `json:"source" yaml:"source"`
	Target string `json:"target" yaml:"target"`
}

// Step is one immutable snapshot of visual state plus narration, the unit
// of replay. Steps are emitted in strict chronological order and never
// mutated after being appended, so callers may hold one and render it
// without fear of later corruption.
type Step struct {
	// States maps every node ID of the input graph to its state here.
	States map[string]NodeState `json:"states"`

	// Highlights maps edge IDs to a highlighted flag; absent edges are
	// implicitly not highlighted. The set is not cumulative across steps.
	Highlights map[string]bool `json:"highlights,omitempty"`

	// Current is the node being processed, or empty when none is.
	Current string `json:"current,omitempty"`

	// Narration describes, in one human-readable line, what just happened.
	Narration string `json:"narration"`
}

// StepSequence is the ordered, finite output of one complete run of one
// algorithm on one fixed graph snapshot. It is pre-computed in full before
// return — replay, scrubbing, and speed changes need no re-computation.
type StepSequence []Step

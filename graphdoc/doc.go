// Package graphdoc reads graph documents — the YAML files the CLI and
// server feed into the steppers.
//
// Schema:
//
//	name: bridge demo
//	start: a            # optional; defaults to the first node
//	nodes:
//	  - {id: a, label: A, x: 0, y: 0}
//	  - {id: b, label: B, x: 1, y: 0}
//	edges:
//	  - {id: e1, source: a, target: b}   # id optional; e1, e2, … generated
//
// The document layer is where validation lives: the engine itself stays
// tolerant of malformed input, so duplicate node IDs, dangling edge
// endpoints, and unknown start nodes are rejected here, before a graph
// ever reaches a stepper.
//
// Errors:
//
//   - ErrNoNodes         — the document declares no nodes.
//   - ErrEmptyNodeID     — a node with an empty id.
//   - ErrDuplicateNodeID — two nodes share an id.
//   - ErrDanglingEdge    — an edge endpoint names no declared node.
//   - ErrUnknownStart    — start names no declared node.
package graphdoc

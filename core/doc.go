// Package core defines the data model shared by every stepper:
// nodes, edges, per-step visual state, and the adjacency map.
//
// # What
//
//   - Node, Edge: the caller's graph, treated as undirected and never mutated.
//   - NodeState: default | visited | current | articulation — exactly one
//     state per node at any instant of a replay.
//   - Step: one immutable snapshot of every node's state, the currently
//     highlighted edges, an optional current node, and a narration line.
//   - StepSequence: the fully materialized, ordered output of one run.
//   - AdjacencyMap: per-node neighbor lists built by BuildAdjacency,
//     preserving edge input order (this order is the tie-break for every
//     traversal, which is what makes runs deterministic).
//   - Tape: the step accumulator the steppers record onto; Emit deep-copies
//     the live bookkeeping so appended Steps can never be corrupted later.
//
// # Degeneracy policy
//
// The engine favors well-defined degeneracy over raised errors: dangling
// edge endpoints flow into the adjacency map but never into a Step's state
// mapping, self-loops and duplicate edges are tolerated, and an empty node
// list produces an empty sequence from every stepper.
//
// Complexity: BuildAdjacency is O(V + E) time and memory; Tape.Emit is O(V)
// per step (full snapshot copying is a deliberate trade of memory for replay
// simplicity).
package core

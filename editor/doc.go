// Package editor implements graph authoring: the mutable layer an
// interactive caller drives before handing an immutable snapshot to the
// steppers.
//
// # What
//
//   - Editor: add, move, and remove nodes; connect and disconnect
//     undirected edges; select the traversal start node.
//   - Authoring policy (enforced here, never in the engine):
//   - an edge is rejected when it would duplicate an existing undirected
//     connection between the same two nodes (either orientation);
//   - an edge is rejected when source equals target;
//   - removing a node drops its incident edges;
//   - the start node defaults to the first authored node when none was
//     selected.
//   - Nodes() / Edges() return copies, so a snapshot handed to a stepper is
//     fixed even while authoring continues.
//
// IDs are generated sequentially (n1, n2, … for nodes; e1, e2, … for
// edges) and never reused within one Editor.
//
// Errors:
//
//   - ErrNodeNotFound   — an operation referenced a non-existent node.
//   - ErrEdgeNotFound   — an operation referenced a non-existent edge.
//   - ErrSelfLoop       — Connect was called with source == target.
//   - ErrDuplicateEdge  — Connect would duplicate an undirected connection.
package editor

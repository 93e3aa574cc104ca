// Package bfs produces the replayable step sequence of a breadth-first
// traversal from a start node.
//
// # What
//
//   - Run(nodes, edges, startID): queue-based BFS over the undirected graph,
//     recording one Step per narratable instant:
//   - one initial step before any dequeue, with the start node already
//     marked visited (the visited set is seeded before the first emission)
//   - one "Visiting X" step per dequeue, with X current and all of X's
//     incident edges highlighted for that step only (the highlight set is
//     not cumulative, and deliberately includes edges to already-visited
//     neighbors)
//   - one final "BFS traversal complete" step with no highlights
//   - Neighbors discovered during X's scan are shown as visited immediately,
//     before they are themselves dequeued.
//   - Only the start node's connected component is traversed; unreached
//     nodes stay default forever.
//
// # Determinism
//
// Discovery order among a node's unvisited neighbors follows the adjacency
// list, which follows edge input order, so identical inputs always produce
// an identical sequence.
//
// # Degeneracy
//
// An empty node list returns an empty sequence; no error is ever raised.
// A startID absent from the node list is not validated here — supplying a
// valid one (or falling back to the first authored node) is the authoring
// layer's contract.
//
// Complexity (V = nodes, E = edges): O(V·(V + E)) time dominated by the
// per-step full state snapshot, O(V·E) worst-case memory for the sequence.
//
// Usage:
//
//	steps := bfs.Run(nodes, edges, "n1")
//	for _, s := range steps {
//	    fmt.Println(s.Narration)
//	}
package bfs

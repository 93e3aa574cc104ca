// Package dfs produces the replayable step sequence of a depth-first
// traversal from a start node.
//
// # What
//
//   - Run(nodes, edges, startID): recursive DFS over the undirected graph,
//     recording one Step per narratable instant:
//   - one initial step before descent, with the start node already visited
//   - one "Visiting X" step on discovery of X, with X current and all of
//     X's incident edges highlighted for that step only
//   - one "Backtracking from X" step after X's neighbors are exhausted,
//     with empty highlights — a distinct step, so playback can tell
//     descent from return
//   - one final "DFS traversal complete" step
//   - Only the start node's connected component is traversed; unreached
//     nodes stay default forever.
//
// # Determinism
//
// Recursion order among a node's unvisited neighbors follows the adjacency
// list, which follows edge input order.
//
// # Degeneracy
//
// Identical to bfs: an empty node list returns an empty sequence, startID
// is the authoring layer's contract, and no error is ever raised.
//
// Recursion depth equals the longest simple path from the start in the
// traversal tree; goroutine stacks grow on demand, so graphs with hundreds
// of nodes are well within bounds.
//
// Usage:
//
//	steps := dfs.Run(nodes, edges, "n1")
package dfs

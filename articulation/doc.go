// Package articulation produces the replayable step sequence of cut-vertex
// detection across every connected component of an undirected graph.
//
// # What
//
//   - Run(nodes, edges): classic discovery-time/low-link articulation-point
//     detection (Tarjan). Unlike bfs and dfs there is no start node — the
//     top level restarts from every unvisited node, so disconnected
//     components are each fully analyzed and every node reaches a terminal
//     state.
//   - Per node, two Steps are recorded:
//   - "Visiting X: disc=i, low=j" on discovery — the numeric disc/low
//     assignment is surfaced verbatim; those numbers are the whole point
//     of watching this algorithm run
//   - a completion step after X's neighbors are exhausted: either
//     "X is an articulation point (disc=i, low=j)" or
//     "Finished X (disc=i, low=j)"
//   - One final summary step assigns every node its terminal display state
//     (articulation vs visited) and narrates either
//     "Found N articulation point(s): <labels>" — labels comma-joined in
//     the order the cut vertices were first flagged — or
//     "No articulation points found".
//
// # Cut-vertex conditions
//
// With disc[u] = low[u] = ++time on discovery and low propagated back up
// the DFS tree:
//
//   - a root (no parent) is a cut vertex when it has more than one child
//     in its DFS tree;
//   - a non-root u is a cut vertex when some child v satisfies
//     low[v] >= disc[u] — v's subtree cannot reach back above u.
//
// The tree edge back to the immediate parent is never treated as a back
// edge. An isolated node is its own trivial component: it receives a
// disc/low assignment, can never be flagged (no children), and ends
// visited.
//
// # Determinism
//
// Component roots follow node input order; neighbor order follows edge
// input order. Swapping any edge's Source/Target never changes the
// resulting articulation set (the graph is undirected).
//
// # Degeneracy
//
// An empty node list returns an empty sequence; no error is ever raised.
//
// Usage:
//
//	steps := articulation.Run(nodes, edges)
package articulation

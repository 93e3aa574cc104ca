package dfs

import (
	"fmt"

	"github.com/katalvlaran/stepgraph/core"
)

// dfsWalker encapsulates mutable DFS state for one run.
type dfsWalker struct {
	adj     core.AdjacencyMap
	labels  core.LabelIndex
	edges   []core.Edge
	tape    *core.Tape
	visited map[string]bool
}

// Run produces the step sequence of a depth-first traversal of the
// undirected graph (nodes, edges) starting at startID. The input graph is
// never mutated; the returned sequence is fully materialized and immutable.
//
// An empty node list yields an empty sequence. startID is not validated —
// see the package documentation for the degeneracy policy.
func Run(nodes []core.Node, edges []core.Edge, startID string, opts ...Option) core.StepSequence {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if len(nodes) == 0 {
		return core.StepSequence{}
	}

	w := &dfsWalker{
		adj:     core.BuildAdjacency(nodes, edges),
		labels:  core.BuildLabels(nodes),
		edges:   edges,
		tape:    core.NewTape(nodes, o.OnStep),
		visited: make(map[string]bool, len(nodes)),
	}

	w.tape.Emit(fmt.Sprintf("Starting DFS from %s", w.labels.Resolve(startID)))
	w.traverse(startID)

	w.tape.ClearHighlights()
	w.tape.ClearCurrent()
	w.tape.Emit("DFS traversal complete")

	return w.tape.Steps()
}

// traverse visits u, recurses into its unvisited neighbors in adjacency
// order, then emits the backtrack step for u.
func (w *dfsWalker) traverse(u string) {
	// 1. Discover u: mark visited and current, highlight incident edges
	//    for this step only, narrate the descent.
	w.visited[u] = true
	w.tape.SetState(u, core.StateCurrent)
	w.tape.SetCurrent(u)
	w.tape.ClearHighlights()
	for _, edgeID := range core.IncidentEdges(w.edges, u) {
		w.tape.Highlight(edgeID)
	}
	w.tape.Emit(fmt.Sprintf("Visiting %s", w.labels.Resolve(u)))

	// 2. Demote u before descending: at most one node is current per Step.
	w.tape.SetState(u, core.StateVisited)
	w.tape.ClearCurrent()

	// 3. Recurse on unvisited neighbors.
	for _, v := range w.adj[u] {
		if !w.visited[v] {
			w.traverse(v)
		}
	}

	// 4. Narrate the return with empty highlights so playback can
	//    distinguish descent from backtracking.
	w.tape.ClearHighlights()
	w.tape.Emit(fmt.Sprintf("Backtracking from %s", w.labels.Resolve(u)))
}

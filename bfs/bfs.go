package bfs

import (
	"fmt"

	"github.com/katalvlaran/stepgraph/core"
)

// walker encapsulates mutable BFS state for one run.
type walker struct {
	adj     core.AdjacencyMap
	labels  core.LabelIndex
	edges   []core.Edge
	tape    *core.Tape
	queue   []string
	visited map[string]bool
}

// Run produces the step sequence of a breadth-first traversal of the
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

	w := &walker{
		adj:     core.BuildAdjacency(nodes, edges),
		labels:  core.BuildLabels(nodes),
		edges:   edges,
		tape:    core.NewTape(nodes, o.OnStep),
		queue:   make([]string, 0, len(nodes)),
		visited: make(map[string]bool, len(nodes)),
	}

	// Seed the visited set and queue with the start node, then narrate
	// once before any dequeue.
	w.visited[startID] = true
	w.queue = append(w.queue, startID)
	w.tape.SetState(startID, core.StateVisited)
	w.tape.Emit(fmt.Sprintf("Starting BFS from %s", w.labels.Resolve(startID)))

	w.loop()

	w.tape.ClearHighlights()
	w.tape.ClearCurrent()
	w.tape.Emit("BFS traversal complete")

	return w.tape.Steps()
}

// loop processes the queue until empty.
func (w *walker) loop() {
	var u string
	for len(w.queue) > 0 {
		u = w.queue[0]
		w.queue = w.queue[1:]

		w.visit(u)

		// Discover unvisited neighbors in adjacency order: mark them
		// visited immediately (queued nodes show as visited, not default).
		for _, v := range w.adj[u] {
			if !w.visited[v] {
				w.visited[v] = true
				w.tape.SetState(v, core.StateVisited)
				w.queue = append(w.queue, v)
			}
		}

		// Demote u from current back to visited after its neighbor scan.
		w.tape.SetState(u, core.StateVisited)
		w.tape.ClearCurrent()
	}
}

// visit marks u current, highlights its incident edges for this step only,
// and emits the visiting step.
func (w *walker) visit(u string) {
	w.tape.SetState(u, core.StateCurrent)
	w.tape.SetCurrent(u)
	w.tape.ClearHighlights()
	for _, edgeID := range core.IncidentEdges(w.edges, u) {
		w.tape.Highlight(edgeID)
	}
	w.tape.Emit(fmt.Sprintf("Visiting %s", w.labels.Resolve(u)))
}

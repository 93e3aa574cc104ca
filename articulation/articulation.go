package articulation

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/stepgraph/core"
)

// walker encapsulates the shared bookkeeping of one detection run: the
// discovery counter, disc/low/parent maps, and the accumulating cut set.
// All of it is local to a single Run invocation, so repeated or concurrent
// runs cannot interfere.
type walker struct {
	adj    core.AdjacencyMap
	labels core.LabelIndex
	tape   *core.Tape
	opts   Options

	time    int
	visited map[string]bool
	disc    map[string]int
	low     map[string]int
	parent  map[string]string // empty string marks a component root

	cutSet   map[string]bool
	cutOrder []string // IDs in the order they were first flagged
}

// Run produces the step sequence of articulation-point detection over the
// whole undirected graph (nodes, edges). Every connected component is
// analyzed; the input graph is never mutated.
//
// An empty node list yields an empty sequence; no error is ever raised.
func Run(nodes []core.Node, edges []core.Edge, opts ...Option) core.StepSequence {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if len(nodes) == 0 {
		return core.StepSequence{}
	}

	n := len(nodes)
	w := &walker{
		adj:     core.BuildAdjacency(nodes, edges),
		labels:  core.BuildLabels(nodes),
		tape:    core.NewTape(nodes, o.OnStep),
		opts:    o,
		visited: make(map[string]bool, n),
		disc:    make(map[string]int, n),
		low:     make(map[string]int, n),
		parent:  make(map[string]string, n),
		cutSet:  make(map[string]bool),
	}

	// Restart from every unvisited node so disconnected components are
	// each fully analyzed.
	for _, node := range nodes {
		if !w.visited[node.ID] {
			w.visit(node.ID, "")
		}
	}

	w.summarize(nodes)

	return w.tape.Steps()
}

// visit performs the recursive disc/low bookkeeping for u, whose parent is
// p (empty for a component root), emitting the discovery and completion
// steps and flagging cut vertices the moment their condition holds.
func (w *walker) visit(u, p string) {
	// 1. Assign disc[u] = low[u] = ++time and narrate the assignment.
	w.visited[u] = true
	w.time++
	w.disc[u] = w.time
	w.low[u] = w.time
	w.parent[u] = p

	w.tape.SetState(u, core.StateCurrent)
	w.tape.SetCurrent(u)
	w.tape.Emit(fmt.Sprintf("Visiting %s: disc=%d, low=%d",
		w.labels.Resolve(u), w.disc[u], w.low[u]))

	// At most one node is current per Step; demote before descending.
	w.tape.SetState(u, core.StateVisited)
	w.tape.ClearCurrent()

	// 2. Explore neighbors in adjacency order.
	children := 0
	for _, v := range w.adj[u] {
		switch {
		case !w.visited[v]:
			children++
			w.visit(v, u)
			if w.low[v] < w.low[u] {
				w.low[u] = w.low[v]
			}
			// Standard Tarjan cut-vertex conditions, checked right after
			// the recursive return so the flag order matches the moment
			// of discovery.
			if p == "" && children > 1 {
				w.flag(u)
			}
			if p != "" && w.low[v] >= w.disc[u] {
				w.flag(u)
			}
		case v != p:
			// Back edge (never the tree edge to the immediate parent).
			if w.disc[v] < w.low[u] {
				w.low[u] = w.disc[v]
			}
		}
	}

	// 3. Completion step: settle u's displayed state and narrate.
	if w.cutSet[u] {
		w.tape.SetState(u, core.StateArticulation)
		w.tape.Emit(fmt.Sprintf("%s is an articulation point (disc=%d, low=%d)",
			w.labels.Resolve(u), w.disc[u], w.low[u]))

		return
	}
	w.tape.Emit(fmt.Sprintf("Finished %s (disc=%d, low=%d)",
		w.labels.Resolve(u), w.disc[u], w.low[u]))
}

// flag records u as a cut vertex, once, preserving first-flag order.
func (w *walker) flag(u string) {
	if w.cutSet[u] {
		return
	}
	w.cutSet[u] = true
	w.cutOrder = append(w.cutOrder, u)
	if w.opts.OnCutVertex != nil {
		w.opts.OnCutVertex(u)
	}
}

// summarize emits the final step: every node at its terminal display state
// and a narration of the overall result.
func (w *walker) summarize(nodes []core.Node) {
	for _, node := range nodes {
		if w.cutSet[node.ID] {
			w.tape.SetState(node.ID, core.StateArticulation)
		} else {
			w.tape.SetState(node.ID, core.StateVisited)
		}
	}
	w.tape.ClearHighlights()
	w.tape.ClearCurrent()

	if len(w.cutOrder) == 0 {
		w.tape.Emit("No articulation points found")

		return
	}

	labels := make([]string, len(w.cutOrder))
	for i, id := range w.cutOrder {
		labels[i] = w.labels.Resolve(id)
	}
	w.tape.Emit(fmt.Sprintf("Found %d articulation point(s): %s",
		len(w.cutOrder), strings.Join(labels, ", ")))
}

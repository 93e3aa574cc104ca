package bfs_test

import (
	"reflect"
	"testing"

	"github.com/katalvlaran/stepgraph/bfs"
	"github.com/katalvlaran/stepgraph/core"
)

func pathGraph() ([]core.Node, []core.Edge) {
	nodes := []core.Node{
		{ID: "a", Label: "A"},
		{ID: "b", Label: "B"},
		{ID: "c", Label: "C"},
		{ID: "d", Label: "D"},
	}
	edges := []core.Edge{
		{ID: "e1", Source: "a", Target: "b"},
		{ID: "e2", Source: "b", Target: "c"},
		{ID: "e3", Source: "c", Target: "d"},
	}

	return nodes, edges
}

// visitOrder extracts the node marked current from each visiting step.
func visitOrder(steps core.StepSequence) []string {
	var order []string
	for _, s := range steps {
		if s.Current != "" {
			order = append(order, s.Current)
		}
	}

	return order
}

// TestRun_PathOrder covers the canonical path example: BFS from A visits
// A,B,C,D and no node is ever left default at the end.
func TestRun_PathOrder(t *testing.T) {
	nodes, edges := pathGraph()
	steps := bfs.Run(nodes, edges, "a")

	if len(steps) != 6 {
		t.Fatalf("len(steps) = %d; want 6 (initial + 4 visits + final)", len(steps))
	}
	if want := []string{"a", "b", "c", "d"}; !reflect.DeepEqual(visitOrder(steps), want) {
		t.Errorf("visit order = %v; want %v", visitOrder(steps), want)
	}

	final := steps[len(steps)-1]
	if final.Narration != "BFS traversal complete" {
		t.Errorf("final narration = %q", final.Narration)
	}
	for id, s := range final.States {
		if s != core.StateVisited {
			t.Errorf("final States[%s] = %s; want visited", id, s)
		}
	}
	if len(final.Highlights) != 0 {
		t.Errorf("final Highlights = %v; want empty", final.Highlights)
	}
}

// TestRun_InitialStep seeds the start node visited before any dequeue.
func TestRun_InitialStep(t *testing.T) {
	nodes, edges := pathGraph()
	steps := bfs.Run(nodes, edges, "a")

	initial := steps[0]
	if initial.Narration != "Starting BFS from A" {
		t.Errorf("initial narration = %q", initial.Narration)
	}
	if initial.States["a"] != core.StateVisited {
		t.Errorf("initial States[a] = %s; want visited", initial.States["a"])
	}
	for _, id := range []string{"b", "c", "d"} {
		if initial.States[id] != core.StateDefault {
			t.Errorf("initial States[%s] = %s; want default", id, initial.States[id])
		}
	}
	if initial.Current != "" {
		t.Errorf("initial Current = %q; want empty", initial.Current)
	}
}

// TestRun_LevelOrder checks the layering property on a 4-cycle: the order of
// first-current assignment is non-decreasing in distance from the start.
func TestRun_LevelOrder(t *testing.T) {
	nodes := []core.Node{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}}
	edges := []core.Edge{
		{ID: "e1", Source: "a", Target: "b"},
		{ID: "e2", Source: "b", Target: "c"},
		{ID: "e3", Source: "c", Target: "d"},
		{ID: "e4", Source: "d", Target: "a"},
	}
	steps := bfs.Run(nodes, edges, "a")

	// dist: a=0, b=1, d=1, c=2; adjacency tie-break puts b before d.
	if want := []string{"a", "b", "d", "c"}; !reflect.DeepEqual(visitOrder(steps), want) {
		t.Errorf("visit order = %v; want %v", visitOrder(steps), want)
	}
}

// TestRun_HighlightsPerStep verifies the highlight set reflects only the
// current node's incident edges — including edges back to visited neighbors —
// and never accumulates.
func TestRun_HighlightsPerStep(t *testing.T) {
	nodes, edges := pathGraph()
	steps := bfs.Run(nodes, edges, "a")

	wantHighlights := []map[string]bool{
		{"e1": true},             // visiting a
		{"e1": true, "e2": true}, // visiting b: e1 leads back to visited a
		{"e2": true, "e3": true}, // visiting c
		{"e3": true},             // visiting d
	}
	for i, want := range wantHighlights {
		got := steps[i+1].Highlights
		if !reflect.DeepEqual(got, want) {
			t.Errorf("step %d Highlights = %v; want %v", i+1, got, want)
		}
	}
}

// TestRun_ProvisionalVisited shows queued-but-unprocessed nodes as visited.
func TestRun_ProvisionalVisited(t *testing.T) {
	nodes := []core.Node{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	edges := []core.Edge{
		{ID: "e1", Source: "a", Target: "b"},
		{ID: "e2", Source: "a", Target: "c"},
	}
	steps := bfs.Run(nodes, edges, "a")

	// Step 2 is "visiting b"; c was discovered during a's scan and must
	// already show visited even though it has not been dequeued yet.
	if steps[2].Current != "b" {
		t.Fatalf("steps[2].Current = %q; want b", steps[2].Current)
	}
	if steps[2].States["c"] != core.StateVisited {
		t.Errorf("States[c] during b's visit = %s; want visited", steps[2].States["c"])
	}
}

// TestRun_SingleCurrent holds `current` on at most one node per step.
func TestRun_SingleCurrent(t *testing.T) {
	nodes, edges := pathGraph()
	for _, s := range bfs.Run(nodes, edges, "a") {
		count := 0
		for _, st := range s.States {
			if st == core.StateCurrent {
				count++
			}
		}
		if count > 1 {
			t.Errorf("step %q has %d current nodes", s.Narration, count)
		}
	}
}

// TestRun_Disconnected leaves unreachable nodes default forever.
func TestRun_Disconnected(t *testing.T) {
	nodes := []core.Node{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}}
	edges := []core.Edge{{ID: "e1", Source: "a", Target: "b"}}
	steps := bfs.Run(nodes, edges, "a")

	final := steps[len(steps)-1]
	for _, id := range []string{"c", "d"} {
		if final.States[id] != core.StateDefault {
			t.Errorf("final States[%s] = %s; want default", id, final.States[id])
		}
	}
}

// TestRun_EmptyGraph returns an empty sequence without raising.
func TestRun_EmptyGraph(t *testing.T) {
	if steps := bfs.Run(nil, nil, "a"); len(steps) != 0 {
		t.Errorf("len(steps) = %d; want 0", len(steps))
	}
}

// TestRun_SelfLoopAndDuplicates terminates and visits each node once.
func TestRun_SelfLoopAndDuplicates(t *testing.T) {
	nodes := []core.Node{{ID: "a", Label: "A"}, {ID: "b", Label: "B"}}
	edges := []core.Edge{
		{ID: "e1", Source: "a", Target: "a"},
		{ID: "e2", Source: "a", Target: "b"},
		{ID: "e3", Source: "b", Target: "a"},
	}
	steps := bfs.Run(nodes, edges, "a")

	if want := []string{"a", "b"}; !reflect.DeepEqual(visitOrder(steps), want) {
		t.Errorf("visit order = %v; want %v", visitOrder(steps), want)
	}
}

// TestRun_DanglingEndpoint never leaks unknown ids into state mappings.
func TestRun_DanglingEndpoint(t *testing.T) {
	nodes := []core.Node{{ID: "a", Label: "A"}}
	edges := []core.Edge{{ID: "e1", Source: "a", Target: "ghost"}}
	steps := bfs.Run(nodes, edges, "a")

	for _, s := range steps {
		if _, ok := s.States["ghost"]; ok {
			t.Fatalf("step %q leaked a dangling id into States", s.Narration)
		}
	}
}

// TestRun_Deterministic re-runs with identical inputs and compares sequences.
func TestRun_Deterministic(t *testing.T) {
	nodes, edges := pathGraph()
	first := bfs.Run(nodes, edges, "a")
	second := bfs.Run(nodes, edges, "a")

	if !reflect.DeepEqual(first, second) {
		t.Error("two identical runs produced different sequences")
	}
}

// TestRun_OnStepObserver receives every emitted step.
func TestRun_OnStepObserver(t *testing.T) {
	nodes, edges := pathGraph()
	var seen int
	steps := bfs.Run(nodes, edges, "a", bfs.WithOnStep(func(core.Step) { seen++ }))

	if seen != len(steps) {
		t.Errorf("observer saw %d steps; want %d", seen, len(steps))
	}
}

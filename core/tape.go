package core

// Tape accumulates the Steps of one run. The steppers mutate its live
// bookkeeping (states, highlights, current marker) and call Emit at each
// narratable instant; Emit snapshots everything so previously appended
// Steps stay immutable no matter what the traversal does next.
//
// A Tape is local to one invocation and never shared, so independent runs
// may proceed in parallel.
type Tape struct {
	states     map[string]NodeState
	highlights map[string]bool
	current    string
	steps      StepSequence
	onStep     func(Step)
}

// NewTape returns a Tape whose state mapping covers exactly the given nodes,
// all StateDefault. onStep, if non-nil, observes each Step as it is emitted.
func NewTape(nodes []Node, onStep func(Step)) *Tape {
	states := make(map[string]NodeState, len(nodes))
	for _, n := range nodes {
		states[n.ID] = StateDefault
	}

	return &Tape{
		states:     states,
		highlights: make(map[string]bool),
		steps:      make(StepSequence, 0, 2*len(nodes)+2),
		onStep:     onStep,
	}
}

// SetState records the state of a node. Writes for IDs outside the input
// node list are dropped: dangling edge endpoints may be traversed, but they
// never appear in a Step's state mapping.
func (t *Tape) SetState(id string, s NodeState) {
	if _, ok := t.states[id]; ok {
		t.states[id] = s
	}
}

// State reports the current bookkeeping state of a node.
func (t *Tape) State(id string) NodeState {
	return t.states[id]
}

// Highlight flags an edge as highlighted for subsequently emitted Steps.
func (t *Tape) Highlight(edgeID string) {
	t.highlights[edgeID] = true
}

// ClearHighlights empties the highlight set. Steppers call this before each
// visit so highlight sets never accumulate across steps.
func (t *Tape) ClearHighlights() {
	t.highlights = make(map[string]bool)
}

// SetCurrent records which node subsequent Steps report as current.
func (t *Tape) SetCurrent(id string) {
	t.current = id
}

// ClearCurrent removes the current-node marker.
func (t *Tape) ClearCurrent() {
	t.current = ""
}

// Emit appends one Step capturing a full copy of the live state and
// highlight mappings plus the narration, then notifies the observer.
func (t *Tape) Emit(narration string) {
	states := make(map[string]NodeState, len(t.states))
	for id, s := range t.states {
		states[id] = s
	}
	var highlights map[string]bool
	if len(t.highlights) > 0 {
		highlights = make(map[string]bool, len(t.highlights))
		for id, on := range t.highlights {
			highlights[id] = on
		}
	}

	step := Step{
		States:     states,
		Highlights: highlights,
		Current:    t.current,
		Narration:  narration,
	}
	t.steps = append(t.steps, step)
	if t.onStep != nil {
		t.onStep(step)
	}
}

// Steps returns the sequence recorded so far.
func (t *Tape) Steps() StepSequence {
	return t.steps
}

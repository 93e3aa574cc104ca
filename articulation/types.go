// Package articulation provides tunable observation options for cut-vertex
// step generation.
package articulation

import "github.com/katalvlaran/stepgraph/core"

// Option configures articulation step generation via functional arguments.
// Options observe the run; they never alter the emitted sequence.
type Option func(*Options)

// Options holds callbacks to observe the detection run.
type Options struct {
	// OnStep, if non-nil, receives each Step immediately after emission.
	OnStep func(core.Step)

	// OnCutVertex, if non-nil, is invoked the moment a node is first
	// flagged as an articulation point, in flag order.
	OnCutVertex func(id string)
}

// DefaultOptions returns Options with no observers installed.
func DefaultOptions() Options {
	return Options{}
}

// WithOnStep registers fn to observe each emitted Step.
func WithOnStep(fn func(core.Step)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// WithOnCutVertex registers fn to observe each newly flagged cut vertex.
func WithOnCutVertex(fn func(id string)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnCutVertex = fn
		}
	}
}

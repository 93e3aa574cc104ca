// Package dfs provides tunable observation options for depth-first
// step generation.
package dfs

import "github.com/katalvlaran/stepgraph/core"

// Option configures DFS step generation via functional arguments.
// Options observe the run; they never alter the emitted sequence.
type Option func(*Options)

// Options holds callbacks to observe DFS execution.
type Options struct {
	// OnStep, if non-nil, receives each Step immediately after emission.
	OnStep func(core.Step)
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

// Package hidden: contracts for projections, strategies and observers.
//
// This file declares the pluggable collaborator types of a Variable.
// Strategies and projections are interchangeable function-like values, not
// a class hierarchy: any accumulated bias must live in the hidden state
// itself, never inside a strategy object, so two Variables sharing one
// strategy value cannot interfere.
package hidden

import "github.com/katalvlaran/hiddenvar/entropy"

// Projection derives the observable output from the hidden state.
// Must be pure: no mutation of state, no entropy, no memory of its own.
// It is evaluated strictly before the strategy runs for the same
// interaction, so the output always reflects the state being replaced.
type Projection[S, O any] func(state S) O

// Identity returns the projection that exposes the hidden state itself as
// the observable output. Useful when the state type is already the
// observation (dice faces, permutations) and in tests.
func Identity[S any]() Projection[S, S] {
	return func(state S) S { return state }
}

// Strategy computes the successor of a hidden state from the current state
// and exactly one raw entropy draw.
//
// Purity contract: the same (state, draw) pair must yield the same
// successor. A strategy never holds internal memory and never draws
// entropy on its own; the Variable performs the single draw and hands it
// over. Strategies must be total over their state domain, or signal a
// domain error (surfaced by Interact as ErrStrategyExhausted).
type Strategy[S any] interface {
	// Next returns the successor of state for the given draw.
	Next(state S, draw entropy.Draw) (S, error)
}

// StrategyFunc adapts an ordinary function to the Strategy interface,
// in the manner of http.HandlerFunc.
type StrategyFunc[S any] func(state S, draw entropy.Draw) (S, error)

// Next calls the wrapped function.
func (f StrategyFunc[S]) Next(state S, draw entropy.Draw) (S, error) {
	return f(state, draw)
}

// Exhaustible is an optional Strategy capability: strategies whose domain
// has dead-end states implement it so the Variable can reject a doomed
// interaction before drawing entropy. That keeps the side-effect contract
// exact: a StrategyExhausted failure consumes zero draws.
type Exhaustible[S any] interface {
	// Exhausted reports whether state has no valid successor.
	Exhausted(state S) bool
}

// Record is the materialized trace of one interaction: the tuple an
// observer receives after the successor state is installed. Carrying the
// before/after states, it necessarily reveals what the production surface
// hides — attach observers only for diagnostics and tests, in the same
// spirit as PeekForTesting.
type Record[S, O any] struct {
	// Instance is the ID of the Variable that interacted.
	Instance string
	// Seq is the 1-based position of this interaction on its instance.
	Seq uint64
	// Before is the hidden state the projection observed.
	Before S
	// Output is what the caller received.
	Output O
	// After is the successor state installed by the strategy.
	After S
}

// Observer receives the record of each successful interaction. Observers
// run inside the interaction's critical section, so the records delivered
// for one instance are totally ordered; keep them fast.
type Observer[S, O any] func(rec Record[S, O])

// Option customizes a Variable at construction time.
type Option[S, O any] func(*Variable[S, O])

// WithObserver attaches an observer to the Variable. Several observers may
// be attached; they are notified in attachment order.
func WithObserver[S, O any](obs Observer[S, O]) Option[S, O] {
	return func(v *Variable[S, O]) {
		if obs == nil {
			return // nil observers are ignored, not an error
		}
		v.observers = append(v.observers, obs)
	}
}

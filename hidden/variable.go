// Package hidden: the Variable container and its interaction protocol.
//
// The read-project-draw-replace window of Interact is the only code that
// touches the hidden state, and it runs entirely under the instance mutex.
// Each Variable owns its own mutex; unrelated instances never serialize
// against each other.
package hidden

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/katalvlaran/hiddenvar/entropy"
)

// Variable holds a hidden state of type S and answers interactions with
// observable outputs of type O. At any instant exactly one valid state
// value exists; it is never read by more than one in-flight interaction.
//
// Zero value is not usable; construct with New.
type Variable[S, O any] struct {
	mu sync.Mutex // guards state and seq; the Interact critical section

	state      S
	strategy   Strategy[S]
	projection Projection[S, O]
	source     entropy.Source

	id        string
	seq       uint64 // interactions completed, monotone under mu
	observers []Observer[S, O]
}

// New constructs a Variable from an initial state and its three
// collaborators. All of them are caller-supplied: the container never
// invents a default entropy source, so no nondeterminism can leak in
// unannounced.
//
// Returns ErrNilStrategy, ErrNilProjection or ErrNilSource when the
// corresponding collaborator is missing.
// Complexity: O(1) plus option application.
func New[S, O any](
	initial S,
	strat Strategy[S],
	proj Projection[S, O],
	src entropy.Source,
	opts ...Option[S, O],
) (*Variable[S, O], error) {
	if strat == nil {
		return nil, ErrNilStrategy
	}
	if proj == nil {
		return nil, ErrNilProjection
	}
	if src == nil {
		return nil, ErrNilSource
	}

	v := &Variable[S, O]{
		state:      initial,
		strategy:   strat,
		projection: proj,
		source:     src,
		id:         uuid.NewString(),
	}
	for _, opt := range opts {
		opt(v)
	}

	return v, nil
}

// Interact performs one observation-and-perturbation step:
//
//  1. project the current state into the output,
//  2. draw exactly one entropy value,
//  3. compute the successor state via the strategy,
//  4. install the successor,
//  5. return the output.
//
// The whole step is observably atomic per instance: a concurrent caller
// blocks until this interaction completes and then reads the successor,
// never an intermediate. Interactions on one instance are totally ordered.
//
// Failure paths leave the state untouched and commit nothing:
//   - ErrStrategyExhausted — the strategy has no successor for the current
//     state. When the strategy implements Exhaustible this is detected
//     before the draw, so the failure consumes zero entropy.
//   - ErrEntropyExhausted — the source could not supply a draw.
//
// Complexity: O(projection + strategy) plus one draw.
func (v *Variable[S, O]) Interact() (O, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	var zero O

	// Observation happens first, against the state being replaced.
	out := v.projection(v.state)

	// Reject dead-end states before spending entropy.
	if ex, ok := v.strategy.(Exhaustible[S]); ok && ex.Exhausted(v.state) {
		return zero, fmt.Errorf("%w: state has no successor", ErrStrategyExhausted)
	}

	draw, err := v.source.Next()
	if err != nil {
		return zero, fmt.Errorf("%w: %w", ErrEntropyExhausted, err)
	}

	next, err := v.strategy.Next(v.state, draw)
	if err != nil {
		return zero, fmt.Errorf("%w: %w", ErrStrategyExhausted, err)
	}

	before := v.state
	v.state = next
	v.seq++

	if len(v.observers) > 0 {
		rec := Record[S, O]{
			Instance: v.id,
			Seq:      v.seq,
			Before:   before,
			Output:   out,
			After:    next,
		}
		// Inside the critical section: records stay totally ordered.
		for _, obs := range v.observers {
			obs(rec)
		}
	}

	return out, nil
}

// ID returns the instance identifier carried by interaction records.
// It reveals nothing about the hidden state.
func (v *Variable[S, O]) ID() string {
	return v.id
}

// Interactions reports how many interactions have completed successfully
// on this instance.
func (v *Variable[S, O]) Interactions() uint64 {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.seq
}

// PeekForTesting returns the current hidden state WITHOUT mutating it.
//
// This deliberately breaks the hiding contract — there is no production
// getter for the state, and that absence is the whole point of the type.
// Use it only inside test suites to make deterministic assertions about
// state evolution. It takes the instance mutex, so a peek never observes
// a half-replaced state.
func (v *Variable[S, O]) PeekForTesting() S {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.state
}

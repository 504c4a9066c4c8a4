package strategy

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/hiddenvar/entropy"
)

// Transition is one weighted edge of a Markov table: from the row's state
// to To, with relative Weight. Weights need not sum to one; each row is
// normalized by its own total.
type Transition[S comparable] struct {
	// To is the successor state this transition leads to.
	To S
	// Weight is the relative likelihood of taking this transition; must be
	// non-negative. Zero-weight transitions are kept but never taken.
	Weight float64
}

// Markov is the compiled form of a transition table: per-state target
// slices with cumulative weight rows, so one float derived from the single
// draw selects a successor in O(log n).
type Markov[S comparable] struct {
	rows map[S]markovRow[S]
}

type markovRow[S comparable] struct {
	targets []S
	cum     []float64 // cumulative weights; cum[len-1] is the row total
}

// NewMarkov compiles a transition table into a strategy whose successor
// distribution is conditioned on the current state. States absent from the
// table are dead ends: the strategy reports them through the Exhaustible
// capability, so interacting from such a state fails without spending
// entropy.
//
// Validation: ErrEmptyTable for an empty table; ErrBadWeight for a negative
// weight, a row with no transitions, or a row whose weights sum to zero.
// Complexity: O(total transitions) construction, O(log row) per step.
func NewMarkov[S comparable](transitions map[S][]Transition[S]) (*Markov[S], error) {
	if len(transitions) == 0 {
		return nil, ErrEmptyTable
	}

	rows := make(map[S]markovRow[S], len(transitions))
	for from, ts := range transitions {
		if len(ts) == 0 {
			return nil, fmt.Errorf("%w: state %v has an empty row", ErrBadWeight, from)
		}

		targets := make([]S, len(ts))
		weights := make([]float64, len(ts))
		for i, t := range ts {
			if t.Weight < 0 {
				return nil, fmt.Errorf("%w: %v -> %v has weight %v", ErrBadWeight, from, t.To, t.Weight)
			}
			targets[i] = t.To
			weights[i] = t.Weight
		}

		// Cumulative row: weights become a stepwise CDF scaled by the total.
		cum := make([]float64, len(weights))
		floats.CumSum(cum, weights)
		if cum[len(cum)-1] <= 0 {
			return nil, fmt.Errorf("%w: state %v has zero total weight", ErrBadWeight, from)
		}

		rows[from] = markovRow[S]{targets: targets, cum: cum}
	}

	return &Markov[S]{rows: rows}, nil
}

// Next picks the successor of state by inverting the row's cumulative
// weights at a point derived from the single draw.
func (m *Markov[S]) Next(state S, draw entropy.Draw) (S, error) {
	row, ok := m.rows[state]
	if !ok {
		var zero S
		return zero, fmt.Errorf("strategy: no transitions from state %v", state)
	}

	// u lies in [0, total); strictly-greater search skips zero-weight
	// transitions (their cumulative step is empty).
	u := draw.Float64() * row.cum[len(row.cum)-1]
	i := sort.Search(len(row.cum), func(i int) bool { return row.cum[i] > u })

	return row.targets[i], nil
}

// Exhausted reports whether state has no outgoing transitions.
// Implements hidden.Exhaustible, so a dead-end interaction costs no entropy.
func (m *Markov[S]) Exhausted(state S) bool {
	_, ok := m.rows[state]

	return !ok
}

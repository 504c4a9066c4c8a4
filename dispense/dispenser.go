// Package dispense: Dispenser construction and hand making.
//
// The hidden variable underneath has state []int (the current permutation),
// output []int (a frozen copy of it), strategy.NewShuffle() as the
// perturbation and a copying projection. Dispense-level code never touches
// the permutation directly; everything flows through Interact, which is
// what makes hand making atomic and seeded deals replayable.
package dispense

import (
	"fmt"

	"github.com/katalvlaran/hiddenvar/entropy"
	"github.com/katalvlaran/hiddenvar/hidden"
	"github.com/katalvlaran/hiddenvar/strategy"
)

// Dispenser deals Hands over decks of exactly n elements while keeping its
// current ordering hidden. The type parameter T is the deck element type.
type Dispenser[T any] struct {
	perm *hidden.Variable[[]int, []int]
	n    int
}

// New creates a Dispenser for decks of n elements, with a freshly
// randomized initial ordering drawn from src (one interaction at
// construction, mirroring how a deck is shuffled before the first deal).
//
// Returns ErrBadSize for negative n and propagates construction or initial
// shuffle failures from the core.
// Complexity: O(n).
func New[T any](n int, src entropy.Source) (*Dispenser[T], error) {
	if n < 0 {
		return nil, ErrBadSize
	}

	initial := make([]int, n)
	for i := range initial {
		initial[i] = i
	}

	freeze := hidden.Projection[[]int, []int](func(p []int) []int {
		frozen := make([]int, len(p))
		copy(frozen, p)

		return frozen
	})

	v, err := hidden.New(initial, strategy.NewShuffle(), freeze, src)
	if err != nil {
		return nil, err
	}

	d := &Dispenser[T]{perm: v, n: n}
	// Shuffle once at creation so the identity ordering is never dealt.
	if _, err = v.Interact(); err != nil {
		return nil, fmt.Errorf("dispense: initial shuffle: %w", err)
	}

	return d, nil
}

// Len returns the deck size this dispenser was created for.
func (d *Dispenser[T]) Len() int {
	return d.n
}

// MakeHand freezes the current hidden ordering against deck and reshuffles.
//
// The deck must have exactly Len() elements so that every choice has a
// corresponding element and every element is choosable; otherwise
// ErrDeckSize is returned and no interaction takes place.
// Complexity: O(n).
func (d *Dispenser[T]) MakeHand(deck []T) (*Hand[T], error) {
	if len(deck) != d.n {
		return nil, ErrDeckSize
	}

	return d.MakeHandUnchecked(deck)
}

// MakeHandUnchecked freezes a hand without the deck length check. Choices
// beyond the deck surface later as ErrChoice from Hand.Choose.
// Complexity: O(n).
func (d *Dispenser[T]) MakeHandUnchecked(deck []T) (*Hand[T], error) {
	choices, err := d.perm.Interact()
	if err != nil {
		return nil, err
	}

	return &Hand[T]{choices: choices, deck: deck}, nil
}

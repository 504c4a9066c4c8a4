package dispense

import "fmt"

// Hand is a lock on one dealt ordering: a frozen slice of choices paired
// with the deck they index into. Hands never change once made — repeated
// Choose calls with the same index always agree, no matter how often the
// dispenser reshuffles afterwards.
type Hand[T any] struct {
	choices []int
	deck    []T
}

// Choose picks the element selected by the idx-th frozen choice.
//
// With choices [2,3,1,0,4] over deck [A,B,C,D,E], Choose(1) follows choice
// 3 to element D:
//
//	1 -> [..., 3, ...] -> [..., D, ...]
//
// Returns ErrChoice when idx is outside the hand or, for hands made
// unchecked, when the choice has no corresponding deck element.
// Complexity: O(1).
func (h *Hand[T]) Choose(idx int) (T, error) {
	var zero T
	if idx < 0 || idx >= len(h.choices) {
		return zero, fmt.Errorf("%w: index %d of %d choices", ErrChoice, idx, len(h.choices))
	}

	c := h.choices[idx]
	if c < 0 || c >= len(h.deck) {
		return zero, fmt.Errorf("%w: choice %d exceeds deck of %d", ErrChoice, c, len(h.deck))
	}

	return h.deck[c], nil
}

// Len returns the number of choices in this hand.
func (h *Hand[T]) Len() int {
	return len(h.choices)
}

// Package dispense deals frozen hands of choices from a hidden, constantly
// reshuffled ordering — the card-dealer built on top of package hidden.
//
// 🚀 What is a Dispenser?
//
//	A Dispenser holds a hidden permutation of 0..n-1. Making a hand freezes
//	a copy of that permutation against a deck of n elements and then
//	reshuffles the internal ordering, so:
//	  • two hands made back-to-back from the same deck may or may not agree
//	  • choosing the same index from one hand ALWAYS yields the same element
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/hiddenvar/dispense"
//	  "github.com/katalvlaran/hiddenvar/entropy"
//	)
//
//	deck := []rune{'a', 'b', 'c', 'd', 'e', 'f'}
//	d, err := dispense.New[rune](len(deck), entropy.NewSeeded(11))
//
//	first, err := d.MakeHand(deck)   // freezes one ordering, reshuffles
//	second, err := d.MakeHand(deck)  // a different (likely) ordering
//
//	x, err := first.Choose(1)        // stable: repeat calls agree
//
// Every MakeHand is exactly one interaction on the underlying hidden
// variable: the frozen permutation is the observable output, the reshuffle
// is the hidden mutation. Seed the entropy source to replay entire deals.
//
// See examples in example_test.go.
package dispense

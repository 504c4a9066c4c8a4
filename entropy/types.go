// Package entropy declares the Source contract and the Draw value type.
package entropy

import "math/bits"

// Draw is one raw entropy value: 64 uniformly distributed bits.
//
// All helper methods are pure functions of the receiver, so a strategy that
// derives several quantities from one Draw stays deterministic given that
// Draw. Helpers never consume additional entropy.
type Draw uint64

// IntN maps the draw onto [0, n) with the multiply-shift bounded reduction
// (Lemire), avoiding the modulo bias of d % n.
// Returns 0 when n <= 0.
// Complexity: O(1).
func (d Draw) IntN(n int) int {
	if n <= 0 {
		return 0 // degenerate bound, callers validate domains upstream
	}
	// hi is floor(d * n / 2^64), uniform over [0, n) up to negligible bias.
	hi, _ := bits.Mul64(uint64(d), uint64(n))

	return int(hi)
}

// Float64 maps the draw onto [0, 1) using the top 53 bits, matching the
// mantissa width of float64 so every representable step is equally likely.
// Complexity: O(1).
func (d Draw) Float64() float64 {
	return float64(d>>11) / (1 << 53)
}

// Bool distills the draw into a single fair bit (the lowest one).
// Complexity: O(1).
func (d Draw) Bool() bool {
	return d&1 == 1
}

// Source supplies randomness on demand as an unbounded lazy sequence of
// draws. Implementations are restartable only by constructing a new Source
// from the same seed; there is no rewind.
//
// Implementations that can be shared across goroutines must serialize Next
// internally: one reproducible source feeding several consumers has to emit
// one well-defined global draw order, or seeded replay breaks.
type Source interface {
	// Next produces the next raw entropy value.
	// Bounded sources return ErrExhausted once depleted; unbounded
	// sources never fail except on backend errors (ErrBackendRead).
	Next() (Draw, error)
}

package strategy

import (
	"math/rand/v2"

	"github.com/katalvlaran/hiddenvar/entropy"
	"github.com/katalvlaran/hiddenvar/hidden"
)

// shuffleStream is the fixed second PCG word; the draw supplies the first.
// Any constant works, it only has to be the same for every step so that
// equal draws produce equal shuffles.
const shuffleStream = 0x9e3779b97f4a7c15

// NewShuffle returns the permutation-reshuffle strategy: the successor of a
// permutation is a Fisher–Yates shuffle of a copy of it.
//
// A full shuffle needs more randomness than the container's single draw
// carries, so the draw seeds a local PCG stream that supplies the swap
// indices. Determinism survives: the same (state, draw) pair always yields
// the same successor, and the stream is discarded afterwards — no memory
// accumulates in the strategy.
//
// The input slice is never mutated; the successor is a fresh slice.
// Complexity: O(len(state)) per step.
func NewShuffle() hidden.Strategy[[]int] {
	return hidden.StrategyFunc[[]int](func(state []int, draw entropy.Draw) ([]int, error) {
		next := make([]int, len(state))
		copy(next, state)

		rng := rand.New(rand.NewPCG(uint64(draw), shuffleStream))
		rng.Shuffle(len(next), func(i, j int) {
			next[i], next[j] = next[j], next[i]
		})

		return next, nil
	})
}

package strategy

import (
	"github.com/katalvlaran/hiddenvar/entropy"
	"github.com/katalvlaran/hiddenvar/hidden"
)

// Identity returns the no-op strategy: the successor is the state itself
// and the draw is ignored. Total over any domain, never fails.
//
// Its place is in tests and baselines — a hidden variable driven by
// Identity degenerates into a plain (still atomic) value. Note the
// container draws entropy regardless, so seeded replay positions stay
// aligned when Identity is swapped for a real strategy.
// Complexity: O(1) per step.
func Identity[S any]() hidden.Strategy[S] {
	return hidden.StrategyFunc[S](func(state S, _ entropy.Draw) (S, error) {
		return state, nil
	})
}

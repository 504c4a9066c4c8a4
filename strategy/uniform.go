package strategy

import (
	"github.com/katalvlaran/hiddenvar/entropy"
	"github.com/katalvlaran/hiddenvar/hidden"
)

// NewUniform returns the uniform-replacement strategy over a finite domain:
// each step discards the current state and draws a uniform pick from the
// domain. The current state does not influence the successor, so the
// repeat probability per step is exactly 1/len(domain).
//
// The domain slice is copied; later mutation of the caller's slice cannot
// skew the distribution. Returns ErrEmptyDomain when no values are given.
// Complexity: O(len(domain)) construction, O(1) per step.
func NewUniform[S any](domain []S) (hidden.Strategy[S], error) {
	if len(domain) == 0 {
		return nil, ErrEmptyDomain
	}

	values := make([]S, len(domain))
	copy(values, domain)

	return hidden.StrategyFunc[S](func(_ S, draw entropy.Draw) (S, error) {
		return values[draw.IntN(len(values))], nil
	}), nil
}

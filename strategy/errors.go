package strategy

import "errors"

var (
	// ErrEmptyDomain indicates a uniform strategy was given no values to pick from.
	ErrEmptyDomain = errors.New("strategy: domain must contain at least one value")
	// ErrBadWeight indicates a negative transition weight or a row whose
	// weights sum to zero.
	ErrBadWeight = errors.New("strategy: transition weights must be non-negative with a positive row sum")
	// ErrEmptyTable indicates a Markov strategy was given no transitions at all.
	ErrEmptyTable = errors.New("strategy: transition table must contain at least one row")
)

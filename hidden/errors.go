package hidden

import "errors"

var (
	// ErrStrategyExhausted indicates the strategy has no valid successor for
	// the current hidden state; the state is left unchanged.
	ErrStrategyExhausted = errors.New("hidden: strategy exhausted")
	// ErrEntropyExhausted indicates the entropy source could not supply a
	// draw; the state is left unchanged.
	ErrEntropyExhausted = errors.New("hidden: entropy exhausted")
	// ErrNilStrategy indicates New received a nil strategy.
	ErrNilStrategy = errors.New("hidden: nil strategy")
	// ErrNilProjection indicates New received a nil projection.
	ErrNilProjection = errors.New("hidden: nil projection")
	// ErrNilSource indicates New received a nil entropy source.
	ErrNilSource = errors.New("hidden: nil entropy source")
)

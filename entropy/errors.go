package entropy

import "errors"

var (
	// ErrExhausted indicates a bounded Source cannot supply another draw.
	ErrExhausted = errors.New("entropy: source exhausted")
	// ErrBackendRead indicates the underlying randomness backend failed.
	ErrBackendRead = errors.New("entropy: backend read failed")
)

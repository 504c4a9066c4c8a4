package entropy

import "sync"

// Sequence replays a fixed script of draws, then fails. The bounded
// counterexample to the "unbounded lazy sequence" contract: it exists so
// tests can pin the exact entropy a scenario consumes, and so the
// exhaustion failure path of an interaction is reachable at all.
type Sequence struct {
	mu    sync.Mutex
	draws []Draw
	pos   int
}

// NewSequence returns a bounded Source that emits the given draws in order
// and fails with ErrExhausted once they run out.
// Complexity: O(1) per draw, O(len(draws)) space.
func NewSequence(draws ...Draw) *Sequence {
	scripted := make([]Draw, len(draws))
	copy(scripted, draws) // detach from the caller's slice

	return &Sequence{draws: scripted}
}

// Next emits the next scripted draw, or ErrExhausted past the end.
// A failed call does not advance the script.
func (s *Sequence) Next() (Draw, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pos >= len(s.draws) {
		return 0, ErrExhausted
	}
	d := s.draws[s.pos]
	s.pos++

	return d, nil
}

// Remaining reports how many scripted draws are left to emit.
func (s *Sequence) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.draws) - s.pos
}

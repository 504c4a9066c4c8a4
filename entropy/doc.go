// Package entropy abstracts the randomness backend consumed by hidden
// variables: an unbounded lazy sequence of raw draws, restartable only by
// constructing a new source from a seed, never by rewinding.
//
// 🚀 What is entropy?
//
//	The one contract the core requires is Source:
//		• Next() (Draw, error) — produce the next raw entropy value
//	plus a Draw value type with pure helpers for turning one 64-bit draw
//	into bounded integers, unit-interval floats, or booleans.
//
// ✨ Stock implementations:
//
//   - NewSeeded(seed)     – PCG-backed, mutex-guarded, replayable: two sources
//     built from the same seed emit identical draw sequences
//   - NewCrypto()         – crypto/rand backed, non-reproducible
//   - NewSequence(d0,…)   – a finite script of draws for deterministic tests;
//     fails with ErrExhausted once depleted
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/hiddenvar/entropy"
//
//	src := entropy.NewSeeded(42)
//	d, err := src.Next()      // d is a Draw (uint64)
//	i := d.IntN(6)            // die face derived from the single draw
//
// Sharing: a Source may safely feed several hidden variables at once; the
// seeded implementation serializes Next internally so that concurrent draws
// never interleave mid-generation and seeded replay stays exact.
//
// See examples in example_test.go.
package entropy

// Package hiddenvar is your toolkit for modeling hidden-variable objects:
// entities that answer every interaction with an observable output while
// silently perturbing an internal state you are never allowed to read.
//
// 🚀 What is hiddenvar?
//
//	A small, thread-safe library that brings together:
//		• Core container: hold a hidden state, interact atomically, never leak it
//		• Entropy sources: seeded (replayable), crypto-backed, or scripted
//		• Strategies: identity, uniform replacement, Markov transitions, shuffles
//		• Dispense: the card-dealer built on top — frozen hands, reshuffled decks
//		• Trace: opt-in structured interaction logging
//
// ✨ Why choose hiddenvar?
//
//   - Reproducible – seed an entropy source and replay whole interaction runs
//   - Rock-solid guarantees – one mutex per instance, no stale or duplicated state
//   - Pure strategies – same (state, draw) in, same successor out, always
//   - Extensible – plug your own Strategy, Projection and Source values
//
// Under the hood, everything is organized under five subpackages:
//
//	entropy/  — the Source interface, Draw helpers, and stock implementations
//	hidden/   — Variable: the state container and its Interact protocol
//	strategy/ — interchangeable successor policies for hidden state
//	dispense/ — Dispenser & Hand: choice dealing with a hidden shuffle
//	trace/    — zerolog-backed interaction observers
//
// Quick sketch:
//
//	state ──projection──▶ output (returned)
//	  │
//	  └──strategy(state, draw)──▶ next state (installed, hidden)
//
// One Interact() call performs exactly one projection, one entropy draw and
// one state replacement, as an indivisible step. Dive into each package's
// doc.go and example_test.go for worked scenarios.
//
//	go get github.com/katalvlaran/hiddenvar
package hiddenvar

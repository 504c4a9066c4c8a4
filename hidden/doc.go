// Package hidden provides Variable, a container for state that callers may
// interact with but never read: every Interact call returns an observable
// projection of the current hidden state and then replaces that state with
// a freshly randomized successor, as one indivisible step.
//
// 🚀 What is a hidden variable?
//
//	An object whose externally visible behavior depends on internal state
//	that is deliberately unobservable and perturbed after every use:
//	  • Physics-style simulations of unobservable internals
//	  • Randomized testing with replayable runs
//	  • Game mechanics (shuffled decks, fog of war)
//	  • Adversarial modeling
//
// ✨ Key guarantees:
//   - Atomic interactions: no caller ever observes a stale, duplicated or
//     half-replaced state; interactions on one instance are totally ordered
//   - Exactly one entropy draw per successful interaction, zero on failure
//   - Failed interactions leave the hidden state untouched
//   - Deterministic replay: same seed, same strategy, same projection ⇒
//     identical output and state sequences
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/hiddenvar/entropy"
//	  "github.com/katalvlaran/hiddenvar/hidden"
//	)
//
//	// A six-sided die that rerolls itself after every look.
//	roll := hidden.StrategyFunc[int](func(_ int, d entropy.Draw) (int, error) {
//	  return 1 + d.IntN(6), nil
//	})
//	die, err := hidden.New(1, roll, hidden.Identity[int](), entropy.NewSeeded(7))
//	face, err := die.Interact() // observe, then the die rerolls underneath
//
// The hiding contract is an API-visibility property, not a security one:
// production code has no getter for the state, while PeekForTesting exists,
// loudly labeled, for deterministic test assertions only.
//
// Concurrency: each Variable guards its state with its own mutex; a second
// Interact on the same instance blocks until the first completes. Distinct
// instances never contend with each other.
//
// See example_test.go for worked scenarios.
package hidden

// Package strategy is the stock catalog of successor policies for hidden
// variables: interchangeable, pure values implementing hidden.Strategy.
//
// 🚀 What is a strategy?
//
//	The policy deciding how hidden state evolves after each observation.
//	Every strategy here is a pure mapping (state, draw) → successor:
//	  • Identity           – keep the state; the no-op baseline for tests
//	  • NewUniform(domain)  – replace with a uniform pick from a finite domain
//	  • NewMarkov(table)    – weighted transition conditioned on the current state
//	  • NewShuffle()        – reshuffle a permutation (backs package dispense)
//
// ✨ Purity, enforced by shape:
//
//   - A strategy consumes exactly the one draw the container hands it;
//     Shuffle stretches that single draw into a full shuffle by seeding a
//     local PCG stream from it, staying deterministic given the draw
//   - No strategy holds memory: bias lives in the state, so one strategy
//     value may back any number of hidden variables simultaneously
//
// ⚙️ Usage:
//
//	weather, err := strategy.NewMarkov(map[string][]strategy.Transition[string]{
//	  "sunny": {{To: "sunny", Weight: 0.8}, {To: "rainy", Weight: 0.2}},
//	  "rainy": {{To: "sunny", Weight: 0.4}, {To: "rainy", Weight: 0.6}},
//	})
//
// Markov tables may contain dead-end states (no outgoing row): the strategy
// reports them via the Exhaustible capability, and an interaction from such
// a state fails cleanly without consuming entropy.
//
// See examples in example_test.go.
package strategy

// Package trace provides structured-logging observers for hidden
// variables, backed by zerolog.
//
// The core itself stays silent: logging is strictly opt-in, attached at
// construction with hidden.WithObserver. At info level an observer records
// the instance, sequence number and output of each interaction — enough to
// correlate runs without revealing what the variable hides. Enable debug
// level and the before/after states are logged too, the same deliberate
// contract break as PeekForTesting, meant for diagnostics and tests only.
//
// ⚙️ Usage:
//
//	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
//	v, err := hidden.New(0, strat, proj, src,
//	  hidden.WithObserver(trace.Observer[int, int](logger)))
//
// Observers run inside the interaction's critical section; keep the writer
// fast or sample upstream.
package trace

package trace

import (
	"github.com/rs/zerolog"

	"github.com/katalvlaran/hiddenvar/hidden"
)

// Observer returns a hidden.Observer that logs each interaction with the
// given logger: instance, sequence and output at info level; the hidden
// before/after states additionally at debug level.
//
// Debug output reveals the hidden state on purpose. Wire a debug-enabled
// logger only in tests and diagnostics, never in paths where the hiding
// contract matters.
func Observer[S, O any](logger zerolog.Logger) hidden.Observer[S, O] {
	return func(rec hidden.Record[S, O]) {
		evt := logger.Info().
			Str("instance", rec.Instance).
			Uint64("seq", rec.Seq).
			Interface("output", rec.Output)
		evt.Msg("interaction")

		if logger.GetLevel() <= zerolog.DebugLevel {
			logger.Debug().
				Str("instance", rec.Instance).
				Uint64("seq", rec.Seq).
				Interface("state_before", rec.Before).
				Interface("state_after", rec.After).
				Msg("interaction state")
		}
	}
}

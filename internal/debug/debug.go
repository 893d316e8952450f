// Package debug provides per-stage value tracing for rule-table tuning.
// Tracing is opt-in per call site so a single noisy workflow can be
// inspected without drowning the logs.
package debug

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05.000"}).
	With().Timestamp().Logger()

// Output logs a trace line if tracing is enabled.
func Output(enabled bool, format string, args ...interface{}) {
	if enabled {
		logger.Debug().Msgf(format, args...)
	}
}

// Timing logs the duration of an operation if tracing is enabled. Call as
// defer debug.Timing(enabled, "load csv")().
func Timing(enabled bool, operation string) func() {
	if !enabled {
		return func() {}
	}
	start := time.Now()
	logger.Debug().Str("op", operation).Msg("starting")
	return func() {
		logger.Debug().Str("op", operation).Dur("took", time.Since(start)).Msg("completed")
	}
}

package colview

import (
	"os"

	"github.com/rs/zerolog"
)

// dbg is the package debug logger. Tracing stays off unless the
// COLVIEW_DEBUG environment variable is set, so library consumers pay
// nothing by default.
var dbg = newDebugLogger()

func newDebugLogger() zerolog.Logger {
	if os.Getenv("COLVIEW_DEBUG") == "" {
		return zerolog.Nop()
	}
	w := zerolog.ConsoleWriter{Out: os.Stderr}
	return zerolog.New(w).Level(zerolog.DebugLevel).
		With().Timestamp().Str("component", "colview").Logger()
}

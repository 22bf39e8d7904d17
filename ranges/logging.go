package ranges

import (
	"os"

	"github.com/rs/zerolog"
)

// logger emits the package's only diagnostic: the warning raised when
// the length of a filtered unbounded sequence is requested.
var logger = zerolog.New(os.Stderr).Level(zerolog.WarnLevel).With().Timestamp().Logger()

// SetLogger replaces the package logger. Pass zerolog.Nop() to silence
// diagnostics entirely.
func SetLogger(l zerolog.Logger) {
	logger = l
}

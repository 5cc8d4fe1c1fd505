// Package logging builds the zerolog loggers shared by the window and the
// command line tools.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns a console logger on stderr tagged with component.
func New(component string, verbose bool) zerolog.Logger {
	return NewWithWriter(os.Stderr, component, verbose)
}

func NewWithWriter(w io.Writer, component string, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	return zerolog.New(out).Level(level).With().Timestamp().Str("component", component).Logger()
}

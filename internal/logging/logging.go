// Package logging configures the process-wide zerolog logger. Diagnostic
// output goes to stderr; reports never pass through the logger.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var logger = zerolog.New(io.Discard)

// Setup initializes the global logger. Quiet wins over verbose.
func Setup(verbose, quiet bool) {
	level := zerolog.WarnLevel
	switch {
	case quiet:
		logger = zerolog.New(io.Discard)
		return
	case verbose:
		level = zerolog.DebugLevel
	}

	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	logger = zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// Logger returns the configured logger.
func Logger() *zerolog.Logger {
	return &logger
}

// Package logging builds the zerolog loggers used by the poker-odds commands.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// SetupLogger configures zerolog with pretty console output on stderr.
func SetupLogger(debug bool) zerolog.Logger {
	return New(os.Stderr, levelFor(debug), false)
}

// SetupStructuredLogger configures zerolog for JSON output on stderr.
func SetupStructuredLogger(debug bool) zerolog.Logger {
	return New(os.Stderr, levelFor(debug), true)
}

// New returns a timestamped logger writing to w at level.
func New(w io.Writer, level zerolog.Level, structured bool) zerolog.Logger {
	if structured {
		zerolog.TimeFieldFormat = time.RFC3339Nano
	} else {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// ParseLevel is zerolog.ParseLevel with case folding. An empty string is info.
func ParseLevel(s string) (zerolog.Level, error) {
	if s == "" {
		return zerolog.InfoLevel, nil
	}
	return zerolog.ParseLevel(strings.ToLower(s))
}

func levelFor(debug bool) zerolog.Level {
	if debug {
		return zerolog.DebugLevel
	}
	return zerolog.InfoLevel
}

/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package logger provides the process-wide logger. It is quiet by default:
// only warnings reach stderr until SetLevel raises the verbosity.
package logger

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

var (
	mu     sync.RWMutex
	output io.Writer = os.Stderr
	level            = zerolog.WarnLevel
	logger           = newLogger(output, level)
)

func newLogger(w io.Writer, lvl zerolog.Level) zerolog.Logger {
	if f, ok := w.(*os.File); ok {
		tty := isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		w = zerolog.ConsoleWriter{Out: f, TimeFormat: time.Kitchen, NoColor: !tty}
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

// SetOutput configures the logger output destination.
// Use io.Discard to silence all logging.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
	logger = newLogger(output, level)
}

// SetLevel maps a -v count to a level: 0 warn, 1 info, 2 debug, 3+ trace.
func SetLevel(verbosity int) {
	mu.Lock()
	defer mu.Unlock()
	switch {
	case verbosity <= 0:
		level = zerolog.WarnLevel
	case verbosity == 1:
		level = zerolog.InfoLevel
	case verbosity == 2:
		level = zerolog.DebugLevel
	default:
		level = zerolog.TraceLevel
	}
	logger = newLogger(output, level)
}

// Get returns the underlying logger for structured fields.
func Get() *zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	l := logger
	return &l
}

// Warn logs a warning message.
func Warn(format string, args ...any) {
	Get().Warn().Msgf(format, args...)
}

// Info logs an informational message.
func Info(format string, args ...any) {
	Get().Info().Msgf(format, args...)
}

// Debug logs a debug message.
func Debug(format string, args ...any) {
	Get().Debug().Msgf(format, args...)
}

// Package logger provides modifications to charmbracelet/log's default logger to be used in various files/packages.
package logger

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// New creates a charm log on stderr for diagnostics of the program prog.
func New(prog string) *log.Logger {
	return NewWithConfig(os.Stderr, prog, log.GetLevel(), false, false, log.TextFormatter)
}

// NewWithConfig creates a new charm log with custom config
func NewWithConfig(w io.Writer, prefix string, level log.Level, caller bool, showTimestamp bool, fmt log.Formatter) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          prefix,
		Level:           level,
		ReportCaller:    caller,
		ReportTimestamp: showTimestamp,
		Formatter:       fmt,
	})
}

// Setup points the package level logger at w with the given prefix, at
// debug level when debug is set.
func Setup(w io.Writer, prog string, debug bool) *log.Logger {
	level := log.WarnLevel
	if debug {
		level = log.DebugLevel
	}
	log.SetLevel(level)
	l := NewWithConfig(w, prog, level, debug, false, log.TextFormatter)
	log.SetDefault(l)
	return l
}

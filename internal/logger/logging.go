// Package logger builds the charmbracelet/log loggers used across mailfill.
package logger

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// New creates a text logger writing to w.
func New(w io.Writer, prefix string, level log.Level) *log.Logger {
	if w == nil {
		w = io.Discard
	}
	return log.NewWithOptions(w, log.Options{
		Prefix:          prefix,
		ReportCaller:    false,
		ReportTimestamp: level == log.DebugLevel,
		Formatter:       log.TextFormatter,
		Level:           level,
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return New(io.Discard, "", log.FatalLevel)
}

// ParseLevel maps a config level name to a log level. Unknown or empty names
// fall back to warn.
func ParseLevel(name string) log.Level {
	name = strings.TrimSpace(name)
	if name == "" {
		return log.WarnLevel
	}
	lvl, err := log.ParseLevel(strings.ToLower(name))
	if err != nil {
		return log.WarnLevel
	}
	return lvl
}

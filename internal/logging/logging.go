// Package logging builds the diagnostic logger used across kickoff.
//
// User-facing status lines go through internal/ui. This logger is for
// diagnostics only and stays quiet at the default "warn" level.
package logging

import (
	"io"

	"github.com/sirupsen/logrus"
)

// New returns a logrus logger writing text records to w at the given level.
func New(level logrus.Level, w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(level)
	l.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp:       true,
		DisableLevelTruncation: true,
	})
	return l
}

// Discard returns a logger that drops everything. Handy in tests.
func Discard() *logrus.Logger {
	return New(logrus.PanicLevel, io.Discard)
}

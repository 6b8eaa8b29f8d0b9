// Package log provides the logging interface used throughout the
// emulator. The default implementation is a logrus logger configured
// for plain, greppable output; components that shouldn't log (tests,
// benchmarks) use the null logger instead.
package log

import (
	"github.com/sirupsen/logrus"
)

// Logger is the interface components log through. *logrus.Logger
// satisfies it, as does the null logger.
type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

// New returns a logrus backed Logger writing to stderr at Info level.
func New() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.InfoLevel)
	l.Formatter = &logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
		DisableSorting:   true,
		DisableQuote:     true,
	}
	return l
}

// NewDebug returns a Logger that also emits Debugf output.
func NewDebug() *logrus.Logger {
	l := New()
	l.SetLevel(logrus.DebugLevel)
	return l
}

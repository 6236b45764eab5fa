// Package logging provides scoped leveled loggers for emucam packages.
// Levels are controlled through pion's default factory, i.e. the
// PION_LOG_* environment variables, unless a custom factory is set.
package logging

import (
	"github.com/pion/logging"
)

var loggerFactory logging.LoggerFactory = logging.NewDefaultLoggerFactory()

// SetLoggerFactory replaces the factory used by subsequent NewLogger
// calls. Passing nil restores the default factory. Loggers created
// earlier are unaffected.
func SetLoggerFactory(f logging.LoggerFactory) {
	if f == nil {
		f = logging.NewDefaultLoggerFactory()
	}
	loggerFactory = f
}

func NewLogger(scope string) logging.LeveledLogger {
	return loggerFactory.NewLogger(scope)
}

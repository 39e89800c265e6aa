package logger

import (
	"log"

	"github.com/xy-planning-network/cairn"
)

// A LoggerOptFn is a functional option configuring a CairnLogger when constructing a new one.
type LoggerOptFn func(*CairnLogger)

// WithEnv sets the environment CairnLogger is operating in.
func WithEnv(env cairn.Environment) func(*CairnLogger) {
	return func(l *CairnLogger) {
		l.env = env
	}
}

// WithLevel sets the log level CairnLogger uses.
func WithLevel(level LogLevel) func(*CairnLogger) {
	return func(l *CairnLogger) {
		l.ll = level
	}
}

// WithLogger sets the log.Logger CairnLogger uses.
func WithLogger(log *log.Logger) func(*CairnLogger) {
	return func(l *CairnLogger) {
		l.l = log
	}
}

// WithSkip sets the number of frames in the call stack
// to skip in order to log the desired file and line number
// of the calling code.
func WithSkip(skip int) func(*CairnLogger) {
	return func(l *CairnLogger) {
		l.skip = skip
	}
}

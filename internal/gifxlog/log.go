// Package gifxlog provides a swappable logging abstraction, modeled on
// pdfcpu's pkg/log: package-level named loggers that are no-ops until a
// caller installs a backend.
package gifxlog

import (
	"go.uber.org/zap"
)

// Logger is the minimal surface gifxlog needs from a backend.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

type logger struct {
	log Logger
}

// Debug and Trace are gifxlog's two defined loggers. Debug carries the
// compositor's per-frame messages and the CLI's per-file messages, surfaced
// with -v. No package in this module writes to Trace.
var (
	Debug = &logger{}
	Trace = &logger{}
)

// SetDebugLogger installs the backend for Debug.
func SetDebugLogger(l Logger) { Debug.log = l }

// SetTraceLogger installs the backend for Trace.
func SetTraceLogger(l Logger) { Trace.log = l }

// SetDefaultLoggers installs a zap-backed sugared logger for Debug and
// leaves Trace disabled; the CLI calls it when -v is given. Trace gets a
// backend only through SetTraceLogger.
func SetDefaultLoggers() {
	zl, err := zap.NewDevelopment()
	if err != nil {
		return
	}
	sugar := zl.Sugar()
	SetDebugLogger(zapAdapter{sugar})
}

// DisableLoggers turns off all logging.
func DisableLoggers() {
	SetDebugLogger(nil)
	SetTraceLogger(nil)
}

type zapAdapter struct {
	s *zap.SugaredLogger
}

func (a zapAdapter) Debugf(format string, args ...interface{}) { a.s.Debugf(format, args...) }
func (a zapAdapter) Infof(format string, args ...interface{})  { a.s.Infof(format, args...) }
func (a zapAdapter) Errorf(format string, args ...interface{}) { a.s.Errorf(format, args...) }

func (l *logger) Debugf(format string, args ...interface{}) {
	if l.log == nil {
		return
	}
	l.log.Debugf(format, args...)
}

func (l *logger) Infof(format string, args ...interface{}) {
	if l.log == nil {
		return
	}
	l.log.Infof(format, args...)
}

func (l *logger) Errorf(format string, args ...interface{}) {
	if l.log == nil {
		return
	}
	l.log.Errorf(format, args...)
}

// Package logging adapts logrus to the github.com/pion/logging.LeveledLogger
// interface, the same logger contract the pion/ice and pion/turn family of
// libraries accept. This lets tcpmux.TcpDemultiplexer be wired into a real
// ICE agent's logger factory without an adapter at the call site, while
// still giving the standalone demo driver a familiar text-formatted logger.
package logging

import (
	"io"

	"github.com/pion/logging"
	"github.com/sirupsen/logrus"
)

// Logger wraps a *logrus.Entry and satisfies logging.LeveledLogger.
type Logger struct {
	entry *logrus.Entry
}

// New creates a Logger scoped to component, writing through the standard
// logrus logger.
func New(component string) *Logger {
	return &Logger{entry: logrus.WithField("component", component)}
}

// NewWithOutput creates a Logger scoped to component, writing to out at the
// given level, formatted with TextFormatter.
func NewWithOutput(component string, out io.Writer, level logrus.Level) *Logger {
	base := logrus.New()
	base.SetOutput(out)
	base.SetLevel(level)
	base.SetFormatter(NewTextFormatter())
	return &Logger{entry: base.WithField("component", component)}
}

var _ logging.LeveledLogger = (*Logger)(nil)

func (l *Logger) Trace(msg string)                          { l.entry.Trace(msg) }
func (l *Logger) Tracef(format string, args ...interface{}) { l.entry.Tracef(format, args...) }
func (l *Logger) Debug(msg string)                          { l.entry.Debug(msg) }
func (l *Logger) Debugf(format string, args ...interface{}) { l.entry.Debugf(format, args...) }
func (l *Logger) Info(msg string)                           { l.entry.Info(msg) }
func (l *Logger) Infof(format string, args ...interface{})  { l.entry.Infof(format, args...) }
func (l *Logger) Warn(msg string)                            { l.entry.Warn(msg) }
func (l *Logger) Warnf(format string, args ...interface{})   { l.entry.Warnf(format, args...) }
func (l *Logger) Error(msg string)                           { l.entry.Error(msg) }
func (l *Logger) Errorf(format string, args ...interface{})  { l.entry.Errorf(format, args...) }

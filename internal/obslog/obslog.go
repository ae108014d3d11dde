// Package obslog provides the structured logger used across gowordring.
//
// Logging is opt-in: until a caller installs a logger with SetDefault, all
// log calls are discarded, so embedding gowordring as a library costs
// nothing by default.
package obslog

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// Logger is the minimal surface gowordring's internals depend on.
type Logger interface {
	Debugf(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

type discardLogger struct{}

func (discardLogger) Debugf(string, ...any) {}
func (discardLogger) Warnf(string, ...any)  {}
func (discardLogger) Errorf(string, ...any) {}

var (
	mu      sync.RWMutex
	current Logger = discardLogger{}
)

// SetDefault installs the logger used by gowordring's internal packages.
// Pass nil to go back to discarding log output.
func SetDefault(l Logger) {
	mu.Lock()
	defer mu.Unlock()
	if l == nil {
		current = discardLogger{}
		return
	}
	current = l
}

// Default returns the currently installed logger.
func Default() Logger {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// NewLogrus wraps a *logrus.Logger (or logrus.StandardLogger()) as a Logger.
func NewLogrus(l *logrus.Logger) Logger {
	return logrusLogger{l}
}

type logrusLogger struct {
	l *logrus.Logger
}

func (w logrusLogger) Debugf(format string, args ...any) { w.l.Debugf(format, args...) }
func (w logrusLogger) Warnf(format string, args ...any)  { w.l.Warnf(format, args...) }
func (w logrusLogger) Errorf(format string, args ...any) { w.l.Errorf(format, args...) }

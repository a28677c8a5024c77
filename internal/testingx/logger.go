package testingx

import (
	"fmt"
	"sync"

	"github.com/govapi/govapi/internal/model"
)

// Logger is a [model.Logger] that collects the emitted lines.
//
// The zero value is ready to use.
type Logger struct {
	debug []string
	info  []string
	warn  []string
	mu    sync.Mutex
}

var _ model.Logger = &Logger{}

// Debug implements model.Logger.
func (l *Logger) Debug(message string) {
	l.mu.Lock()
	l.debug = append(l.debug, message)
	l.mu.Unlock()
}

// Debugf implements model.Logger.
func (l *Logger) Debugf(format string, v ...any) {
	l.Debug(fmt.Sprintf(format, v...))
}

// Info implements model.Logger.
func (l *Logger) Info(message string) {
	l.mu.Lock()
	l.info = append(l.info, message)
	l.mu.Unlock()
}

// Infof implements model.Logger.
func (l *Logger) Infof(format string, v ...any) {
	l.Info(fmt.Sprintf(format, v...))
}

// Warn implements model.Logger.
func (l *Logger) Warn(message string) {
	l.mu.Lock()
	l.warn = append(l.warn, message)
	l.mu.Unlock()
}

// Warnf implements model.Logger.
func (l *Logger) Warnf(format string, v ...any) {
	l.Warn(fmt.Sprintf(format, v...))
}

// DebugLines returns a copy of the debug lines.
func (l *Logger) DebugLines() []string {
	defer l.mu.Unlock()
	l.mu.Lock()
	return append([]string{}, l.debug...)
}

// InfoLines returns a copy of the info lines.
func (l *Logger) InfoLines() []string {
	defer l.mu.Unlock()
	l.mu.Lock()
	return append([]string{}, l.info...)
}

// WarnLines returns a copy of the warning lines.
func (l *Logger) WarnLines() []string {
	defer l.mu.Unlock()
	l.mu.Lock()
	return append([]string{}, l.warn...)
}

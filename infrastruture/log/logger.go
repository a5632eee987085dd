// Package logger provides the coloured, component-prefixed loggers used across the service.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/beka-birhanu/vinom-maze/config"
)

// Logger writes levelled lines prefixed with the component name.
type Logger struct {
	out *log.Logger
}

// New creates a Logger for the named component. color is one of the
// config colour constants and tints the prefix.
func New(name, color string, w io.Writer) (*Logger, error) {
	if name == "" {
		return nil, errors.New("logger name is empty")
	}
	if w == nil {
		return nil, errors.New("logger writer is nil")
	}
	prefix := fmt.Sprintf("%s[%s]%s ", color, name, config.ColorReset)
	return &Logger{out: log.New(w, prefix, log.LstdFlags)}, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.out.Printf("%s[INFO]%s %s", config.LogInfoColor, config.LogColorReset, msg)
}

// Warning logs a recoverable problem.
func (l *Logger) Warning(msg string) {
	l.out.Printf("%s[WARN]%s %s", config.LogWarnColor, config.LogColorReset, msg)
}

// Error logs a failure.
func (l *Logger) Error(msg string) {
	l.out.Printf("%s[ERROR]%s %s", config.LogErrorColor, config.LogColorReset, msg)
}

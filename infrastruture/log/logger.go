// Package log provides the colored, prefixed logger used across the
// application. Each subsystem creates its own logger with a distinct
// prefix and color so interleaved output stays readable.
package log

import (
	"errors"
	"io"
	stdlog "log"

	"github.com/beka-birhanu/maze-solver-api/config"
)

// Logger writes leveled, colored log lines with a fixed subsystem prefix.
// Implements i.Logger.
type Logger struct {
	base   *stdlog.Logger
	prefix string
	color  string
}

// New creates a Logger with the given subsystem prefix and ANSI color,
// writing to out.
func New(prefix, color string, out io.Writer) (*Logger, error) {
	if out == nil {
		return nil, errors.New("log: nil output writer")
	}
	if prefix == "" {
		return nil, errors.New("log: empty prefix")
	}

	return &Logger{
		base:   stdlog.New(out, "", stdlog.LstdFlags),
		prefix: prefix,
		color:  color,
	}, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.write(config.LogInfoColor, "INFO", msg)
}

// Warning logs a warning message.
func (l *Logger) Warning(msg string) {
	l.write(config.ColorYellow, "WARNING", msg)
}

// Error logs an error message.
func (l *Logger) Error(msg string) {
	l.write(config.LogErrorColor, "ERROR", msg)
}

func (l *Logger) write(levelColor, level, msg string) {
	l.base.Printf("%s[%s]%s %s[%s]%s %s", l.color, l.prefix, config.ColorReset, levelColor, level, config.LogColorReset, msg)
}

// Package logger provides a simple leveled logger for the application.
// It supports three levels: off (no output), normal (info/warn/error),
// and verbose (includes debug). Loggers derived with Named share the
// parent's level and output. All methods are safe for concurrent use.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

// Level controls the verbosity of the logger.
type Level int

const (
	// LevelOff disables all log output.
	LevelOff Level = iota
	// LevelNormal enables info, warn, and error output.
	LevelNormal
	// LevelVerbose enables all output including debug.
	LevelVerbose
)

// ParseLevel maps the -verbose/-quiet flag pair to a level. quiet wins.
func ParseLevel(verbose, quiet bool) Level {
	switch {
	case quiet:
		return LevelOff
	case verbose:
		return LevelVerbose
	default:
		return LevelNormal
	}
}

type shared struct {
	mu    sync.RWMutex
	level Level
	out   *log.Logger
}

// Logger is a leveled logger with an optional component name.
type Logger struct {
	s    *shared
	name string
}

// New creates a logger with the given level, writing to the given output.
// If out is nil, os.Stderr is used.
func New(level Level, out io.Writer) *Logger {
	if out == nil {
		out = os.Stderr
	}
	return &Logger{s: &shared{
		level: level,
		out:   log.New(out, "", log.Ltime),
	}}
}

// Named returns a logger that prefixes every line with the component name.
func (l *Logger) Named(name string) *Logger {
	if l.name != "" {
		name = l.name + "." + name
	}
	return &Logger{s: l.s, name: name}
}

// SetLevel changes the log level at runtime for every derived logger.
func (l *Logger) SetLevel(level Level) {
	l.s.mu.Lock()
	defer l.s.mu.Unlock()
	l.s.level = level
}

// Debug logs a message at debug level (only visible in verbose mode).
func (l *Logger) Debug(format string, args ...any) { l.emit(LevelVerbose, "DBG", format, args) }

// Info logs a message at info level.
func (l *Logger) Info(format string, args ...any) { l.emit(LevelNormal, "INF", format, args) }

// Warn logs a message at warn level.
func (l *Logger) Warn(format string, args ...any) { l.emit(LevelNormal, "WRN", format, args) }

// Error logs a message at error level.
func (l *Logger) Error(format string, args ...any) { l.emit(LevelNormal, "ERR", format, args) }

func (l *Logger) emit(min Level, tag, format string, args []any) {
	l.s.mu.RLock()
	defer l.s.mu.RUnlock()
	if l.s.level < min {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if l.name != "" {
		msg = l.name + ": " + msg
	}
	l.s.out.Output(3, "["+tag+"] "+msg)
}

// Package logger provides leveled logging with support for debug, info, warn, and error levels.
// It wraps the standard log package to provide level-based filtering and formatted output.
//
// Loggers are plain values meant to be injected into components rather than
// reached through package-level state, so tests can run in parallel with
// private writers.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// Level represents a logging level
type Level int

const (
	// DebugLevel logs are typically voluminous, and are usually disabled in production.
	DebugLevel Level = iota
	// InfoLevel is the default logging priority.
	InfoLevel
	// WarnLevel logs are more important than Info, but don't need individual human review.
	WarnLevel
	// ErrorLevel logs are high-priority. If an application is running smoothly, it shouldn't generate any error-level logs.
	ErrorLevel
)

// ParseLevel converts a level name to a Level, defaulting to InfoLevel.
func ParseLevel(level string) Level {
	switch strings.ToLower(level) {
	case "debug":
		return DebugLevel
	case "info":
		return InfoLevel
	case "warn":
		return WarnLevel
	case "error":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

// Logger provides leveled logging
type Logger struct {
	level  Level
	logger *log.Logger
}

// New creates a logger writing to stderr with the given level and format.
func New(level string, format string) *Logger {
	return NewWithWriter(os.Stderr, level, format)
}

// NewWithWriter creates a logger writing to the given writer. Tests use this
// to capture output without contending on stderr.
func NewWithWriter(w io.Writer, level string, format string) *Logger {
	flags := log.LstdFlags | log.Lmicroseconds
	if strings.ToLower(format) == "text" {
		flags |= log.Lshortfile
	}

	return &Logger{
		level:  ParseLevel(level),
		logger: log.New(w, "", flags),
	}
}

// Debug logs a message at DebugLevel
func (l *Logger) Debug(format string, args ...interface{}) {
	if l != nil && l.level <= DebugLevel {
		msg := fmt.Sprintf("[DEBUG] "+format, args...)
		_ = l.logger.Output(2, msg)
	}
}

// Info logs a message at InfoLevel
func (l *Logger) Info(format string, args ...interface{}) {
	if l != nil && l.level <= InfoLevel {
		msg := fmt.Sprintf("[INFO] "+format, args...)
		_ = l.logger.Output(2, msg)
	}
}

// Warn logs a message at WarnLevel
func (l *Logger) Warn(format string, args ...interface{}) {
	if l != nil && l.level <= WarnLevel {
		msg := fmt.Sprintf("[WARN] "+format, args...)
		_ = l.logger.Output(2, msg)
	}
}

// Error logs a message at ErrorLevel
func (l *Logger) Error(format string, args ...interface{}) {
	if l != nil && l.level <= ErrorLevel {
		msg := fmt.Sprintf("[ERROR] "+format, args...)
		_ = l.logger.Output(2, msg)
	}
}

package logger

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// Logger wraps charm/log for structured logging
type Logger struct {
	*log.Logger
}

// New creates a new logger with the given output
func New(w io.Writer) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})
	return &Logger{Logger: l}
}

// NewWithLevel creates a logger with a specific level
func NewWithLevel(w io.Writer, level log.Level) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           level,
	})
	return &Logger{Logger: l}
}

// NewFileLogger creates a logger that writes to a file
func NewFileLogger(path string) (*Logger, func(), error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, err
	}

	l := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})

	cleanup := func() {
		f.Close()
	}

	return &Logger{Logger: l}, cleanup, nil
}

// NewMultiLogger creates a logger that writes to multiple outputs
func NewMultiLogger(writers ...io.Writer) *Logger {
	w := io.MultiWriter(writers...)
	return New(w)
}

// Discard returns a logger that discards all output
func Discard() *Logger {
	return New(io.Discard)
}

// ParseStarted logs the start of a parse run
func (l *Logger) ParseStarted(source string, size int) {
	l.Debug("parse started",
		"source", source,
		"bytes", size)
}

// ParseCompleted logs a finished parse run
func (l *Logger) ParseCompleted(source string, blocks, issues int, duration time.Duration) {
	l.Info("parse completed",
		"source", source,
		"blocks", blocks,
		"issues", issues,
		"duration", duration.Round(time.Millisecond))
}

// ParseFailed logs a parse that produced no usable result
func (l *Logger) ParseFailed(source string, err error) {
	l.Error("parse failed",
		"source", source,
		"error", err)
}

// CacheHit logs that a result was served from cache
func (l *Logger) CacheHit(source string) {
	l.Debug("cache hit",
		"source", source)
}

// ValidationIssue logs a single validation finding
func (l *Logger) ValidationIssue(path, severity, reason string) {
	l.Warn("validation issue",
		"path", path,
		"severity", severity,
		"reason", reason)
}

// FileError logs an error for a specific file
func (l *Logger) FileError(file string, err error) {
	l.Error("file error",
		"file", file,
		"error", err)
}

// ConfigLoaded logs successful config loading
func (l *Logger) ConfigLoaded(path string) {
	l.Debug("config loaded",
		"path", path)
}

// Drift logs roundtrip drift between an input and its reconstruction
func (l *Logger) Drift(source string, lines int) {
	l.Warn("roundtrip drift",
		"source", source,
		"changed_lines", lines)
}

// Package logger provides an append-only, timestamp-prefixed log sink
// for task execution traces. Writes are serialized so concurrent
// workers can share a single logger.
package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Logger appends timestamped lines to a single log file.
type Logger struct {
	mu   sync.Mutex
	file *os.File
}

// New creates (or appends to) the log file at the given path.
// Parent directories are created if they don't exist.
func New(path string) (*Logger, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating log directory %s: %w", dir, err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file %s: %w", path, err)
	}

	return &Logger{file: file}, nil
}

// LogLine writes a single log line with a timestamp prefix.
func (l *Logger) LogLine(message string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.writeLine(message)
}

// LogBlock writes a header line followed by an indented multiline block.
// The whole block is written under one lock so concurrent writers
// cannot interleave lines into it.
func (l *Logger) LogBlock(header, body string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.writeLine(header); err != nil {
		return err
	}
	start := 0
	for i := 0; i <= len(body); i++ {
		if i == len(body) || body[i] == '\n' {
			if err := l.writeLine("    " + body[start:i]); err != nil {
				return err
			}
			start = i + 1
		}
	}
	return nil
}

// Close closes the underlying log file.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.file.Close()
}

// writeLine appends one timestamped line. Caller must hold the lock.
func (l *Logger) writeLine(message string) error {
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	if _, err := fmt.Fprintf(l.file, "[%s] %s\n", timestamp, message); err != nil {
		return fmt.Errorf("writing log entry: %w", err)
	}
	return nil
}

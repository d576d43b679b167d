// Package logging provides leveled, structured logging to stderr with
// optional file output and size-based rotation.
//
// stdout is reserved for CSV, so console output always goes to stderr.
package logging

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// Level represents a logging level
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError

	levelOff
)

var levelNames = [...]string{
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
}

func (l Level) String() string {
	if l < LevelDebug || l > LevelError {
		return "UNKNOWN"
	}
	return levelNames[l]
}

var levelsByName = map[string]Level{
	"debug":   LevelDebug,
	"info":    LevelInfo,
	"warn":    LevelWarn,
	"warning": LevelWarn,
	"error":   LevelError,
}

// ParseLevel converts a string to a Level. Unknown values map to LevelWarn.
func ParseLevel(s string) Level {
	if l, ok := levelsByName[strings.ToLower(strings.TrimSpace(s))]; ok {
		return l
	}
	return LevelWarn
}

// Field is a key=value pair appended to a log line.
type Field struct {
	Key   string
	Value interface{}
}

// F creates a new Field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Config holds logger configuration
type Config struct {
	Level      string `mapstructure:"level"`       // debug, info, warn, error
	File       string `mapstructure:"file"`        // empty = stderr only
	MaxSizeMB  int    `mapstructure:"max_size_mb"` // rotate after this size (default: 10)
	MaxBackups int    `mapstructure:"max_backups"` // rotated files to keep (default: 5)
}

// DefaultConfig returns default logging configuration
func DefaultConfig() Config {
	return Config{
		Level:      "warn",
		MaxSizeMB:  10,
		MaxBackups: 5,
	}
}

// Logger writes one line per entry to the console and, if configured, a
// rotating file. It is safe for concurrent use.
type Logger struct {
	mu      sync.Mutex
	min     Level
	console io.Writer
	file    *rotatingFile
	buf     bytes.Buffer
}

// NewWithWriter creates a Logger writing console output to w.
func NewWithWriter(cfg Config, w io.Writer) (*Logger, error) {
	l := &Logger{
		min:     ParseLevel(cfg.Level),
		console: w,
	}
	if cfg.File == "" {
		return l, nil
	}

	maxSize := int64(cfg.MaxSizeMB) << 20
	if maxSize <= 0 {
		maxSize = 10 << 20
	}
	backups := cfg.MaxBackups
	if backups <= 0 {
		backups = 5
	}

	f, err := openRotatingFile(cfg.File, maxSize, backups)
	if err != nil {
		return nil, err
	}
	l.file = f
	return l, nil
}

// Nop returns a logger that discards all output
func Nop() *Logger {
	return &Logger{min: levelOff, console: io.Discard}
}

// Debug logs a debug message
func (l *Logger) Debug(component, msg string, fields ...Field) {
	l.write(LevelDebug, component, msg, nil, fields)
}

// Info logs an info message
func (l *Logger) Info(component, msg string, fields ...Field) {
	l.write(LevelInfo, component, msg, nil, fields)
}

// Warn logs a warning message
func (l *Logger) Warn(component, msg string, fields ...Field) {
	l.write(LevelWarn, component, msg, nil, fields)
}

// Error logs msg together with err.
func (l *Logger) Error(component, msg string, err error, fields ...Field) {
	l.write(LevelError, component, msg, err, fields)
}

// Close closes the log file, if any.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

func (l *Logger) write(level Level, component, msg string, err error, fields []Field) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level < l.min {
		return
	}

	l.buf.Reset()
	fmt.Fprintf(&l.buf, "%s [%s] [%s] %s", time.Now().Format(time.RFC3339), level, component, msg)
	if err != nil {
		fmt.Fprintf(&l.buf, " | error=%v", err)
	}
	for _, f := range fields {
		fmt.Fprintf(&l.buf, " | %s=%v", f.Key, f.Value)
	}
	l.buf.WriteByte('\n')

	l.console.Write(l.buf.Bytes())
	if l.file == nil {
		return
	}
	if _, werr := l.file.Write(l.buf.Bytes()); werr != nil {
		fmt.Fprintf(l.console, "log file error: %v\n", werr)
	}
}

// Package logkit is structured, per-component logging for the generator
// and its surrounding tooling: each package gets its own named logger via
// WithComponent rather than sharing one undifferentiated log stream.
package logkit

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Level is a logging verbosity level.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelFatal:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a string (as read from an env var) to a Level,
// defaulting to LevelInfo on anything unrecognized.
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	case "fatal":
		return LevelFatal
	default:
		return LevelInfo
	}
}

// Logger is a structured, leveled logger scoped to one component.
type Logger struct {
	level     Level
	logger    *log.Logger
	mu        sync.Mutex
	file      *os.File
	component string
}

// Config configures a Logger.
type Config struct {
	Level    string
	FilePath string
	ToStdout bool
}

var (
	defaultLogger *Logger
	once          sync.Once
)

// Init initializes the package-level default logger. Safe to call once;
// later calls are no-ops.
func Init(cfg Config) error {
	var err error
	once.Do(func() {
		defaultLogger, err = New(cfg)
	})
	return err
}

// New builds a standalone Logger from cfg.
func New(cfg Config) (*Logger, error) {
	level := ParseLevel(cfg.Level)

	var writers []io.Writer
	var file *os.File

	if cfg.FilePath != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0755); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
		f, err := os.OpenFile(cfg.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		file = f
		writers = append(writers, file)
	}

	if cfg.ToStdout || cfg.FilePath == "" {
		writers = append(writers, os.Stdout)
	}

	return &Logger{
		level:  level,
		logger: log.New(io.MultiWriter(writers...), "", 0),
		file:   file,
	}, nil
}

// WithComponent returns a copy of l tagged with component, sharing the
// same output and file handle.
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		level:     l.level,
		logger:    l.logger,
		file:      l.file,
		component: component,
	}
}

// Close closes the underlying log file, if any.
func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

func (l *Logger) log(level Level, format string, args ...interface{}) {
	if level < l.level {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	timestamp := time.Now().Format("2006-01-02 15:04:05.000")
	msg := fmt.Sprintf(format, args...)

	if l.component != "" {
		l.logger.Printf("[%s] %s [%s] %s", timestamp, level, l.component, msg)
	} else {
		l.logger.Printf("[%s] %s %s", timestamp, level, msg)
	}
}

func (l *Logger) Debug(format string, args ...interface{}) { l.log(LevelDebug, format, args...) }
func (l *Logger) Info(format string, args ...interface{})  { l.log(LevelInfo, format, args...) }
func (l *Logger) Warn(format string, args ...interface{})  { l.log(LevelWarn, format, args...) }
func (l *Logger) Error(format string, args ...interface{}) { l.log(LevelError, format, args...) }

func (l *Logger) Fatal(format string, args ...interface{}) {
	l.log(LevelFatal, format, args...)
	os.Exit(1)
}

// SetLevel changes the logger's verbosity at runtime.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// WithComponent returns a logger with the given component tag, derived
// from the package default logger set by Init. If Init has not been called
// yet, it builds a fresh info-level stdout logger for this call alone; a
// logger obtained that way keeps those settings after a later Init.
func WithComponent(component string) *Logger {
	if defaultLogger != nil {
		return defaultLogger.WithComponent(component)
	}
	l, _ := New(Config{Level: "info", ToStdout: true})
	return l.WithComponent(component)
}

// Close closes the default logger's file handle, if any.
func Close() error {
	if defaultLogger != nil {
		return defaultLogger.Close()
	}
	return nil
}

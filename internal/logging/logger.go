// Package logging provides simple leveled logging for the dispatcher.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"

	"github.com/tenstorrent/smc-msgqueue/internal/interfaces"
)

// Logger wraps stdlib log with level support and an optional fixed
// prefix, used to scope log lines to a queue or command code without
// callers having to thread that context through every call site.
type Logger struct {
	logger *log.Logger
	level  LogLevel
	prefix string
	mu     sync.Mutex
}

var (
	defaultLogger *Logger
	mu            sync.RWMutex
)

// LogLevel represents the available log levels
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

// Config holds logging configuration
type Config struct {
	Level  LogLevel
	Output io.Writer
}

// DefaultConfig returns a sensible default configuration
func DefaultConfig() *Config {
	return &Config{
		Level:  LevelInfo,
		Output: os.Stderr,
	}
}

// NewLogger creates a new logger
func NewLogger(config *Config) *Logger {
	if config == nil {
		config = DefaultConfig()
	}
	output := config.Output
	if output == nil {
		output = os.Stderr
	}
	return &Logger{
		logger: log.New(output, "", log.LstdFlags),
		level:  config.Level,
	}
}

// Default returns the default logger, creating it if necessary
func Default() *Logger {
	mu.RLock()
	if defaultLogger != nil {
		defer mu.RUnlock()
		return defaultLogger
	}
	mu.RUnlock()

	mu.Lock()
	defer mu.Unlock()
	if defaultLogger == nil {
		defaultLogger = NewLogger(nil)
	}
	return defaultLogger
}

// SetDefault sets the default logger
func SetDefault(logger *Logger) {
	mu.Lock()
	defer mu.Unlock()
	defaultLogger = logger
}

// formatArgs converts key-value pairs to a string
func formatArgs(args []any) string {
	if len(args) == 0 {
		return ""
	}
	var result string
	for i := 0; i < len(args); i += 2 {
		if i+1 < len(args) {
			if result != "" {
				result += " "
			}
			result += fmt.Sprintf("%v=%v", args[i], args[i+1])
		}
	}
	if result != "" {
		return " " + result
	}
	return ""
}

func (l *Logger) log(level LogLevel, levelPrefix, msg string, args ...any) {
	if level < l.level {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.prefix != "" {
		l.logger.Printf("%s %s %s%s", levelPrefix, l.prefix, msg, formatArgs(args))
		return
	}
	l.logger.Printf("%s %s%s", levelPrefix, msg, formatArgs(args))
}

// WithQueue returns a child logger that prefixes every line with the
// given queue index, e.g. "queue=2".
func (l *Logger) WithQueue(q int) interfaces.Logger {
	return l.withPrefix(fmt.Sprintf("queue=%d", q))
}

// WithCommand returns a child logger that prefixes every line with the
// given command code in hex, e.g. "cmd=0x12".
func (l *Logger) WithCommand(code uint8) interfaces.Logger {
	return l.withPrefix(fmt.Sprintf("cmd=0x%02x", code))
}

func (l *Logger) withPrefix(p string) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	combined := p
	if l.prefix != "" {
		combined = l.prefix + " " + p
	}
	return &Logger{logger: l.logger, level: l.level, prefix: combined}
}

func (l *Logger) Debug(msg string, args ...any) {
	l.log(LevelDebug, "[DEBUG]", msg, args...)
}

func (l *Logger) Info(msg string, args ...any) {
	l.log(LevelInfo, "[INFO]", msg, args...)
}

func (l *Logger) Warn(msg string, args ...any) {
	l.log(LevelWarn, "[WARN]", msg, args...)
}

func (l *Logger) Error(msg string, args ...any) {
	l.log(LevelError, "[ERROR]", msg, args...)
}

// Printf-style logging
func (l *Logger) Debugf(format string, args ...any) {
	l.log(LevelDebug, "[DEBUG]", fmt.Sprintf(format, args...))
}

func (l *Logger) Infof(format string, args ...any) {
	l.log(LevelInfo, "[INFO]", fmt.Sprintf(format, args...))
}

func (l *Logger) Warnf(format string, args ...any) {
	l.log(LevelWarn, "[WARN]", fmt.Sprintf(format, args...))
}

func (l *Logger) Errorf(format string, args ...any) {
	l.log(LevelError, "[ERROR]", fmt.Sprintf(format, args...))
}

// Printf for compatibility
func (l *Logger) Printf(format string, args ...any) {
	l.Infof(format, args...)
}

// Global convenience functions
func Debug(msg string, args ...any) {
	Default().Debug(msg, args...)
}

func Info(msg string, args ...any) {
	Default().Info(msg, args...)
}

func Warn(msg string, args ...any) {
	Default().Warn(msg, args...)
}

func Error(msg string, args ...any) {
	Default().Error(msg, args...)
}

var _ interfaces.Logger = (*Logger)(nil)

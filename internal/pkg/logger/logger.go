package logger

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	mu           sync.RWMutex
	globalLogger *slog.Logger
)

// ParseLevel maps a config level string to a slog level. Unknown strings map to INFO and ok=false.
func ParseLevel(levelStr string) (slog.Level, bool) {
	switch strings.ToUpper(strings.TrimSpace(levelStr)) {
	case "DEBUG":
		return slog.LevelDebug, true
	case "INFO", "":
		return slog.LevelInfo, true
	case "WARN", "WARNING":
		return slog.LevelWarn, true
	case "ERROR":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// InitSlog initializes the global logger with a JSON handler on stdout.
func InitSlog(levelStr string) {
	level, ok := ParseLevel(levelStr)
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	SetHandler(handler)
	if !ok {
		Warn("Invalid log level string, defaulting to INFO", "input", levelStr)
	}
}

// SetHandler replaces the global logger, e.g. with a zap-backed handler, and makes it the slog default.
func SetHandler(h slog.Handler) {
	l := slog.New(h)
	mu.Lock()
	globalLogger = l
	mu.Unlock()
	slog.SetDefault(l)
}

func get() *slog.Logger {
	mu.RLock()
	l := globalLogger
	mu.RUnlock()
	if l != nil {
		return l
	}
	InitSlog("INFO")
	mu.RLock()
	defer mu.RUnlock()
	return globalLogger
}

func log(level slog.Level, msg string, args ...any) {
	l := get()
	ctx := context.Background()
	if l.Enabled(ctx, level) {
		l.Log(ctx, level, msg, args...)
	}
}

// Debug logs a message at DebugLevel.
func Debug(msg string, args ...any) { log(slog.LevelDebug, msg, args...) }

// Info logs a message at InfoLevel.
func Info(msg string, args ...any) { log(slog.LevelInfo, msg, args...) }

// Warn logs a message at WarnLevel.
func Warn(msg string, args ...any) { log(slog.LevelWarn, msg, args...) }

// Error logs a message at ErrorLevel.
func Error(msg string, args ...any) { log(slog.LevelError, msg, args...) }

// Fatal logs a message at ErrorLevel then exits.
func Fatal(msg string, args ...any) {
	get().Error(msg, args...)
	os.Exit(1)
}

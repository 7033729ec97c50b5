package logger

import "evm_chains/internal/app/port"

// slogAdapter implements port.Logger on top of the package-level functions.
type slogAdapter struct{}

// NewSlogAdapter creates a port.Logger backed by the global logger.
func NewSlogAdapter() port.Logger {
	return &slogAdapter{}
}

func (a *slogAdapter) Info(msg string, args ...any) { Info(msg, args...) }
func (a *slogAdapter) Debug(msg string, args ...any) { Debug(msg, args...) }
func (a *slogAdapter) Warn(msg string, args ...any) { Warn(msg, args...) }
func (a *slogAdapter) Error(msg string, args ...any) { Error(msg, args...) }

type nopLogger struct{}

// Nop returns a port.Logger that discards everything. Library entry points use it when no logger is given.
func Nop() port.Logger {
	return nopLogger{}
}

func (nopLogger) Info(string, ...any) {}
func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Warn(string, ...any) {}
func (nopLogger) Error(string, ...any) {}

// OrNop returns l, or a no-op logger when l is nil.
func OrNop(l port.Logger) port.Logger {
	if l == nil {
		return Nop()
	}
	return l
}

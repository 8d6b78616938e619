// Package log provides a structured logging interface for godense matrix
// operations.
//
// This package defines a minimal, slog-compatible logging interface that
// allows for flexible implementation switching while providing linear-algebra
// specific structured logging capabilities. The default backend is zerolog,
// but any implementation of the Logger interface can be installed.
//
// Example usage:
//
//	logger := log.GetLogger().With(
//	    log.ComponentKey, "linalg",
//	)
//	logger.Debug("decomposition started",
//	    log.OperationKey, log.OperationLU,
//	    log.RowsKey, 4,
//	    log.ColsKey, 4,
//	)
package log

import (
	"context"
)

// Logger defines a structured logging interface compatible with Go's log/slog.
//
// The interface supports contextual loggers through the With method, allowing
// common fields (component, operation) to be pre-populated once and included
// in every subsequent message.
type Logger interface {
	// Debug logs a debug-level message with optional structured fields.
	Debug(msg string, fields ...any)

	// Info logs an info-level message with optional structured fields.
	Info(msg string, fields ...any)

	// Warn logs a warning-level message with optional structured fields.
	// Warnings indicate potentially problematic situations that do not stop
	// the operation, such as a pivot approaching the singularity tolerance.
	Warn(msg string, fields ...any)

	// Error logs an error-level message with optional structured fields.
	// If an error value is provided among the fields, stack trace information
	// recorded by pkg/errors is included when available.
	Error(msg string, fields ...any)

	// With returns a new Logger with the given fields pre-populated.
	With(fields ...any) Logger

	// Enabled reports whether the logger emits log records at the given level.
	// Use it to avoid building expensive field values that would be dropped.
	Enabled(ctx context.Context, level Level) bool
}

// Level represents a logging level, compatible with slog.Level.
type Level int

// Standard logging levels, values are compatible with slog.Level.
const (
	LevelDebug Level = -4 // Detailed diagnostic information
	LevelInfo  Level = 0  // General operational information
	LevelWarn  Level = 4  // Warning conditions
	LevelError Level = 8  // Error conditions
)

// String returns the string representation of the log level.
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
	default:
		return "UNKNOWN"
	}
}

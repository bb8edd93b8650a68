package logger

import (
	"go.uber.org/zap"
)

// Standard field names for consistent structured logging across webidl.
// Use these constants instead of raw strings to ensure consistency.
const (
	// Components
	FieldComponent = "component"

	// Declarations
	FieldInterface = "interface"
	FieldOperation = "operation"
	FieldArgument  = "argument"
	FieldType      = "type"
	FieldSignature = "signature"
	FieldBinding   = "binding"

	// Counts
	FieldCount      = "count"
	FieldTotalCount = "total_count"
	FieldSkipped    = "skipped"
	FieldWorkers    = "workers"

	// Timing
	FieldDurationMS = "duration_ms"

	// Errors
	FieldError = "error"

	// Files and paths
	FieldFile   = "file"
	FieldFormat = "format"
)

// ComponentLogger returns a named logger for a specific component.
// This is the preferred way to get a logger for dependency injection.
//
// Example:
//
//	r := &resolve.Resolver{
//	    Symbols: table,
//	    Logger:  logger.ComponentLogger("resolve"),
//	}
func ComponentLogger(name string) *zap.SugaredLogger {
	return Logger.Named(name)
}

// ChildLogger creates a child logger with additional context.
//
// Example:
//
//	opLogger := logger.ChildLogger(base, logger.FieldOperation, op.Name)
func ChildLogger(parent *zap.SugaredLogger, keysAndValues ...interface{}) *zap.SugaredLogger {
	return parent.With(keysAndValues...)
}

// OrGlobal returns l, or the global logger when l is nil.
func OrGlobal(l *zap.SugaredLogger) *zap.SugaredLogger {
	if l != nil {
		return l
	}
	return Logger
}

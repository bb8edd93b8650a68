package logger

import "go.uber.org/zap/zapcore"

// Verbosity level constants for the CLI -v flag count.
const (
	VerbosityUser  = 0 // No flags: results, warnings and errors
	VerbosityInfo  = 1 // -v: + per-document and per-pass summaries
	VerbosityDebug = 2 // -vv: + per-operation and per-signature detail
)

// VerbosityToLevel maps verbosity flags (-v, -vv) to zap log levels
//
// Mapping:
//
//	0 (none)  -> WarnLevel  (unresolved types and skipped signatures)
//	1 (-v)    -> InfoLevel
//	2+ (-vv)  -> DebugLevel
func VerbosityToLevel(verbosity int) zapcore.Level {
	switch {
	case verbosity <= VerbosityUser:
		return zapcore.WarnLevel
	case verbosity == VerbosityInfo:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}

// LevelName returns a human-readable name for verbosity level
func LevelName(verbosity int) string {
	switch {
	case verbosity <= VerbosityUser:
		return "User"
	case verbosity == VerbosityInfo:
		return "Info (-v)"
	default:
		return "Debug (-vv)"
	}
}

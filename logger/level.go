package logger

import (
	"github.com/philipp01105/linelog/core"
	"github.com/philipp01105/linelog/registry"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	// SilentLevel is delivered to every enabled destination
	SilentLevel = core.SilentLevel
	// ErrorLevel for error messages
	ErrorLevel = core.ErrorLevel
	// WarningLevel for warning messages
	WarningLevel = core.WarningLevel
	// InfoLevel for general informational messages
	InfoLevel = core.InfoLevel
	// TraceLevel for tracing program flow
	TraceLevel = core.TraceLevel
	// VerboseLevel for everything else
	VerboseLevel = core.VerboseLevel
)

// ParseLevel converts a string to a Level
func ParseLevel(s string) (Level, bool) {
	return core.ParseLevel(s)
}

// Option re-exports registry.Option for Add and Edit
type Option = registry.Option

// Option constructors re-exported from package registry
var (
	// WithPrefix turns the whole line prefix on or off
	WithPrefix = registry.WithPrefix
	// WithDate turns the time segment of the prefix on or off
	WithDate = registry.WithDate
	// WithLevelName turns the level name segment of the prefix on or off
	WithLevelName = registry.WithLevelName
	// WithFlags replaces all three prefix toggles at once
	WithFlags = registry.WithFlags
)

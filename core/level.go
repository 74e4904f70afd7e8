package core

import (
	"strconv"
	"strings"
)

// Level represents the severity of a write. Lower values are more urgent.
// A destination configured at level T receives writes whose level is <= T.
type Level int8

const (
	// SilentLevel as a destination threshold delivers nothing but SILENT writes.
	// As an instance level it is delivered to every enabled destination.
	SilentLevel Level = iota
	// ErrorLevel for error messages
	ErrorLevel
	// WarningLevel for warning messages
	WarningLevel
	// InfoLevel for general informational messages
	InfoLevel
	// TraceLevel for tracing program flow
	TraceLevel
	// VerboseLevel for everything else
	VerboseLevel
)

// MinLevel and MaxLevel bound the valid severity range.
const (
	MinLevel = SilentLevel
	MaxLevel = VerboseLevel
)

// UnknownLevelName is returned by String for levels outside [MinLevel, MaxLevel].
const UnknownLevelName = "UNKNOWN"

// levelNames is indexed by Level. SILENT has no name.
var levelNames = [...]string{
	SilentLevel:  "",
	ErrorLevel:   "ERROR",
	WarningLevel: "WARNING",
	InfoLevel:    "INFO",
	TraceLevel:   "TRACE",
	VerboseLevel: "VERBOSE",
}

// String returns the name rendered in line prefixes
func (l Level) String() string {
	if !l.Valid() {
		return UnknownLevelName
	}
	return levelNames[l]
}

// Valid reports whether l is one of the six defined levels.
func (l Level) Valid() bool {
	return l >= MinLevel && l <= MaxLevel
}

// Accepts reports whether a destination with threshold l delivers a write at level w.
func (l Level) Accepts(w Level) bool {
	return w <= l
}

// ParseLevel converts a level name or its digit to a Level.
// The second result is false when s names no level.
func ParseLevel(s string) (Level, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "SILENT":
		return SilentLevel, true
	case "ERROR":
		return ErrorLevel, true
	case "WARNING", "WARN":
		return WarningLevel, true
	case "INFO":
		return InfoLevel, true
	case "TRACE":
		return TraceLevel, true
	case "VERBOSE":
		return VerboseLevel, true
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < int(MinLevel) || n > int(MaxLevel) {
		return SilentLevel, false
	}
	return Level(n), true
}

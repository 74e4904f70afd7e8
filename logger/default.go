package logger

import (
	"github.com/philipp01105/linelog/core"
	"github.com/philipp01105/linelog/registry"
)

var defaultRegistry = registry.New()

// Process-wide instances bound to the default registry, one per level.
var (
	Error   = New(ErrorLevel)
	Warning = New(WarningLevel)
	Info    = New(InfoLevel)
	Trace   = New(TraceLevel)
	Verbose = New(VerboseLevel)
)

// unrestricted writes at SilentLevel, which every enabled destination accepts.
var unrestricted = New(SilentLevel)

// DefaultRegistry returns the registry shared by the package-level instances
func DefaultRegistry() *registry.Registry {
	return defaultRegistry
}

// Default returns the unrestricted logger on the default registry. Its
// lines are delivered to every enabled destination and carry no level
// name in their prefix.
func Default() *Logger {
	return unrestricted
}

// Package-level configuration of the default registry

// Add registers s on the default registry, see registry.Registry.Add
func Add(s core.Sink, threshold Level, opts ...Option) {
	defaultRegistry.Add(s, threshold, opts...)
}

// Edit reconfigures s on the default registry, see registry.Registry.Edit
func Edit(s core.Sink, threshold Level, opts ...Option) {
	defaultRegistry.Edit(s, threshold, opts...)
}

// Enable resumes delivery to s
func Enable(s core.Sink) { defaultRegistry.Enable(s) }

// Disable stops delivery to s
func Disable(s core.Sink) { defaultRegistry.Disable(s) }

// EnablePrefix turns the line prefix on for s
func EnablePrefix(s core.Sink) { defaultRegistry.EnablePrefix(s) }

// DisablePrefix turns the line prefix off for s
func DisablePrefix(s core.Sink) { defaultRegistry.DisablePrefix(s) }

// EnableDate adds the time to the prefix of s
func EnableDate(s core.Sink) { defaultRegistry.EnableDate(s) }

// DisableDate removes the time from the prefix of s
func DisableDate(s core.Sink) { defaultRegistry.DisableDate(s) }

// EnableLevelName adds the level name to the prefix of s
func EnableLevelName(s core.Sink) { defaultRegistry.EnableLevelName(s) }

// DisableLevelName removes the level name from the prefix of s
func DisableLevelName(s core.Sink) { defaultRegistry.DisableLevelName(s) }

// IsEnabled reports whether a write at level reaches s on the default registry
func IsEnabled(s core.Sink, level Level) bool {
	return defaultRegistry.IsEnabled(s, level)
}

// Sync flushes every sink on the default registry
func Sync() error {
	return defaultRegistry.Sync()
}

package registry

import (
	"github.com/philipp01105/linelog/core"
	"github.com/philipp01105/linelog/formatter"
)

// Destination is one registered output. It is only handed out while the
// owning Registry's lock is held (see Registry.Each), so its accessors do
// no locking of their own.
type Destination struct {
	sink          core.Sink
	threshold     core.Level
	flags         formatter.Flags
	enabled       bool
	prefixPending bool
}

// Sink returns the destination's byte sink
func (d *Destination) Sink() core.Sink { return d.sink }

// Threshold returns the most verbose level delivered to the destination
func (d *Destination) Threshold() core.Level { return d.threshold }

// Flags returns the prefix formatting toggles
func (d *Destination) Flags() formatter.Flags { return d.flags }

// Enabled reports whether the destination currently receives writes
func (d *Destination) Enabled() bool { return d.enabled }

// Accepts reports whether a write at level is delivered here.
func (d *Destination) Accepts(level core.Level) bool {
	return d.enabled && d.threshold.Accepts(level)
}

// PrefixPending reports whether the next payload byte starts a new line.
func (d *Destination) PrefixPending() bool { return d.prefixPending }

// SetPrefixPending arms or clears the prefix for the next payload byte.
func (d *Destination) SetPrefixPending(pending bool) { d.prefixPending = pending }

// Info is a read-only copy of a destination's state.
type Info struct {
	Sink          core.Sink
	Threshold     core.Level
	Flags         formatter.Flags
	Enabled       bool
	PrefixPending bool
}

func (d *Destination) info() Info {
	return Info{
		Sink:          d.sink,
		Threshold:     d.threshold,
		Flags:         d.flags,
		Enabled:       d.enabled,
		PrefixPending: d.prefixPending,
	}
}

// Option adjusts the formatting flags passed to Add and Edit.
// Every flag defaults to true.
type Option func(*formatter.Flags)

// WithPrefix turns the whole prefix on or off
func WithPrefix(enabled bool) Option {
	return func(f *formatter.Flags) { f.Prefix = enabled }
}

// WithDate turns the time segment of the prefix on or off
func WithDate(enabled bool) Option {
	return func(f *formatter.Flags) { f.Date = enabled }
}

// WithLevelName turns the level name segment of the prefix on or off
func WithLevelName(enabled bool) Option {
	return func(f *formatter.Flags) { f.LevelName = enabled }
}

// WithFlags replaces all three flags at once
func WithFlags(flags formatter.Flags) Option {
	return func(f *formatter.Flags) { *f = flags }
}

func buildFlags(opts []Option) formatter.Flags {
	f := formatter.DefaultFlags
	for _, opt := range opts {
		if opt != nil {
			opt(&f)
		}
	}
	return f
}

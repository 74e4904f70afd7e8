package registry

import (
	"io"
	"reflect"
	"sync"

	"go.uber.org/multierr"

	"github.com/philipp01105/linelog/core"
)

// Capacity is the fixed number of destinations a Registry can hold.
const Capacity = 8

// Registry is a fixed-capacity table of destinations shared by every
// Logger bound to it. Destinations are never removed, only disabled.
//
// A single mutex guards all mutation and every write-path iteration.
type Registry struct {
	mu      sync.Mutex
	outputs [Capacity]Destination
	n       int
	stats   *Stats
}

// New creates an empty registry
func New() *Registry {
	return &Registry{stats: NewStats()}
}

// lookup returns the destination bound to s, or nil. Callers hold r.mu.
func (r *Registry) lookup(s core.Sink) *Destination {
	if s == nil {
		return nil
	}
	for i := 0; i < r.n; i++ {
		if r.outputs[i].sink == s {
			return &r.outputs[i]
		}
	}
	return nil
}

// Add registers s at threshold, or overwrites the threshold and flags of
// the destination already bound to s. A (re)configured destination is
// enabled. When the table is full and s is new, Add does nothing; the
// attempt is counted in Stats.
//
// s must be comparable with ==; other sinks are ignored.
func (r *Registry) Add(s core.Sink, threshold core.Level, opts ...Option) {
	if s == nil || !reflect.TypeOf(s).Comparable() {
		r.stats.IncrementRejected()
		return
	}
	flags := buildFlags(opts)

	r.mu.Lock()
	defer r.mu.Unlock()

	d := r.lookup(s)
	if d == nil {
		if r.n == Capacity {
			r.stats.IncrementRejected()
			return
		}
		d = &r.outputs[r.n]
		r.n++
		d.sink = s
		d.prefixPending = true
	}
	d.threshold = threshold
	d.flags = flags
	d.enabled = true
}

// Edit behaves like Add for a registered sink and does nothing otherwise.
func (r *Registry) Edit(s core.Sink, threshold core.Level, opts ...Option) {
	flags := buildFlags(opts)
	r.mutate(s, func(d *Destination) {
		d.threshold = threshold
		d.flags = flags
		d.enabled = true
	})
}

// mutate applies fn to the destination bound to s. Unknown sinks are
// counted and otherwise ignored.
func (r *Registry) mutate(s core.Sink, fn func(d *Destination)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	d := r.lookup(s)
	if d == nil {
		r.stats.IncrementUnknown()
		return
	}
	fn(d)
}

// Enable resumes delivery to s
func (r *Registry) Enable(s core.Sink) {
	r.mutate(s, func(d *Destination) { d.enabled = true })
}

// Disable stops delivery to s without forgetting its configuration
func (r *Registry) Disable(s core.Sink) {
	r.mutate(s, func(d *Destination) { d.enabled = false })
}

// EnablePrefix turns the line prefix on for s
func (r *Registry) EnablePrefix(s core.Sink) {
	r.mutate(s, func(d *Destination) { d.flags.Prefix = true })
}

// DisablePrefix turns the line prefix off for s
func (r *Registry) DisablePrefix(s core.Sink) {
	r.mutate(s, func(d *Destination) { d.flags.Prefix = false })
}

// EnableDate adds the time to the prefix of s
func (r *Registry) EnableDate(s core.Sink) {
	r.mutate(s, func(d *Destination) { d.flags.Date = true })
}

// DisableDate removes the time from the prefix of s
func (r *Registry) DisableDate(s core.Sink) {
	r.mutate(s, func(d *Destination) { d.flags.Date = false })
}

// EnableLevelName adds the level name to the prefix of s
func (r *Registry) EnableLevelName(s core.Sink) {
	r.mutate(s, func(d *Destination) { d.flags.LevelName = true })
}

// DisableLevelName removes the level name from the prefix of s
func (r *Registry) DisableLevelName(s core.Sink) {
	r.mutate(s, func(d *Destination) { d.flags.LevelName = false })
}

// IsEnabled reports whether a write at level would be delivered to s.
func (r *Registry) IsEnabled(s core.Sink, level core.Level) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	d := r.lookup(s)
	return d != nil && d.Accepts(level)
}

// Each calls fn, with the lock held, for every destination that accepts
// a write at level. fn must not call back into the registry.
func (r *Registry) Each(level core.Level, fn func(d *Destination)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := 0; i < r.n; i++ {
		if r.outputs[i].Accepts(level) {
			fn(&r.outputs[i])
		}
	}
}

// All calls fn, with the lock held, for every registered destination
// whether enabled or not.
func (r *Registry) All(fn func(d *Destination)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := 0; i < r.n; i++ {
		fn(&r.outputs[i])
	}
}

// Len returns the number of registered destinations
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.n
}

// Cap returns the fixed capacity
func (r *Registry) Cap() int {
	return Capacity
}

// Snapshot returns a copy of every destination in registration order
func (r *Registry) Snapshot() []Info {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Info, r.n)
	for i := 0; i < r.n; i++ {
		out[i] = r.outputs[i].info()
	}
	return out
}

// Stats returns a snapshot of the registry counters
func (r *Registry) Stats() Snapshot {
	return r.stats.GetSnapshot()
}

// Counters exposes the live counters for recording completed lines.
func (r *Registry) Counters() *Stats {
	return r.stats
}

// Sync flushes every sink that implements core.Syncer.
func (r *Registry) Sync() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var err error
	for i := 0; i < r.n; i++ {
		if s, ok := r.outputs[i].sink.(core.Syncer); ok {
			err = multierr.Append(err, s.Sync())
		}
	}
	return err
}

// Close flushes every sink that implements core.Syncer, then closes
// every sink that implements io.Closer and disables its destination.
// Destinations stay registered.
func (r *Registry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var err error
	for i := 0; i < r.n; i++ {
		d := &r.outputs[i]
		if s, ok := d.sink.(core.Syncer); ok {
			err = multierr.Append(err, s.Sync())
		}
		if c, ok := d.sink.(io.Closer); ok {
			err = multierr.Append(err, c.Close())
			d.enabled = false
		}
	}
	return err
}

// Registered reports whether s is bound to a destination, enabled or not.
func (r *Registry) Registered(s core.Sink) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lookup(s) != nil
}

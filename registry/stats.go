package registry

import (
	"sync/atomic"

	"github.com/philipp01105/linelog/core"
)

// Stats counts the events the registry otherwise swallows silently.
type Stats struct {
	// RejectedAdds counts Add calls dropped because the table was full
	// or the sink was unusable
	RejectedAdds uint64
	// UnknownDestination counts mutations naming an unregistered sink
	UnknownDestination uint64
	// lines counts completed lines per writing level; the last slot
	// collects levels outside the defined range
	lines [int(core.MaxLevel) + 2]uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementRejected atomically increments the rejected add counter
func (s *Stats) IncrementRejected() {
	atomic.AddUint64(&s.RejectedAdds, 1)
}

// IncrementUnknown atomically increments the unknown destination counter
func (s *Stats) IncrementUnknown() {
	atomic.AddUint64(&s.UnknownDestination, 1)
}

func lineSlot(level core.Level) int {
	if !level.Valid() {
		return int(core.MaxLevel) + 1
	}
	return int(level)
}

// IncrementLines atomically counts one line terminated at level
func (s *Stats) IncrementLines(level core.Level) {
	atomic.AddUint64(&s.lines[lineSlot(level)], 1)
}

// GetLines returns the number of lines terminated at level
func (s *Stats) GetLines(level core.Level) uint64 {
	return atomic.LoadUint64(&s.lines[lineSlot(level)])
}

// GetRejected returns the rejected add count
func (s *Stats) GetRejected() uint64 {
	return atomic.LoadUint64(&s.RejectedAdds)
}

// GetUnknown returns the unknown destination count
func (s *Stats) GetUnknown() uint64 {
	return atomic.LoadUint64(&s.UnknownDestination)
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	atomic.StoreUint64(&s.RejectedAdds, 0)
	atomic.StoreUint64(&s.UnknownDestination, 0)
	for i := range s.lines {
		atomic.StoreUint64(&s.lines[i], 0)
	}
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	RejectedAdds       uint64
	UnknownDestination uint64
	Lines              map[core.Level]uint64
	// UnknownLines counts lines written at levels outside the defined range
	UnknownLines       uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	lines := make(map[core.Level]uint64, int(core.MaxLevel)+1)
	for l := core.MinLevel; l <= core.MaxLevel; l++ {
		lines[l] = s.GetLines(l)
	}
	return Snapshot{
		RejectedAdds:       s.GetRejected(),
		UnknownDestination: s.GetUnknown(),
		Lines:              lines,
		UnknownLines:       s.GetLines(core.MaxLevel + 1),
	}
}

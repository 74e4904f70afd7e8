package core

import (
	"sync"
	"sync/atomic"
	"time"
	"unsafe"
)

// Clock supplies the wall-clock time rendered in line prefixes. Only the
// hour, minute, second and millisecond parts are used.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a plain function to Clock.
type ClockFunc func() time.Time

// Now calls f
func (f ClockFunc) Now() time.Time { return f() }

// SystemClock reads time.Now on every call.
type SystemClock struct{}

// Now returns the current local time
func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always returns the same instant.
type FixedClock time.Time

// Now returns the fixed instant
func (c FixedClock) Now() time.Time { return time.Time(c) }

var (
	coarseClockOnce sync.Once
	coarseNow       unsafe.Pointer // *time.Time
)

// StartCoarseClock starts the background goroutine that caches
// time.Now() every 500µs. It is safe to call multiple times; the
// goroutine is started exactly once and runs for the lifetime of the
// process.
func StartCoarseClock() {
	coarseClockOnce.Do(func() {
		t := time.Now()
		atomic.StorePointer(&coarseNow, unsafe.Pointer(&t))
		go func() {
			ticker := time.NewTicker(500 * time.Microsecond)
			for range ticker.C {
				t := time.Now()
				atomic.StorePointer(&coarseNow, unsafe.Pointer(&t))
			}
		}()
	})
}

// CoarseNow returns the most recently cached time.Time value.
// StartCoarseClock must have been called before using CoarseNow.
func CoarseNow() time.Time {
	return *(*time.Time)(atomic.LoadPointer(&coarseNow))
}

// CoarseClock is a Clock backed by CoarseNow. It trades up to 500µs of
// accuracy for not calling time.Now on every prefix.
type CoarseClock struct{}

// NewCoarseClock starts the shared ticker and returns a clock reading it.
func NewCoarseClock() CoarseClock {
	StartCoarseClock()
	return CoarseClock{}
}

// Now returns the cached time
func (CoarseClock) Now() time.Time { return CoarseNow() }

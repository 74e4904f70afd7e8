package sink

import (
	"sync"
)

// BufferSink keeps output in a fixed-size in-memory buffer. Once the
// buffer is full further bytes are refused and the short count is
// returned, the way a full medium behaves.
type BufferSink struct {
	mu  sync.Mutex
	buf []byte
}

// BufferConfig holds configuration for a buffer sink
type BufferConfig struct {
	// Size is the buffer capacity in bytes (default: 1024)
	Size int
}

// NewBufferSink creates a new buffer sink
func NewBufferSink(cfg BufferConfig) *BufferSink {
	if cfg.Size <= 0 {
		cfg.Size = 1024
	}
	return &BufferSink{buf: make([]byte, 0, cfg.Size)}
}

// PutByte appends c if there is room
func (s *BufferSink) PutByte(c byte) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.buf) == cap(s.buf) {
		return 0
	}
	s.buf = append(s.buf, c)
	return 1
}

// PutBytes appends as much of p as fits
func (s *BufferSink) PutBytes(p []byte) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := min(len(p), cap(s.buf)-len(s.buf))
	s.buf = append(s.buf, p[:n]...)
	return n
}

// Bytes returns a copy of the buffered output
func (s *BufferSink) Bytes() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]byte, len(s.buf))
	copy(out, s.buf)
	return out
}

// String returns the buffered output
func (s *BufferSink) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return string(s.buf)
}

// Len returns the number of buffered bytes
func (s *BufferSink) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.buf)
}

// Cap returns the buffer capacity
func (s *BufferSink) Cap() int {
	return cap(s.buf)
}

// Reset empties the buffer
func (s *BufferSink) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buf = s.buf[:0]
}

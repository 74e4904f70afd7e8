package sink

import (
	"io"
	"os"
	"sync"
)

// WriterSink adapts any io.Writer (a serial port, a console, a pipe) to
// core.Sink. Write errors are not reported; a failed write accepts 0 bytes.
type WriterSink struct {
	mu  sync.Mutex
	w   io.Writer
	one [1]byte
}

// WriterConfig holds configuration for a writer sink
type WriterConfig struct {
	// Writer to write to (default: os.Stdout)
	Writer io.Writer
}

// NewWriterSink creates a new writer sink
func NewWriterSink(cfg WriterConfig) *WriterSink {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	return &WriterSink{w: cfg.Writer}
}

// NewStdoutSink writes to os.Stdout
func NewStdoutSink() *WriterSink {
	return NewWriterSink(WriterConfig{Writer: os.Stdout})
}

// NewStderrSink writes to os.Stderr
func NewStderrSink() *WriterSink {
	return NewWriterSink(WriterConfig{Writer: os.Stderr})
}

// PutByte writes a single byte
func (s *WriterSink) PutByte(c byte) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.one[0] = c
	n, _ := s.w.Write(s.one[:])
	return n
}

// PutBytes writes p
func (s *WriterSink) PutBytes(p []byte) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, _ := s.w.Write(p)
	return n
}

// Sync flushes the underlying writer when it supports Flush or Sync.
// Sync on a terminal or pipe reports EINVAL on some systems; such
// errors are ignored for the standard streams.
func (s *WriterSink) Sync() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch w := s.w.(type) {
	case interface{ Flush() error }:
		return w.Flush()
	case *os.File:
		if w == os.Stdout || w == os.Stderr {
			_ = w.Sync()
			return nil
		}
		return w.Sync()
	case interface{ Sync() error }:
		return w.Sync()
	}
	return nil
}

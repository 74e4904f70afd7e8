//go:build !linelog_nofile

package sink

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileSink appends output to a file through a write buffer. It is the
// storage-backed destination and can be left out of a build with the
// linelog_nofile tag.
type FileSink struct {
	mu        sync.Mutex
	filename  string
	file      *os.File
	bufWriter *bufio.Writer
	closed    bool
}

// FileConfig holds configuration for a file sink
type FileConfig struct {
	// Filename is the path to the log file
	Filename string
	// BufferSize is the size of the write buffer (default: 4096)
	BufferSize int
}

// NewFileSink creates a new file sink, creating parent directories as needed
func NewFileSink(cfg FileConfig) (*FileSink, error) {
	if cfg.Filename == "" {
		return nil, fmt.Errorf("filename is required")
	}
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = 4096
	}

	// Create directory if it doesn't exist
	dir := filepath.Dir(cfg.Filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	file, err := os.OpenFile(cfg.Filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	return &FileSink{
		filename:  cfg.Filename,
		file:      file,
		bufWriter: bufio.NewWriterSize(file, cfg.BufferSize),
	}, nil
}

// Filename returns the path the sink writes to
func (s *FileSink) Filename() string {
	return s.filename
}

// PutByte writes a single byte
func (s *FileSink) PutByte(c byte) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || s.bufWriter.WriteByte(c) != nil {
		return 0
	}
	return 1
}

// PutBytes writes p
func (s *FileSink) PutBytes(p []byte) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return 0
	}
	n, _ := s.bufWriter.Write(p)
	return n
}

// Sync flushes the write buffer and commits the file to storage
func (s *FileSink) Sync() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	if err := s.bufWriter.Flush(); err != nil {
		return err
	}
	return s.file.Sync()
}

// Close flushes and closes the file
func (s *FileSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	if err := s.bufWriter.Flush(); err != nil {
		_ = s.file.Close()
		return err
	}
	return s.file.Close()
}

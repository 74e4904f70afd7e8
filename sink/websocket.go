package sink

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// WebSocketSink streams output over a websocket connection, one text
// message per completed line. Bytes of an unfinished line are held back
// until the newline arrives, Sync is called, or MaxMessageSize is
// reached.
type WebSocketSink struct {
	mu           sync.Mutex
	conn         *websocket.Conn
	line         []byte
	maxSize      int
	writeTimeout time.Duration
	err          error
	closed       bool
}

// WebSocketConfig holds configuration for a websocket sink
type WebSocketConfig struct {
	// URL to dial, e.g. ws://host:port/logs (DialWebSocket only)
	URL string
	// Header is sent with the handshake (DialWebSocket only)
	Header http.Header
	// MaxMessageSize caps a single message (default: 4096)
	MaxMessageSize int
	// WriteTimeout bounds each message write (default: 1s)
	WriteTimeout time.Duration
}

func (cfg *WebSocketConfig) setDefaults() {
	if cfg.MaxMessageSize <= 0 {
		cfg.MaxMessageSize = 4096
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = time.Second
	}
}

// NewWebSocketSink wraps an established connection. The sink owns conn
// from now on.
func NewWebSocketSink(conn *websocket.Conn, cfg WebSocketConfig) *WebSocketSink {
	cfg.setDefaults()
	return &WebSocketSink{
		conn:         conn,
		line:         make([]byte, 0, cfg.MaxMessageSize),
		maxSize:      cfg.MaxMessageSize,
		writeTimeout: cfg.WriteTimeout,
	}
}

// DialWebSocket connects to cfg.URL and returns a sink streaming to it
func DialWebSocket(ctx context.Context, cfg WebSocketConfig) (*WebSocketSink, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("websocket url is required")
	}
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, cfg.URL, cfg.Header)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", cfg.URL, err)
	}
	return NewWebSocketSink(conn, cfg), nil
}

// PutByte buffers c and sends the line if c ends it
func (s *WebSocketSink) PutByte(c byte) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return 0
	}
	s.line = append(s.line, c)
	if c == '\n' || len(s.line) >= s.maxSize {
		s.flush()
	}
	return 1
}

// PutBytes buffers p, sending each line as it completes
func (s *WebSocketSink) PutBytes(p []byte) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return 0
	}
	for _, c := range p {
		s.line = append(s.line, c)
		if c == '\n' || len(s.line) >= s.maxSize {
			s.flush()
		}
	}
	return len(p)
}

// flush sends the pending line. Callers hold s.mu.
func (s *WebSocketSink) flush() {
	if len(s.line) == 0 {
		return
	}
	_ = s.conn.SetWriteDeadline(time.Now().Add(s.writeTimeout))
	if err := s.conn.WriteMessage(websocket.TextMessage, s.line); err != nil {
		s.err = err
	}
	s.line = s.line[:0]
}

// Err returns the most recent send error, if any
func (s *WebSocketSink) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Sync sends any partial line and reports the most recent send error
func (s *WebSocketSink) Sync() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.flush()
	err := s.err
	s.err = nil
	return err
}

// Close sends any partial line, performs the closing handshake and
// closes the connection
func (s *WebSocketSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.flush()
	s.closed = true

	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	_ = s.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(s.writeTimeout))
	return s.conn.Close()
}

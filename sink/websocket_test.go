package sink

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/linelog/core"
)

var (
	_ core.Sink   = (*WebSocketSink)(nil)
	_ core.Syncer = (*WebSocketSink)(nil)
)

// newEchoServer collects every text message it receives
func newEchoServer(t *testing.T) (*httptest.Server, <-chan string) {
	t.Helper()
	msgs := make(chan string, 64)
	upgrader := websocket.Upgrader{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				close(msgs)
				return
			}
			msgs <- string(data)
		}
	}))
	t.Cleanup(srv.Close)
	return srv, msgs
}

func wsURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func receive(t *testing.T, msgs <-chan string) string {
	t.Helper()
	select {
	case m := <-msgs:
		return m
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for websocket message")
		return ""
	}
}

func TestWebSocketSink_OneMessagePerLine(t *testing.T) {
	srv, msgs := newEchoServer(t)

	s, err := DialWebSocket(context.Background(), WebSocketConfig{URL: wsURL(srv)})
	require.NoError(t, err)

	s.PutBytes([]byte("[INFO] "))
	s.PutBytes([]byte("hello"))
	s.PutByte('\n')
	s.PutBytes([]byte("a\n\nb"))

	require.Equal(t, "[INFO] hello\n", receive(t, msgs))
	require.Equal(t, "a\n", receive(t, msgs))
	require.Equal(t, "\n", receive(t, msgs))

	require.NoError(t, s.Sync())
	require.Equal(t, "b", receive(t, msgs))

	require.NoError(t, s.Close())
	require.NoError(t, s.Close())
	require.Equal(t, 0, s.PutByte('x'))
	require.NoError(t, s.Err())
}

func TestWebSocketSink_MaxMessageSize(t *testing.T) {
	srv, msgs := newEchoServer(t)

	s, err := DialWebSocket(context.Background(), WebSocketConfig{URL: wsURL(srv), MaxMessageSize: 4})
	require.NoError(t, err)
	defer s.Close()

	s.PutBytes([]byte("abcdefgh"))
	require.Equal(t, "abcd", receive(t, msgs))
	require.Equal(t, "efgh", receive(t, msgs))
}

func TestDialWebSocket_Errors(t *testing.T) {
	_, err := DialWebSocket(context.Background(), WebSocketConfig{})
	require.Error(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	_, err = DialWebSocket(ctx, WebSocketConfig{URL: "ws://127.0.0.1:1/none"})
	require.Error(t, err)
}

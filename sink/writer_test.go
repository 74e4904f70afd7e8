package sink

import (
	"bufio"
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/philipp01105/linelog/core"
)

var (
	_ core.Sink   = (*WriterSink)(nil)
	_ core.Syncer = (*WriterSink)(nil)
	_ core.Sink   = (*BufferSink)(nil)
)

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) { return 0, errors.New("line down") }

func TestWriterSink(t *testing.T) {
	var buf bytes.Buffer
	s := NewWriterSink(WriterConfig{Writer: &buf})

	require.Equal(t, 1, s.PutByte('['))
	require.Equal(t, 5, s.PutBytes([]byte("hello")))
	require.Equal(t, "[hello", buf.String())
	require.NoError(t, s.Sync())
}

func TestWriterSink_DefaultsToStdout(t *testing.T) {
	s := NewWriterSink(WriterConfig{})
	require.NotNil(t, s.w)
	require.NoError(t, s.Sync())
}

func TestWriterSink_FailureIsShortCount(t *testing.T) {
	s := NewWriterSink(WriterConfig{Writer: failingWriter{}})
	require.Equal(t, 0, s.PutByte('x'))
	require.Equal(t, 0, s.PutBytes([]byte("abc")))
}

func TestWriterSink_SyncFlushes(t *testing.T) {
	var out bytes.Buffer
	bw := bufio.NewWriter(&out)
	s := NewWriterSink(WriterConfig{Writer: bw})

	s.PutBytes([]byte("buffered"))
	require.Empty(t, out.String())
	require.NoError(t, s.Sync())
	require.Equal(t, "buffered", out.String())
}

func TestBufferSink(t *testing.T) {
	s := NewBufferSink(BufferConfig{Size: 8})
	require.Equal(t, 8, s.Cap())

	require.Equal(t, 5, s.PutBytes([]byte("hello")))
	require.Equal(t, 1, s.PutByte(' '))
	require.Equal(t, 2, s.PutBytes([]byte("world")))
	require.Equal(t, 0, s.PutByte('!'))
	require.Equal(t, "hello wo", s.String())
	require.Equal(t, 8, s.Len())

	got := s.Bytes()
	got[0] = 'X'
	require.Equal(t, "hello wo", s.String(), "Bytes must return a copy")

	s.Reset()
	require.Equal(t, 0, s.Len())
	require.Equal(t, 3, s.PutBytes([]byte("abc")))
}

func TestBufferSink_DefaultSize(t *testing.T) {
	require.Equal(t, 1024, NewBufferSink(BufferConfig{}).Cap())
}

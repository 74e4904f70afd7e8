package sink

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/linelog/core"
	"github.com/philipp01105/linelog/logger"
	"github.com/philipp01105/linelog/registry"
)

var (
	_ core.Sink   = (*ZapSink)(nil)
	_ core.Syncer = (*ZapSink)(nil)
)

func TestZapSink(t *testing.T) {
	var buf bytes.Buffer
	s := NewZapSink(zapcore.AddSync(&buf))

	require.Equal(t, 1, s.PutByte('>'))
	require.Equal(t, 3, s.PutBytes([]byte("abc")))
	require.NoError(t, s.Sync())
	require.NoError(t, s.Close())
	require.Equal(t, ">abc", buf.String())
}

func TestZapSink_CloseFlushesBufferedWriter(t *testing.T) {
	var out bytes.Buffer
	ws := &zapcore.BufferedWriteSyncer{WS: zapcore.AddSync(&out), FlushInterval: time.Hour}
	t.Cleanup(func() { _ = ws.Stop() })

	s := NewZapSink(ws)
	s.PutBytes([]byte("hello\n"))
	require.Empty(t, out.String())

	require.NoError(t, s.Close())
	require.Equal(t, "hello\n", out.String())
}

func TestZapSink_RegistryCloseKeepsLines(t *testing.T) {
	var out bytes.Buffer
	ws := &zapcore.BufferedWriteSyncer{WS: zapcore.AddSync(&out), FlushInterval: time.Hour}
	t.Cleanup(func() { _ = ws.Stop() })

	reg := registry.New()
	s := NewZapSink(ws)
	reg.Add(s, core.InfoLevel, registry.WithPrefix(false))
	logger.NewBuilder().WithRegistry(reg).WithLevel(core.InfoLevel).Build().Println("hello")

	require.NoError(t, reg.Close())
	require.Equal(t, "hello\n", out.String())
	require.False(t, reg.IsEnabled(s, core.InfoLevel))
}

func TestOpenZapSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zap.log")

	s, err := OpenZapSink(path)
	require.NoError(t, err)
	s.PutBytes([]byte("line\n"))
	require.NoError(t, s.Sync())
	require.NoError(t, s.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "line\n", string(data))
}

func TestOpenZapSink_NoPaths(t *testing.T) {
	_, err := OpenZapSink()
	require.Error(t, err)
}

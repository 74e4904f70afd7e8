package zapbridge

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/linelog/bridge"
	"github.com/philipp01105/linelog/core"
	"github.com/philipp01105/linelog/registry"
	"github.com/philipp01105/linelog/sink"
)

func newTestLogger(t *testing.T, enab zapcore.LevelEnabler, threshold core.Level) (*zap.Logger, *sink.BufferSink) {
	t.Helper()
	reg := registry.New()
	out := sink.NewBufferSink(sink.BufferConfig{Size: 4096})
	reg.Add(out, threshold, registry.WithDate(false))
	return New(bridge.NewLoggers(reg, nil), enab), out
}

func TestCore_Write(t *testing.T) {
	log, out := newTestLogger(t, zapcore.DebugLevel, core.InfoLevel)

	log.Info("ready", zap.Int("port", 8080), zap.String("mode", "safe mode"))
	log.Warn("low battery", zap.Error(errors.New("cell 2")))
	log.Debug("not delivered: TRACE is above the INFO threshold")
	log.Named("uart").Error("framing error")

	want := "[INFO] ready port=8080 mode=\"safe mode\"\n" +
		"[WARNING] low battery error=\"cell 2\"\n" +
		"[ERROR] uart: framing error\n"
	require.Equal(t, want, out.String())
	require.NoError(t, log.Sync())
}

func TestCore_With(t *testing.T) {
	log, out := newTestLogger(t, zapcore.InfoLevel, core.VerboseLevel)

	child := log.With(zap.String("component", "pump"))
	child.Info("started", zap.Bool("primed", true))
	log.Info("parent")

	want := "[INFO] started component=pump primed=true\n" +
		"[INFO] parent\n"
	require.Equal(t, want, out.String())
}

func TestCore_Check(t *testing.T) {
	log, out := newTestLogger(t, zapcore.WarnLevel, core.VerboseLevel)

	log.Info("filtered by zap")
	require.Empty(t, out.String())
	require.Nil(t, log.Check(zapcore.InfoLevel, "x"))
	require.NotNil(t, log.Check(zapcore.ErrorLevel, "x"))
}

func TestLevelFromZap(t *testing.T) {
	tests := []struct {
		in   zapcore.Level
		want core.Level
	}{
		{zapcore.FatalLevel, core.ErrorLevel},
		{zapcore.PanicLevel, core.ErrorLevel},
		{zapcore.DPanicLevel, core.ErrorLevel},
		{zapcore.ErrorLevel, core.ErrorLevel},
		{zapcore.WarnLevel, core.WarningLevel},
		{zapcore.InfoLevel, core.InfoLevel},
		{zapcore.DebugLevel, core.TraceLevel},
		{zapcore.DebugLevel - 1, core.VerboseLevel},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, LevelFromZap(tt.in), "level %v", tt.in)
	}
}

// Package zapbridge adapts linelog to go.uber.org/zap.
package zapbridge

import (
	"sort"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/linelog/bridge"
	"github.com/philipp01105/linelog/core"
)

// Core is a zapcore.Core writing each entry as one line through the
// Logger for the entry's level. The entry time and level are left to
// the destination prefix; logger name and fields follow the message.
type Core struct {
	zapcore.LevelEnabler
	loggers *bridge.Loggers
	fields  []byte
}

// NewCore creates a core routing to ls for entries enabled by enab
func NewCore(ls *bridge.Loggers, enab zapcore.LevelEnabler) *Core {
	return &Core{LevelEnabler: enab, loggers: ls}
}

// New returns a zap.Logger backed by a Core
func New(ls *bridge.Loggers, enab zapcore.LevelEnabler, opts ...zap.Option) *zap.Logger {
	return zap.New(NewCore(ls, enab), opts...)
}

// With adds structured context to the Core.
func (c *Core) With(fields []zapcore.Field) zapcore.Core {
	clone := &Core{
		LevelEnabler: c.LevelEnabler,
		loggers:      c.loggers,
		fields:       make([]byte, len(c.fields)),
	}
	copy(clone.fields, c.fields)
	clone.fields = appendFields(clone.fields, fields)
	return clone
}

// Check adds the core to ce if the entry's level is enabled.
func (c *Core) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// Write renders the entry and writes it as one line.
func (c *Core) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	var stack [256]byte
	buf := stack[:0]
	if ent.LoggerName != "" {
		buf = append(buf, ent.LoggerName...)
		buf = append(buf, ": "...)
	}
	buf = append(buf, ent.Message...)
	buf = append(buf, c.fields...)
	buf = appendFields(buf, fields)

	c.loggers.For(LevelFromZap(ent.Level)).Line(buf)
	return nil
}

// Sync flushes the registries behind the loggers.
func (c *Core) Sync() error {
	return c.loggers.Sync()
}

// LevelFromZap maps a zap level onto the linelog scale.
func LevelFromZap(level zapcore.Level) core.Level {
	switch {
	case level >= zapcore.ErrorLevel:
		return core.ErrorLevel
	case level == zapcore.WarnLevel:
		return core.WarningLevel
	case level == zapcore.InfoLevel:
		return core.InfoLevel
	case level == zapcore.DebugLevel:
		return core.TraceLevel
	default:
		return core.VerboseLevel
	}
}

// appendFields encodes each field separately so output keeps the
// order in which fields were given.
func appendFields(dst []byte, fields []zapcore.Field) []byte {
	for _, f := range fields {
		enc := zapcore.NewMapObjectEncoder()
		f.AddTo(enc)
		keys := make([]string, 0, len(enc.Fields))
		for k := range enc.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			dst = bridge.AppendField(dst, k, enc.Fields[k])
		}
	}
	return dst
}

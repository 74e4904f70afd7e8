// Package slogbridge adapts linelog to log/slog.
package slogbridge

import (
	"context"
	"log/slog"

	"github.com/philipp01105/linelog/bridge"
	"github.com/philipp01105/linelog/core"
)

// Handler implements slog.Handler by writing each record as one line
// through the Logger for the record's level.
type Handler struct {
	loggers *bridge.Loggers
	level   slog.Leveler
	attrs   []byte
	group   string
}

// NewHandler creates a handler routing to ls. opts.Level defaults to
// slog.LevelInfo, like the standard handlers.
func NewHandler(ls *bridge.Loggers, opts *slog.HandlerOptions) *Handler {
	h := &Handler{loggers: ls, level: slog.LevelInfo}
	if opts != nil && opts.Level != nil {
		h.level = opts.Level
	}
	return h
}

// Enabled reports whether the handler handles records at the given level.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle writes the record's message, the handler's attrs and the
// record's attrs as one line.
func (h *Handler) Handle(_ context.Context, record slog.Record) error {
	var stack [256]byte
	buf := append(stack[:0], record.Message...)
	buf = append(buf, h.attrs...)
	record.Attrs(func(a slog.Attr) bool {
		buf = appendAttr(buf, h.group, a)
		return true
	})

	h.loggers.For(LevelFromSlog(record.Level)).Line(buf)
	return nil
}

// WithAttrs returns a new Handler with additional attributes.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	newAttrs := make([]byte, len(h.attrs), len(h.attrs)+16*len(attrs))
	copy(newAttrs, h.attrs)
	for _, a := range attrs {
		newAttrs = appendAttr(newAttrs, h.group, a)
	}
	return &Handler{
		loggers: h.loggers,
		level:   h.level,
		attrs:   newAttrs,
		group:   h.group,
	}
}

// WithGroup returns a new Handler with the given group name.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	newGroup := name
	if h.group != "" {
		newGroup = h.group + "." + name
	}
	return &Handler{
		loggers: h.loggers,
		level:   h.level,
		attrs:   h.attrs,
		group:   newGroup,
	}
}

// LevelFromSlog maps a slog level onto the linelog scale.
func LevelFromSlog(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarningLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	case level >= slog.LevelDebug:
		return core.TraceLevel
	default:
		return core.VerboseLevel
	}
}

// appendAttr appends a as " key=value", flattening groups into dotted keys.
func appendAttr(dst []byte, group string, a slog.Attr) []byte {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return dst
	}

	key := a.Key
	if group != "" && key != "" {
		key = group + "." + key
	} else if key == "" {
		key = group
	}

	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			dst = appendAttr(dst, key, ga)
		}
		return dst
	}
	return bridge.AppendField(dst, key, a.Value.String())
}

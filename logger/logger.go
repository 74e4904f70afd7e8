package logger

import (
	"bytes"
	"fmt"

	"github.com/philipp01105/linelog/core"
	"github.com/philipp01105/linelog/formatter"
	"github.com/philipp01105/linelog/registry"
)

var newline = [2]byte{'\n', '\n'}

// Logger writes lines at one fixed level to every destination of its
// registry whose threshold admits that level. It holds no line state of
// its own; the prefix-pending flags live in the registry and are shared
// with every other Logger bound to it.
type Logger struct {
	registry *registry.Registry
	clock    core.Clock
	level    core.Level
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	registry *registry.Registry
	clock    core.Clock
	level    core.Level
}

// NewBuilder creates a new logger builder. Without further options it
// builds a SilentLevel logger on the default registry using the system
// clock.
func NewBuilder() *Builder {
	return &Builder{
		level: core.SilentLevel,
	}
}

// WithLevel sets the logger's own level
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.level = level
	return b
}

// WithRegistry binds the logger to reg instead of the default registry
func (b *Builder) WithRegistry(reg *registry.Registry) *Builder {
	b.registry = reg
	return b
}

// WithClock sets the clock used for the date segment of prefixes
func (b *Builder) WithClock(clock core.Clock) *Builder {
	b.clock = clock
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	reg := b.registry
	if reg == nil {
		reg = DefaultRegistry()
	}
	clock := b.clock
	if clock == nil {
		clock = core.SystemClock{}
	}
	return &Logger{
		registry: reg,
		clock:    clock,
		level:    b.level,
	}
}

// New creates a logger at level on the default registry
func New(level core.Level) *Logger {
	return NewBuilder().WithLevel(level).Build()
}

// Level returns the logger's own level
func (l *Logger) Level() core.Level {
	return l.level
}

// Registry returns the registry the logger writes through
func (l *Logger) Registry() *registry.Registry {
	return l.registry
}

// IsEnabled reports whether writes from l reach s.
func (l *Logger) IsEnabled(s core.Sink) bool {
	return l.registry.IsEnabled(s, l.level)
}

// WriteRequest performs one write and returns l so requests can be
// chained. Payload goes to every enabled destination whose threshold
// admits l's level, preceded by a prefix if the destination is at the
// start of a line.
func (l *Logger) WriteRequest(req Request) *Logger {
	switch req.kind {
	case kindEndLine:
		l.terminate(newline[:1])
	case kindDoubleEndLine:
		l.terminate(newline[:2])
	case kindSuppressPrefix:
		l.registry.All(func(d *registry.Destination) {
			d.SetPrefixPending(false)
		})
	case kindByte:
		l.emit(req)
	default:
		if len(req.data) > 0 {
			l.emit(req)
		}
	}
	return l
}

// emit writes a payload request to each accepting destination.
func (l *Logger) emit(req Request) {
	l.registry.Each(l.level, func(d *registry.Destination) {
		l.put(d, req)
	})
}

// put writes req to d, rendering d's prefix first when a line starts.
func (l *Logger) put(d *registry.Destination, req Request) {
	sink := d.Sink()
	if d.PrefixPending() {
		d.SetPrefixPending(false)
		var buf formatter.Buffer
		if p := formatter.AppendPrefix(buf[:0], d.Flags(), l.clock, l.level); len(p) > 0 {
			sink.PutBytes(p)
		}
	}
	if req.kind == kindByte {
		sink.PutByte(req.c)
	} else {
		sink.PutBytes(req.data)
	}
}

// terminate ends the current line on each accepting destination.
func (l *Logger) terminate(nl []byte) {
	l.registry.Each(l.level, func(d *registry.Destination) {
		d.Sink().PutBytes(nl)
		d.SetPrefixPending(true)
	})
	l.registry.Counters().IncrementLines(l.level)
}

// Line writes p followed by EndLine while holding the registry lock
// once, so lines from concurrent writers never interleave.
func (l *Logger) Line(p []byte) *Logger {
	req := Bytes(p)
	l.registry.Each(l.level, func(d *registry.Destination) {
		if len(p) > 0 {
			l.put(d, req)
		}
		d.Sink().PutBytes(newline[:1])
		d.SetPrefixPending(true)
	})
	l.registry.Counters().IncrementLines(l.level)
	return l
}

// Print writes s as payload
func (l *Logger) Print(s string) *Logger {
	return l.WriteRequest(String(s))
}

// Printf formats according to a format specifier and writes the result as payload
func (l *Logger) Printf(format string, args ...interface{}) *Logger {
	var buf [128]byte
	return l.WriteRequest(Bytes(fmt.Appendf(buf[:0], format, args...)))
}

// Println writes s followed by EndLine as one line
func (l *Logger) Println(s string) *Logger {
	return l.Line(String(s).data)
}

// Byte writes a single payload byte
func (l *Logger) Byte(c byte) *Logger {
	return l.WriteRequest(Byte(c))
}

// Bytes writes p as payload
func (l *Logger) Bytes(p []byte) *Logger {
	return l.WriteRequest(Bytes(p))
}

// EndLine terminates the current line
func (l *Logger) EndLine() *Logger {
	return l.WriteRequest(EndLine)
}

// DoubleEndLine terminates the current line and adds an empty one
func (l *Logger) DoubleEndLine() *Logger {
	return l.WriteRequest(DoubleEndLine)
}

// NoPrefix suppresses the prefix of the line about to start. It must be
// the first call after a terminator (or the first call on a fresh
// registry); once payload has been written the line's prefix is already
// out and NoPrefix does nothing.
func (l *Logger) NoPrefix() *Logger {
	return l.WriteRequest(SuppressPrefix)
}

// Write implements io.Writer. Every '\n' in p becomes an EndLine marker
// and everything between them is payload. Write never fails.
func (l *Logger) Write(p []byte) (int, error) {
	n := len(p)
	for len(p) > 0 {
		i := bytes.IndexByte(p, '\n')
		if i < 0 {
			l.WriteRequest(Bytes(p))
			break
		}
		if i > 0 {
			l.WriteRequest(Bytes(p[:i]))
		}
		l.WriteRequest(EndLine)
		p = p[i+1:]
	}
	return n, nil
}

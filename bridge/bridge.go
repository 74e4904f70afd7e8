// Package bridge routes records from other logging libraries into
// linelog. The subpackages adapt log/slog, zap and logrus; this package
// holds what they share: the level-to-Logger routing table and the
// key=value rendering of attached fields.
//
// Each record becomes one line written with Logger.Line, so the
// destination prefix carries the time and level and the line body holds
// the message and its fields:
//
//	[14:03:27.042 WARNING] retrying upload attempt=3 backoff=2s
package bridge

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"go.uber.org/multierr"

	"github.com/philipp01105/linelog/core"
	"github.com/philipp01105/linelog/logger"
	"github.com/philipp01105/linelog/registry"
)

// Loggers routes each level to the Logger that writes it.
type Loggers struct {
	byLevel [int(core.MaxLevel) + 1]*logger.Logger
}

// NewLoggers builds one Logger per level on reg. A nil clock selects the
// system clock.
func NewLoggers(reg *registry.Registry, clock core.Clock) *Loggers {
	ls := &Loggers{}
	for l := core.MinLevel; l <= core.MaxLevel; l++ {
		ls.byLevel[l] = logger.NewBuilder().
			WithRegistry(reg).
			WithLevel(l).
			WithClock(clock).
			Build()
	}
	return ls
}

// DefaultLoggers routes to the package-level instances of package logger.
func DefaultLoggers() *Loggers {
	ls := &Loggers{}
	ls.byLevel[core.SilentLevel] = logger.Default()
	ls.byLevel[core.ErrorLevel] = logger.Error
	ls.byLevel[core.WarningLevel] = logger.Warning
	ls.byLevel[core.InfoLevel] = logger.Info
	ls.byLevel[core.TraceLevel] = logger.Trace
	ls.byLevel[core.VerboseLevel] = logger.Verbose
	return ls
}

// For returns the Logger for level, clamping out-of-range levels to
// ErrorLevel or VerboseLevel.
func (ls *Loggers) For(level core.Level) *logger.Logger {
	switch {
	case level < core.ErrorLevel:
		level = core.ErrorLevel
	case level > core.MaxLevel:
		level = core.MaxLevel
	}
	return ls.byLevel[level]
}

// Sync flushes every registry the loggers write through.
func (ls *Loggers) Sync() error {
	var seen []*registry.Registry
	var err error
	for _, l := range ls.byLevel {
		reg := l.Registry()
		dup := false
		for _, r := range seen {
			if r == reg {
				dup = true
				break
			}
		}
		if dup {
			continue
		}
		seen = append(seen, reg)
		err = multierr.Append(err, reg.Sync())
	}
	return err
}

// AppendField appends " key=value" to dst. Values that are empty or
// contain spaces, quotes, '=' or non-printable runes are quoted.
func AppendField(dst []byte, key string, value any) []byte {
	dst = append(dst, ' ')
	dst = append(dst, key...)
	dst = append(dst, '=')

	s, ok := value.(string)
	if !ok {
		switch v := value.(type) {
		case error:
			s = v.Error()
		case fmt.Stringer:
			s = v.String()
		default:
			s = fmt.Sprint(v)
		}
	}
	if needsQuote(s) {
		return strconv.AppendQuote(dst, s)
	}
	return append(dst, s...)
}

func needsQuote(s string) bool {
	if s == "" {
		return true
	}
	if strings.ContainsAny(s, " =\"") {
		return true
	}
	for _, r := range s {
		if r == utf8.RuneError || !strconv.IsPrint(r) {
			return true
		}
	}
	return false
}

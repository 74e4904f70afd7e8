// Package logrusbridge adapts linelog to github.com/sirupsen/logrus as a
// hook, so an existing logrus.Logger can feed linelog destinations.
package logrusbridge

import (
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/philipp01105/linelog/bridge"
	"github.com/philipp01105/linelog/core"
)

// Hook writes every fired logrus entry as one line
type Hook struct {
	loggers *bridge.Loggers
	levels  []logrus.Level
}

// NewHook creates a hook firing for levels (default: logrus.AllLevels)
func NewHook(ls *bridge.Loggers, levels ...logrus.Level) *Hook {
	if len(levels) == 0 {
		levels = logrus.AllLevels
	}
	return &Hook{loggers: ls, levels: levels}
}

// Levels implements logrus.Hook
func (h *Hook) Levels() []logrus.Level {
	return h.levels
}

// Fire implements logrus.Hook. Fields are written in key order.
func (h *Hook) Fire(entry *logrus.Entry) error {
	var stack [256]byte
	buf := append(stack[:0], entry.Message...)

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		buf = bridge.AppendField(buf, k, entry.Data[k])
	}

	h.loggers.For(LevelFromLogrus(entry.Level)).Line(buf)
	return nil
}

// LevelFromLogrus maps a logrus level onto the linelog scale.
func LevelFromLogrus(level logrus.Level) core.Level {
	switch level {
	case logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel:
		return core.ErrorLevel
	case logrus.WarnLevel:
		return core.WarningLevel
	case logrus.InfoLevel:
		return core.InfoLevel
	case logrus.DebugLevel:
		return core.TraceLevel
	default:
		return core.VerboseLevel
	}
}

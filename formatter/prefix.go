package formatter

import (
	"github.com/philipp01105/linelog/core"
)

// Flags selects which prefix segments are rendered for a destination.
type Flags struct {
	// Prefix gates the whole prefix; when false nothing is rendered
	Prefix bool
	// Date renders the clock as HH:MM:SS.mmm
	Date bool
	// LevelName renders the writing instance's level name
	LevelName bool
}

// DefaultFlags has every segment enabled.
var DefaultFlags = Flags{Prefix: true, Date: true, LevelName: true}

// TimeLayout is the layout used for the date segment.
const TimeLayout = "15:04:05.000"

// MaxPrefixLen is the longest prefix AppendPrefix can produce:
// "[HH:MM:SS.mmm VERBOSE] ".
const MaxPrefixLen = len("[") + len(TimeLayout) + len(" ") + len("VERBOSE") + len("] ")

// Buffer is a stack-allocatable scratch area for one rendered prefix.
type Buffer [MaxPrefixLen]byte

// AppendPrefix appends the prefix for a line written at level to dst and
// returns the extended slice. The clock is only read when f.Date is set.
// The delimiter between time and level name is emitted only when both
// segments are non-empty.
func AppendPrefix(dst []byte, f Flags, clock core.Clock, level core.Level) []byte {
	if !f.Prefix {
		return dst
	}

	dst = append(dst, '[')
	if f.Date && clock != nil {
		dst = clock.Now().AppendFormat(dst, TimeLayout)
	}

	var name string
	if f.LevelName {
		name = level.String()
	}
	if name != "" {
		if f.Date && clock != nil {
			dst = append(dst, ' ')
		}
		dst = append(dst, name...)
	}

	return append(dst, ']', ' ')
}

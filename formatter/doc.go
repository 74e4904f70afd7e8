// Package formatter renders the per-line prefix written in front of the
// first payload byte of every line.
//
// A full prefix looks like
//
//	[14:03:27.042 WARNING] message
//
// Each destination chooses the segments independently through Flags:
// Prefix gates the whole thing, Date adds the HH:MM:SS.mmm clock reading
// and LevelName adds the name of the writing instance's level.
//
// AppendPrefix follows the Append-style convention (time.AppendFormat,
// strconv.AppendInt) so callers can render into a fixed Buffer on the
// stack. No prefix is longer than MaxPrefixLen bytes.
package formatter

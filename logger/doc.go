// Package logger is the public API of linelog. Most firmware code only
// needs to import this package.
//
// A Logger is bound to one level for its whole life. Writing through it
// reaches every enabled destination in its registry whose threshold is at
// or above that level, so a single Add configures delivery for every
// Logger sharing the registry:
//
//	serial := sink.NewWriterSink(sink.WriterConfig{Writer: uart})
//	logger.Add(serial, logger.InfoLevel)
//
//	logger.Warning.Print("battery at ").Printf("%d%%", pct).EndLine()
//	logger.Trace.Println("not delivered to serial")
//
// The package initializes a default registry and one Logger per level
// (Error, Warning, Info, Trace, Verbose) plus Default, an unrestricted
// logger at SilentLevel. Programs that want an explicit registry use the
// Builder:
//
//	reg := registry.New()
//	log := logger.NewBuilder().
//	    WithRegistry(reg).
//	    WithLevel(logger.TraceLevel).
//	    WithClock(core.NewCoarseClock()).
//	    Build()
//
// Writes are Requests: payload (Bytes, String, Byte) or one of the
// control markers EndLine, DoubleEndLine and SuppressPrefix. The first
// payload byte after a terminator renders the destination's prefix,
// for example "[14:03:27.042 WARNING] ". SuppressPrefix must come right
// after the terminator to drop the prefix of the next line:
//
//	logger.Info.NoPrefix().Println("raw continuation")
//
// Logger also implements io.Writer, turning each '\n' into EndLine, so
// fmt.Fprintf and the bridges under bridge/ can write through it.
//
// Nothing on the write path returns an error. Sink failures are the
// sink's concern.
package logger

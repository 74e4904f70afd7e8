// Package sink provides the built-in core.Sink implementations.
//
//   - WriterSink adapts any io.Writer, defaulting to os.Stdout. Serial
//     lines and consoles are usually wrapped this way.
//   - BufferSink keeps output in a fixed-size buffer and refuses bytes
//     once full, reporting the short count.
//   - FileSink appends to a file through a write buffer. It is compiled
//     out with the linelog_nofile build tag.
//   - WebSocketSink streams completed lines as websocket text messages.
//   - ZapSink writes through a zapcore.WriteSyncer, including anything
//     opened with zap.Open.
//
// Every sink is a pointer type, so it can serve as its own identity in
// a registry. Sinks that buffer implement core.Syncer, and sinks that
// own a resource implement io.Closer; registry.Registry.Sync and Close
// use both.
package sink

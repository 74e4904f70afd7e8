package core

// Sink is the byte-accepting capability every destination writes through.
// Both methods report how many bytes the sink accepted; a short count is the
// sink's concern and is not surfaced by the logging layer.
//
// Destinations are matched by sink identity, so implementations should be
// pointer types (or otherwise comparable with ==).
type Sink interface {
	// PutByte writes a single byte
	PutByte(c byte) int
	// PutBytes writes p in order
	PutBytes(p []byte) int
}

// Syncer is implemented by sinks that buffer and can be flushed.
type Syncer interface {
	Sync() error
}

package benchmark

// noopSink accepts every byte and keeps nothing
type noopSink struct {
	n uint64
}

func (s *noopSink) PutByte(c byte) int {
	s.n++
	return 1
}

func (s *noopSink) PutBytes(p []byte) int {
	s.n += uint64(len(p))
	return len(p)
}

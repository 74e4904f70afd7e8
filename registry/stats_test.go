package registry

import (
	"sync"
	"testing"

	"github.com/philipp01105/linelog/core"
)

func TestStats_Lines(t *testing.T) {
	s := NewStats()
	s.IncrementLines(core.ErrorLevel)
	s.IncrementLines(core.ErrorLevel)
	s.IncrementLines(core.TraceLevel)
	s.IncrementLines(core.Level(42))

	snap := s.GetSnapshot()
	if snap.Lines[core.ErrorLevel] != 2 {
		t.Errorf("Lines[ERROR] = %d, want 2", snap.Lines[core.ErrorLevel])
	}
	if snap.Lines[core.TraceLevel] != 1 {
		t.Errorf("Lines[TRACE] = %d, want 1", snap.Lines[core.TraceLevel])
	}
	if got := s.GetLines(core.Level(-3)); got != 1 {
		t.Errorf("out-of-range lines = %d, want 1", got)
	}
	if snap.UnknownLines != 1 {
		t.Errorf("UnknownLines = %d, want 1", snap.UnknownLines)
	}
	if _, ok := snap.Lines[core.Level(42)]; ok {
		t.Error("Lines has an entry for an out-of-range level")
	}
}

func TestStats_Reset(t *testing.T) {
	s := NewStats()
	s.IncrementRejected()
	s.IncrementUnknown()
	s.IncrementLines(core.InfoLevel)
	s.Reset()

	snap := s.GetSnapshot()
	if snap.RejectedAdds != 0 || snap.UnknownDestination != 0 || snap.Lines[core.InfoLevel] != 0 {
		t.Errorf("Reset() left counters: %+v", snap)
	}
}

func TestStats_Concurrent(t *testing.T) {
	s := NewStats()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				s.IncrementLines(core.InfoLevel)
				s.IncrementUnknown()
			}
		}()
	}
	wg.Wait()

	if got := s.GetLines(core.InfoLevel); got != 8000 {
		t.Errorf("GetLines(INFO) = %d, want 8000", got)
	}
	if got := s.GetUnknown(); got != 8000 {
		t.Errorf("GetUnknown() = %d, want 8000", got)
	}
}

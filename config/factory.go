package config

import (
	"context"
	"fmt"

	"github.com/philipp01105/linelog/core"
	"github.com/philipp01105/linelog/sink"
)

// DefaultFactory builds the sinks of package sink
func DefaultFactory(o Output) (core.Sink, error) {
	switch o.Type {
	case TypeStdout:
		return sink.NewStdoutSink(), nil
	case TypeStderr:
		return sink.NewStderrSink(), nil
	case TypeBuffer:
		return sink.NewBufferSink(sink.BufferConfig{Size: o.Size}), nil
	case TypeFile:
		return newFileSink(o)
	case TypeWebSocket:
		s, err := sink.DialWebSocket(context.Background(), sink.WebSocketConfig{URL: o.URL})
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown type %q", o.Type)
	}
}

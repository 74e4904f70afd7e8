//go:build !linelog_nofile

package config

import (
	"github.com/philipp01105/linelog/core"
	"github.com/philipp01105/linelog/sink"
)

func newFileSink(o Output) (core.Sink, error) {
	s, err := sink.NewFileSink(sink.FileConfig{Filename: o.Path})
	if err != nil {
		return nil, err
	}
	return s, nil
}

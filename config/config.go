package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/philipp01105/linelog/core"
	"github.com/philipp01105/linelog/formatter"
	"github.com/philipp01105/linelog/registry"
)

// Output types understood by DefaultFactory.
const (
	TypeStdout    = "stdout"
	TypeStderr    = "stderr"
	TypeFile      = "file"
	TypeBuffer    = "buffer"
	TypeWebSocket = "websocket"
)

// File is the root of a configuration document
type File struct {
	Outputs []Output `yaml:"outputs"`
}

// Output describes one destination
type Output struct {
	// Name identifies the output in error messages and dumps
	Name string `yaml:"name"`
	// Type selects the sink (stdout, stderr, file, buffer, websocket)
	Type string `yaml:"type"`
	// Level is the destination threshold, a level name or digit
	Level string `yaml:"level"`
	// Prefix, Date and LevelName default to true when omitted
	Prefix    *bool `yaml:"prefix"`
	Date      *bool `yaml:"date"`
	LevelName *bool `yaml:"levelName"`
	// Disabled registers the output but turns delivery off
	Disabled bool `yaml:"disabled"`
	// Path is the file to append to (file only)
	Path string `yaml:"path"`
	// URL is the endpoint to dial (websocket only)
	URL string `yaml:"url"`
	// Size is the buffer capacity in bytes (buffer only)
	Size int `yaml:"size"`
}

// Threshold parses Level
func (o Output) Threshold() (core.Level, error) {
	level, ok := core.ParseLevel(o.Level)
	if !ok {
		return core.SilentLevel, fmt.Errorf("output %q: unknown level %q", o.Name, o.Level)
	}
	return level, nil
}

// Flags returns the prefix flags with omitted fields defaulted to true
func (o Output) Flags() formatter.Flags {
	f := formatter.DefaultFlags
	if o.Prefix != nil {
		f.Prefix = *o.Prefix
	}
	if o.Date != nil {
		f.Date = *o.Date
	}
	if o.LevelName != nil {
		f.LevelName = *o.LevelName
	}
	return f
}

// Load reads and parses a configuration file
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a configuration document
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks levels, types and required fields. It does not check
// the table capacity; Apply reports outputs past it with ErrTableFull.
func (f *File) Validate() error {
	seen := make(map[string]bool, len(f.Outputs))
	for i := range f.Outputs {
		o := &f.Outputs[i]
		if o.Name == "" {
			o.Name = fmt.Sprintf("output%d", i)
		}
		if seen[o.Name] {
			return fmt.Errorf("duplicate output name %q", o.Name)
		}
		seen[o.Name] = true

		o.Type = strings.ToLower(strings.TrimSpace(o.Type))
		if _, err := o.Threshold(); err != nil {
			return err
		}
		switch o.Type {
		case TypeStdout, TypeStderr, TypeBuffer:
		case TypeFile:
			if o.Path == "" {
				return fmt.Errorf("output %q: file output requires path", o.Name)
			}
		case TypeWebSocket:
			if o.URL == "" {
				return fmt.Errorf("output %q: websocket output requires url", o.Name)
			}
		default:
			return fmt.Errorf("output %q: unknown type %q", o.Name, o.Type)
		}
	}
	return nil
}

// ErrTableFull is returned by Apply when an output does not fit in the
// registry.
var ErrTableFull = errors.New("destination table full")

// ErrUnusableSink is returned by Apply when the registry refuses a sink
// built by the factory.
var ErrUnusableSink = errors.New("sink rejected by registry")

// Factory builds the sink for an output
type Factory func(o Output) (core.Sink, error)

// Apply builds every output with factory and registers it on reg. It
// returns the sinks keyed by output name. Apply stops at the first
// error; sinks built before it stay registered. The factory is not
// called once the table is full, and a sink the registry refuses is
// closed before Apply returns.
func Apply(reg *registry.Registry, f *File, factory Factory) (map[string]core.Sink, error) {
	if factory == nil {
		factory = DefaultFactory
	}
	sinks := make(map[string]core.Sink, len(f.Outputs))
	for _, o := range f.Outputs {
		threshold, err := o.Threshold()
		if err != nil {
			return sinks, err
		}
		if reg.Len() == reg.Cap() {
			return sinks, fmt.Errorf("output %q: %w (capacity %d)", o.Name, ErrTableFull, reg.Cap())
		}
		s, err := factory(o)
		if err != nil {
			return sinks, fmt.Errorf("output %q: %w", o.Name, err)
		}
		reg.Add(s, threshold, registry.WithFlags(o.Flags()))
		if !reg.Registered(s) {
			err = fmt.Errorf("output %q: %w", o.Name, ErrUnusableSink)
			if c, ok := s.(io.Closer); ok {
				err = multierr.Append(err, c.Close())
			}
			return sinks, err
		}
		if o.Disabled {
			reg.Disable(s)
		}
		sinks[o.Name] = s
	}
	return sinks, nil
}

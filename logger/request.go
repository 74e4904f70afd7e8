package logger

import (
	"unsafe"
)

type requestKind uint8

const (
	kindBytes requestKind = iota
	kindByte
	kindEndLine
	kindDoubleEndLine
	kindSuppressPrefix
)

// Request is one write operation: either payload bytes or a control
// marker. The zero Request is an empty payload and writes nothing.
type Request struct {
	kind requestKind
	c    byte
	data []byte
}

// Control markers.
var (
	// EndLine terminates the current line with one newline
	EndLine = Request{kind: kindEndLine}
	// DoubleEndLine terminates the current line with two newlines
	DoubleEndLine = Request{kind: kindDoubleEndLine}
	// SuppressPrefix drops the prefix of the line that is about to start.
	// It only has an effect between a terminator and the first payload
	// byte of the next line; anywhere else it is ignored.
	SuppressPrefix = Request{kind: kindSuppressPrefix}
)

// Bytes returns a payload request for p. Sinks see p as-is and must not
// retain it.
func Bytes(p []byte) Request {
	return Request{kind: kindBytes, data: p}
}

// String returns a payload request for s without copying it.
func String(s string) Request {
	return Request{kind: kindBytes, data: unsafe.Slice(unsafe.StringData(s), len(s))}
}

// Byte returns a single-byte payload request.
func Byte(c byte) Request {
	return Request{kind: kindByte, c: c}
}

// IsMarker reports whether r is a control marker rather than payload.
func (r Request) IsMarker() bool {
	return r.kind >= kindEndLine
}

// String describes the request for debugging
func (r Request) String() string {
	switch r.kind {
	case kindEndLine:
		return "EndLine"
	case kindDoubleEndLine:
		return "DoubleEndLine"
	case kindSuppressPrefix:
		return "SuppressPrefix"
	case kindByte:
		return "Byte(" + string(rune(r.c)) + ")"
	default:
		return "Bytes(" + string(r.data) + ")"
	}
}

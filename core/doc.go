// Package core defines the shared types used across linelog.
//
// It provides the Level type for severity filtering, the Sink capability
// that every destination writes through, and the Clock capability used to
// render timestamps in line prefixes.
//
// Levels run from SilentLevel (0) to VerboseLevel (5). A destination
// configured at threshold T receives a write at level L when L <= T, so
// a lower level is delivered more widely. Level.String never reads out of
// bounds: values outside the defined range return UnknownLevelName.
//
// Sink has exactly two operations, write-one and write-many, and reports
// the number of bytes accepted. Anything that can carry bytes (a serial
// line, a file, a network stream, a fixed buffer) can implement it; see
// package sink for the built-in implementations.
package core

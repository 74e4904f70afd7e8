// Package registry holds the table of output destinations shared by
// every Logger bound to it.
//
// Each Destination binds one core.Sink to a severity threshold, three
// prefix toggles (prefix, date, level name), an enabled flag, and the
// prefix-pending flag driven by the write path. The table has a fixed
// Capacity and is searched linearly by sink identity. Registering the
// same sink twice updates the existing record in place.
//
// Misconfiguration never surfaces as an error: Add on a full table and
// any mutation naming an unregistered sink are silent no-ops. Both are
// counted in Stats so callers and tests can still observe them.
//
// A Registry is safe for concurrent use. One mutex serializes every
// mutation and every iteration performed by the write path.
package registry

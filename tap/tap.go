// Package tap defines resolvable storage locations for streaming flows.
//
// A tap names a place data is read from or written to, abstracted away
// from the concrete file system. The job builder consumes taps as
// opaque producers of resolved path strings.
package tap

import "golang.org/x/xerrors"

// Tap is a named storage location usable as a flow endpoint.
//
// Source resolves the location for reading, Sink for writing. Both
// must return a non-empty absolute path; an empty path is a
// precondition violation and resolves to an error instead.
type Tap interface {
	Source() (string, error)
	Sink() (string, error)
}

func checkResolved(kind, path string) (string, error) {
	if path == "" {
		return "", xerrors.Errorf("tap: %s resolved to an empty path", kind)
	}
	return path, nil
}

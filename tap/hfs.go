package tap

import "strings"

// Hfs is a tap over an HDFS location.
//
// The zero value is not usable; construct with NewHfs. Path helpers
// return modified copies, the tap itself is never mutated.
type Hfs struct {
	path string
}

// NewHfs creates a tap for path. Paths without a scheme are
// interpreted as absolute HDFS paths and qualified with hdfs://.
func NewHfs(path string) Hfs {
	return Hfs{path: path}
}

// Child returns a tap for a path below this one. Separator is always
// forward slash, matching what the execution engine expects.
func (h Hfs) Child(name string) Hfs {
	return Hfs{path: strings.TrimSuffix(h.path, "/") + "/" + name}
}

// Qualified returns the path with the hdfs:// scheme prepended when
// it carries no scheme of its own.
func (h Hfs) Qualified() string {
	if h.path == "" || strings.Contains(h.path, "://") {
		return h.path
	}
	return "hdfs://" + h.path
}

func (h Hfs) String() string { return h.path }

func (h Hfs) Source() (string, error) {
	return checkResolved("source", h.path)
}

func (h Hfs) Sink() (string, error) {
	return checkResolved("sink", h.path)
}

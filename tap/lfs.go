package tap

import "path/filepath"

// Lfs is a tap over the local file system. Relative paths are
// resolved against the current working directory at resolution time.
type Lfs struct {
	path string
}

func NewLfs(path string) Lfs {
	return Lfs{path: path}
}

func (l Lfs) String() string { return l.path }

func (l Lfs) resolve() (string, error) {
	if l.path == "" {
		return "", nil
	}
	return filepath.Abs(l.path)
}

func (l Lfs) Source() (string, error) {
	p, err := l.resolve()
	if err != nil {
		return "", err
	}
	return checkResolved("source", p)
}

func (l Lfs) Sink() (string, error) {
	p, err := l.resolve()
	if err != nil {
		return "", err
	}
	return checkResolved("sink", p)
}

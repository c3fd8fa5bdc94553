package spec

import (
	"path"
	"strings"
)

// Anchor derives the base directory scripts are resolved against.
//
// When an archive reference is supplied, scripts unpack into the
// directory named by the fragment after the last '#'; a reference
// without a fragment, like no archive at all, anchors at the working
// directory.
func Anchor(archive string) string {
	i := strings.LastIndex(archive, "#")
	if i < 0 {
		return "."
	}
	return archive[i+1:]
}

// Compose builds the shell command the engine runs for one phase:
// interpreter, anchored script path, then the argument string
// verbatim. Args are appended as-is, the caller owns quoting.
func Compose(interpreter, anchor, script, args string) Command {
	return Command(interpreter + " " + path.Join(anchor, script) + " " + args)
}

// Args flattens the spec into the engine's positionally-flagged
// argument list. Order is fixed and significant; -reducer is omitted
// entirely for map-only jobs.
func (s *Spec) Args() []string {
	args := []string{
		"-input", s.InputPath,
		"-output", s.OutputPath,
		"-mapper", string(s.Mapper),
	}
	if s.Reducer != "" {
		args = append(args, "-reducer", string(s.Reducer))
	}
	return args
}

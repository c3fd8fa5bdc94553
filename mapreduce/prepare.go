package mapreduce

import (
	"fmt"

	"golang.org/x/xerrors"

	"github.com/ivanmladek/cloud-kepler/spec"
	"github.com/ivanmladek/cloud-kepler/tap"
)

// prepare holds state for all steps required to assemble a job spec.
type prepare struct {
	interpreter string
	archive     string
	name        string

	mapperScript string
	mapperArgs   string

	reducerScript string
	reducerArgs   string

	hasReducer bool
}

func newPrepare(interpreter string, opts []JobOption) *prepare {
	p := &prepare{interpreter: interpreter}

	for _, opt := range opts {
		switch o := opt.(type) {
		case *archiveOption:
			p.archive = o.archive
		case *mapperOption:
			p.mapperScript = o.script
			p.mapperArgs = o.args
		case *reducerOption:
			p.reducerScript = o.script
			p.reducerArgs = o.args
			p.hasReducer = true
		case *jobNameOption:
			p.name = o.name
		default:
			panic(fmt.Sprintf("unsupported option type %T", opt))
		}
	}

	return p
}

// build resolves both taps and composes the spec. The anchor is
// computed once and shared by the mapper and reducer commands.
func (p *prepare) build(input, output tap.Tap) (*spec.Spec, error) {
	if p.interpreter == "" {
		return nil, xerrors.New("mapreduce: interpreter is empty")
	}
	if p.mapperScript == "" {
		return nil, xerrors.New("mapreduce: mapper script is missing")
	}

	in, err := input.Source()
	if err != nil {
		return nil, err
	}

	out, err := output.Sink()
	if err != nil {
		return nil, err
	}

	anchor := spec.Anchor(p.archive)

	s := spec.Streaming().
		Named(p.name).
		Input(in).
		Output(out).
		MapperCommand(spec.Compose(p.interpreter, anchor, p.mapperScript, p.mapperArgs))

	if p.hasReducer {
		s.ReducerCommand(spec.Compose(p.interpreter, anchor, p.reducerScript, p.reducerArgs))
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}

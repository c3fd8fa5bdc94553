// Package spec defines the specification of a streaming job.
//
// A spec is assembled once per submission and consumed immediately by
// the flow connector; nothing in it is persisted.
package spec

import (
	"github.com/mitchellh/copystructure"
	"golang.org/x/xerrors"
)

// Command is an external program invocation: the full command string
// the execution engine hands to a shell for every input split.
type Command string

// Spec describes one streaming job.
//
// InputPath and OutputPath are resolved absolute paths known to the
// storage layer before the spec is built. Mapper is always present;
// an empty Reducer makes the job map-only.
type Spec struct {
	Name string `json:"name,omitempty"`

	InputPath  string `json:"input_path"`
	OutputPath string `json:"output_path"`

	Mapper  Command `json:"mapper"`
	Reducer Command `json:"reducer,omitempty"`
}

func Streaming() *Spec {
	return &Spec{}
}

func (s *Spec) Named(name string) *Spec {
	s.Name = name
	return s
}

func (s *Spec) Input(path string) *Spec {
	s.InputPath = path
	return s
}

func (s *Spec) Output(path string) *Spec {
	s.OutputPath = path
	return s
}

func (s *Spec) MapperCommand(cmd Command) *Spec {
	s.Mapper = cmd
	return s
}

func (s *Spec) ReducerCommand(cmd Command) *Spec {
	s.Reducer = cmd
	return s
}

func (s *Spec) Clone() *Spec {
	return copystructure.Must(copystructure.Copy(s)).(*Spec)
}

func (s *Spec) Validate() error {
	if s.InputPath == "" {
		return xerrors.New("spec: input path is empty")
	}
	if s.OutputPath == "" {
		return xerrors.New("spec: output path is empty")
	}
	if s.Mapper == "" {
		return xerrors.New("spec: mapper command is empty")
	}
	return nil
}

// Package flow wraps streaming job specs into named, schedulable
// units and defines the port they are submitted through.
package flow

import (
	"fmt"

	"github.com/gofrs/uuid"

	"github.com/ivanmladek/cloud-kepler/spec"
)

// Flow is a named unit of execution wrapping exactly one job spec.
type Flow struct {
	Name string
	Spec *spec.Spec
}

// New wraps s into a flow. The flow takes its name from the spec;
// unnamed specs get a generated one, so every flow is addressable.
func New(s *spec.Spec) *Flow {
	name := s.Name
	if name == "" {
		name = fmt.Sprintf("flow-%s", uuid.Must(uuid.NewV4()).String()[:8])
	}
	return &Flow{Name: name, Spec: s}
}

// Named wraps s into a flow under an explicit name.
func Named(name string, s *spec.Spec) *Flow {
	return &Flow{Name: name, Spec: s}
}

package flow

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ivanmladek/cloud-kepler/spec"
)

func TestNewTakesSpecName(t *testing.T) {
	f := New(spec.Streaming().Named("bls-pulse-q1"))
	assert.Equal(t, "bls-pulse-q1", f.Name)
}

func TestNewGeneratesName(t *testing.T) {
	a := New(spec.Streaming())
	b := New(spec.Streaming())

	assert.NotEmpty(t, a.Name)
	assert.NotEqual(t, a.Name, b.Name)
}

func TestNamed(t *testing.T) {
	s := spec.Streaming().Named("ignored")
	f := Named("explicit", s)
	assert.Equal(t, "explicit", f.Name)
	assert.Same(t, s, f.Spec)
}

// Package mapreduce builds streaming job specifications and hands
// them to a flow connector for scheduling.
package mapreduce

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/ivanmladek/cloud-kepler/flow"
	"github.com/ivanmladek/cloud-kepler/spec"
	"github.com/ivanmladek/cloud-kepler/tap"
)

type Client interface {
	// BuildAndSubmit assembles a streaming job from the given taps,
	// interpreter and job options, wraps it in a named flow and
	// submits it through the connector. It returns the engine's
	// handle; it never waits for the job.
	BuildAndSubmit(ctx context.Context, input, output tap.Tap, interpreter string, opts ...JobOption) (flow.Handle, error)

	// Submit hands an already assembled spec to the connector.
	Submit(ctx context.Context, s *spec.Spec) (flow.Handle, error)
}

func New(conn flow.Connector, options ...Option) Client {
	mr := &client{
		conn: conn,
		l:    zap.NewNop(),
	}

	for _, option := range options {
		switch o := option.(type) {
		case *loggerOption:
			mr.l = o.l
		default:
			panic(fmt.Sprintf("received unsupported option of type %T", o))
		}
	}

	return mr
}

type client struct {
	conn flow.Connector
	l    *zap.Logger
}

type Option interface {
	isClientOption()
}

type loggerOption struct {
	l *zap.Logger
}

func (*loggerOption) isClientOption() {}

func WithLogger(l *zap.Logger) Option {
	return &loggerOption{l}
}

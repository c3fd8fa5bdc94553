package mapreduce

import (
	"context"

	"go.uber.org/zap"

	"github.com/ivanmladek/cloud-kepler/flow"
	"github.com/ivanmladek/cloud-kepler/spec"
	"github.com/ivanmladek/cloud-kepler/tap"
)

func (mr *client) BuildAndSubmit(ctx context.Context, input, output tap.Tap, interpreter string, opts ...JobOption) (flow.Handle, error) {
	s, err := newPrepare(interpreter, opts).build(input, output)
	if err != nil {
		return nil, err
	}

	return mr.Submit(ctx, s)
}

func (mr *client) Submit(ctx context.Context, s *spec.Spec) (flow.Handle, error) {
	f := flow.New(s.Clone())

	mr.l.Debug("submitting flow",
		zap.String("flow", f.Name),
		zap.Strings("args", f.Spec.Args()))

	// Single atomic hand-off; engine failures propagate untouched.
	return mr.conn.Connect(ctx, f)
}

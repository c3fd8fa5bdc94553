package mapreduce

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivanmladek/cloud-kepler/flow"
	"github.com/ivanmladek/cloud-kepler/tap"
)

type fakeHandle struct {
	id flow.JobID
}

func (h *fakeHandle) ID() flow.JobID { return h.id }

func (h *fakeHandle) Wait(ctx context.Context) error { return nil }

type fakeConnector struct {
	flows []*flow.Flow
	err   error
}

func (c *fakeConnector) Connect(ctx context.Context, flows ...*flow.Flow) (flow.Handle, error) {
	if c.err != nil {
		return nil, c.err
	}
	c.flows = append(c.flows, flows...)
	return &fakeHandle{id: "job-1"}, nil
}

func TestBuildAndSubmitMapOnly(t *testing.T) {
	conn := &fakeConnector{}
	mr := New(conn)

	h, err := mr.BuildAndSubmit(context.Background(),
		tap.NewHfs("/data/in"), tap.NewHfs("/data/out"), "python3",
		WithMapper("map.py", "--k 5"),
	)
	require.NoError(t, err)
	assert.Equal(t, flow.JobID("job-1"), h.ID())

	require.Len(t, conn.flows, 1)
	assert.Equal(t, []string{
		"-input", "/data/in",
		"-output", "/data/out",
		"-mapper", "python3 map.py --k 5",
	}, conn.flows[0].Spec.Args())
}

func TestBuildAndSubmitWithReducer(t *testing.T) {
	conn := &fakeConnector{}
	mr := New(conn)

	_, err := mr.BuildAndSubmit(context.Background(),
		tap.NewHfs("/data/in"), tap.NewHfs("/data/out"), "python3",
		WithMapper("map.py", "--k 5"),
		WithReducer("red.py", ""),
	)
	require.NoError(t, err)

	require.Len(t, conn.flows, 1)
	assert.Equal(t, []string{
		"-input", "/data/in",
		"-output", "/data/out",
		"-mapper", "python3 map.py --k 5",
		"-reducer", "python3 red.py ",
	}, conn.flows[0].Spec.Args())
}

func TestBuildAndSubmitArchiveAnchor(t *testing.T) {
	conn := &fakeConnector{}
	mr := New(conn)

	_, err := mr.BuildAndSubmit(context.Background(),
		tap.NewHfs("/data/in"), tap.NewHfs("/data/out"), "python3",
		WithArchive("hdfs://x/y.jar#bundle"),
		WithMapper("map.py", ""),
		WithReducer("red.py", "-q"),
		WithJobName("bls-pulse"),
	)
	require.NoError(t, err)

	require.Len(t, conn.flows, 1)
	f := conn.flows[0]
	assert.Equal(t, "bls-pulse", f.Name)
	assert.Equal(t, "python3 bundle/map.py ", string(f.Spec.Mapper))
	assert.Equal(t, "python3 bundle/red.py -q", string(f.Spec.Reducer))
}

func TestBuildAndSubmitUnresolvableTap(t *testing.T) {
	conn := &fakeConnector{}
	mr := New(conn)

	_, err := mr.BuildAndSubmit(context.Background(),
		tap.Hfs{}, tap.NewHfs("/data/out"), "python3",
		WithMapper("map.py", ""),
	)
	require.Error(t, err)
	assert.Empty(t, conn.flows)
}

func TestBuildAndSubmitEmptyInterpreter(t *testing.T) {
	mr := New(&fakeConnector{})

	_, err := mr.BuildAndSubmit(context.Background(),
		tap.NewHfs("/data/in"), tap.NewHfs("/data/out"), "",
		WithMapper("map.py", ""),
	)
	require.Error(t, err)
}

func TestBuildAndSubmitMissingMapper(t *testing.T) {
	mr := New(&fakeConnector{})

	_, err := mr.BuildAndSubmit(context.Background(),
		tap.NewHfs("/data/in"), tap.NewHfs("/data/out"), "python3")
	require.Error(t, err)
}

func TestSubmitPropagatesConnectorError(t *testing.T) {
	conn := &fakeConnector{err: assert.AnError}
	mr := New(conn)

	_, err := mr.BuildAndSubmit(context.Background(),
		tap.NewHfs("/data/in"), tap.NewHfs("/data/out"), "python3",
		WithMapper("map.py", ""),
	)
	require.ErrorIs(t, err, assert.AnError)
}

func TestSubmitClonesSpec(t *testing.T) {
	conn := &fakeConnector{}
	mr := New(conn)

	s, err := newPrepare("python3", []JobOption{WithMapper("map.py", "")}).
		build(tap.NewHfs("/in"), tap.NewHfs("/out"))
	require.NoError(t, err)

	_, err = mr.Submit(context.Background(), s)
	require.NoError(t, err)

	s.Output("/mutated")
	assert.Equal(t, "/out", conn.flows[0].Spec.OutputPath)
}

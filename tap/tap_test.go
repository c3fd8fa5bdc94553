package tap

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHfsResolve(t *testing.T) {
	h := NewHfs("/user/kepler/lightcurves")

	src, err := h.Source()
	require.NoError(t, err)
	require.Equal(t, "/user/kepler/lightcurves", src)

	sink, err := h.Sink()
	require.NoError(t, err)
	require.Equal(t, "/user/kepler/lightcurves", sink)
}

func TestHfsEmptyPath(t *testing.T) {
	var h Hfs

	_, err := h.Source()
	require.Error(t, err)

	_, err = h.Sink()
	require.Error(t, err)
}

func TestHfsChild(t *testing.T) {
	h := NewHfs("/data/")

	require.Equal(t, "/data/q1", h.Child("q1").String())
	require.Equal(t, "/data/", h.String())
}

func TestHfsQualified(t *testing.T) {
	require.Equal(t, "hdfs:///data/in", NewHfs("/data/in").Qualified())
	require.Equal(t, "hdfs://nn:8020/data", NewHfs("hdfs://nn:8020/data").Qualified())
}

func TestLfsResolve(t *testing.T) {
	l := NewLfs("out/results")

	sink, err := l.Sink()
	require.NoError(t, err)
	require.True(t, filepath.IsAbs(sink))

	_, err = NewLfs("").Source()
	require.Error(t, err)
}

package konect

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bdisjoint/djmatch/djgraph"
)

const sampleFile = `% sample network
% from to weight
1 2 5
2 3 7
1 3 2

2 3 9
1 2 0

3 1 4
`

func TestReadParsesSnapshotAndDeltaBatches(t *testing.T) {
	g, w, stream, err := Read(strings.NewReader(sampleFile))
	require.NoError(t, err)

	require.Equal(t, 3, g.Size())
	require.Equal(t, 3, g.NumArcs())

	arc12 := g.FindArc(0, 1)
	require.NotEqual(t, djgraph.NoArc, arc12)
	require.Equal(t, djgraph.EdgeWeight(5), w.Get(arc12))

	require.Equal(t, 2, stream.Remaining())

	batch1, ok := stream.Next()
	require.True(t, ok)
	require.Len(t, batch1, 2)

	batch2, ok := stream.Next()
	require.True(t, ok)
	require.Len(t, batch2, 1)

	_, ok = stream.Next()
	require.False(t, ok)
}

func TestApplyReweightsAndDeletes(t *testing.T) {
	g, w, stream, err := Read(strings.NewReader(sampleFile))
	require.NoError(t, err)

	batch, ok := stream.Next()
	require.True(t, ok)
	require.NoError(t, Apply(g, w, batch))

	arc23 := g.FindArc(1, 2)
	require.Equal(t, djgraph.EdgeWeight(9), w.Get(arc23))

	arc12 := g.FindArc(0, 1)
	require.Equal(t, djgraph.EdgeWeight(0), w.Get(arc12))
}

func TestReadRejectsMalformedRow(t *testing.T) {
	_, _, _, err := Read(strings.NewReader("1\n"))
	require.Error(t, err)
}

func TestReadRejectsEmptyInput(t *testing.T) {
	_, _, _, err := Read(strings.NewReader("% just a comment\n"))
	require.Error(t, err)
}

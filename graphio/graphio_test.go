package graphio_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gonx/core"
	"github.com/katalvlaran/gonx/graphio"
	"github.com/katalvlaran/gonx/query"
)

func TestRead_KarateClub(t *testing.T) {
	g, err := graphio.Read(filepath.Join("testdata", "karate.csv"))
	require.NoError(t, err)
	require.Equal(t, 34, g.NodeCount())
	require.Equal(t, 78, g.EdgeCount())

	connected, err := query.IsConnected(g)
	require.NoError(t, err)
	require.True(t, connected)
}

func TestReadFrom_IsolatedNodeAndComments(t *testing.T) {
	in := strings.NewReader("# header\n0,1\n1,2\n\n3\n")
	g, err := graphio.ReadFrom(in)
	require.NoError(t, err)
	require.Equal(t, 4, g.NodeCount())
	require.Equal(t, 2, g.EdgeCount())
	require.True(t, g.HasNode(3))
	deg, err := g.Degree(3)
	require.NoError(t, err)
	require.Zero(t, deg)
}

func TestReadFrom_Weighted(t *testing.T) {
	in := strings.NewReader("0,1,3.14159\n1,2,2.71828\n42\n")
	g, err := graphio.ReadFrom(in, core.WithWeighted())
	require.NoError(t, err)
	require.Equal(t, 4, g.NodeCount())
	w, err := g.EdgeWeight(0, 1)
	require.NoError(t, err)
	require.InDelta(t, 3.14159, w, 1e-9)
}

func TestReadFrom_LineShapeMustMatchVariant(t *testing.T) {
	_, err := graphio.ReadFrom(strings.NewReader("0,1,2.0\n"))
	require.ErrorIs(t, err, graphio.ErrBadFormat, "weight on an unweighted graph")

	_, err = graphio.ReadFrom(strings.NewReader("0,1\n"), core.WithWeighted())
	require.ErrorIs(t, err, graphio.ErrBadFormat, "missing weight on a weighted graph")

	_, err = graphio.ReadFrom(strings.NewReader("0,1,2.0,9\n"), core.WithWeighted())
	require.ErrorIs(t, err, graphio.ErrBadFormat, "too many fields")

	_, err = graphio.ReadFrom(strings.NewReader("zero,1\n"))
	require.ErrorIs(t, err, graphio.ErrBadFormat, "non-numeric node")

	_, err = graphio.ReadFrom(strings.NewReader("2147483648,1\n"))
	require.ErrorIs(t, err, graphio.ErrBadFormat, "node ID out of range")
}

func TestReadFrom_EmptyInput(t *testing.T) {
	_, err := graphio.ReadFrom(strings.NewReader("# nothing here\n"))
	require.ErrorIs(t, err, graphio.ErrEmptyGraph)
}

func TestReadFrom_SelfLoopSkippedByDefault(t *testing.T) {
	// A self-loop line on the default variant is silently skipped by
	// AddEdge, so the file still loads.
	g, err := graphio.ReadFrom(strings.NewReader("1,1\n2,3\n"))
	require.NoError(t, err)
	require.Equal(t, 2, g.NodeCount())
	require.Equal(t, 1, g.EdgeCount())
}

func TestWriteRead_RoundTrip(t *testing.T) {
	g, err := core.New(core.WithWeighted())
	require.NoError(t, err)
	_, err = g.AddEdgeWeight(0, 1, 0.5)
	require.NoError(t, err)
	_, err = g.AddEdgeWeight(1, 2, 1.25)
	require.NoError(t, err)
	_, err = g.AddNode(9)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "graph.csv")
	require.NoError(t, graphio.Write(g, path))

	back, err := graphio.Read(path, core.WithWeighted())
	require.NoError(t, err)
	require.True(t, core.Equal(g, back))
}

func TestWriteRead_RoundTripDirected(t *testing.T) {
	g, err := core.New(core.WithDirected(), core.WithSelfLoops())
	require.NoError(t, err)
	for _, e := range [][2]core.NodeID{{0, 1}, {1, 0}, {1, 1}, {2, 0}} {
		_, err = g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}

	path := filepath.Join(t.TempDir(), "digraph.csv")
	require.NoError(t, graphio.Write(g, path))

	back, err := graphio.Read(path, core.WithDirected(), core.WithSelfLoops())
	require.NoError(t, err)
	require.True(t, core.Equal(g, back))
}

func TestWrite_RefusesExistingFile(t *testing.T) {
	g, err := core.New()
	require.NoError(t, err)
	_, err = g.AddEdge(0, 1)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "graph.csv")
	require.NoError(t, os.WriteFile(path, []byte("0,1\n"), 0o644))
	require.ErrorIs(t, graphio.Write(g, path), graphio.ErrFileExists)
}

func TestWriteRead_Compressed(t *testing.T) {
	g, err := core.New()
	require.NoError(t, err)
	for _, e := range [][2]core.NodeID{{0, 1}, {1, 2}, {2, 3}} {
		_, err = g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}

	for _, ext := range []string{".gz", ".zst"} {
		path := filepath.Join(t.TempDir(), "graph.csv"+ext)
		require.NoError(t, graphio.Write(g, path))

		back, err := graphio.Read(path)
		require.NoError(t, err, ext)
		require.True(t, core.Equal(g, back), ext)
	}
}

func TestScan_KarateClub(t *testing.T) {
	sum, err := graphio.Scan(filepath.Join("testdata", "karate.csv"))
	require.NoError(t, err)
	require.Equal(t, graphio.Summary{Nodes: 34, Edges: 78}, sum)
}

func TestScanFrom_WeightedAndIsolated(t *testing.T) {
	sum, err := graphio.ScanFrom(strings.NewReader("0,1,0.5\n1,2,1.5\n7\n"))
	require.NoError(t, err)
	require.Equal(t, graphio.Summary{Nodes: 4, Edges: 2, Weighted: true}, sum)
}

func TestScanFrom_Empty(t *testing.T) {
	_, err := graphio.ScanFrom(strings.NewReader(""))
	require.ErrorIs(t, err, graphio.ErrEmptyGraph)
}

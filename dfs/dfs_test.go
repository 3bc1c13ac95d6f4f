package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gonx/alloc"
	"github.com/katalvlaran/gonx/core"
	"github.com/katalvlaran/gonx/dfs"
)

func undirected(t *testing.T, edges [][2]core.NodeID) *core.Graph {
	t.Helper()
	g, err := core.New()
	require.NoError(t, err)
	for _, e := range edges {
		_, err = g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}
	return g
}

func requireTraversalTree(t *testing.T, g, tree *core.Graph, start core.NodeID) {
	t.Helper()
	require.Equal(t, g.Directed(), tree.Directed())
	require.False(t, tree.Weighted())
	require.Equal(t, tree.NodeCount()-1, tree.EdgeCount())
	require.True(t, tree.HasNode(start))

	nodes := tree.Nodes()
	for {
		v, ok := nodes.Next()
		if !ok {
			break
		}
		it, err := tree.Neighbors(v)
		require.NoError(t, err)
		for {
			w, _, ok := it.Next()
			if !ok {
				break
			}
			require.True(t, g.HasEdge(v, w), "tree edge (%d,%d) not in source", v, w)
		}
	}
}

func TestTree_ErrGraphNil(t *testing.T) {
	_, err := dfs.Tree(nil, 0)
	require.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestTree_StartNotFound(t *testing.T) {
	g := undirected(t, [][2]core.NodeID{{1, 2}})
	_, err := dfs.Tree(g, 42)
	require.ErrorIs(t, err, dfs.ErrStartNodeNotFound)
}

func TestTree_IsolatedStart(t *testing.T) {
	g := undirected(t, [][2]core.NodeID{{1, 2}})
	_, err := g.AddNode(9)
	require.NoError(t, err)
	_, err = dfs.Tree(g, 9)
	require.ErrorIs(t, err, dfs.ErrNoNeighbors)
}

func TestTree_SelfLoopOnlyStart(t *testing.T) {
	g, err := core.New(core.WithSelfLoops())
	require.NoError(t, err)
	_, err = g.AddEdge(5, 5)
	require.NoError(t, err)
	_, err = dfs.Tree(g, 5)
	require.ErrorIs(t, err, dfs.ErrNoNeighbors)
}

func TestTree_PathGraph(t *testing.T) {
	g := undirected(t, [][2]core.NodeID{{0, 1}, {1, 2}, {2, 3}})
	tree, err := dfs.Tree(g, 0)
	require.NoError(t, err)
	require.Equal(t, 4, tree.NodeCount())
	require.Equal(t, 3, tree.EdgeCount())
	requireTraversalTree(t, g, tree, 0)
}

// Diamond: both branches reach node 3, but it must be adopted by
// exactly one parent.
func TestTree_DiamondHasSingleParent(t *testing.T) {
	g := undirected(t, [][2]core.NodeID{{0, 1}, {0, 2}, {1, 3}, {2, 3}})
	tree, err := dfs.Tree(g, 0)
	require.NoError(t, err)
	require.Equal(t, 4, tree.NodeCount())
	require.Equal(t, 3, tree.EdgeCount())
	requireTraversalTree(t, g, tree, 0)

	parents := 0
	for _, p := range []core.NodeID{1, 2} {
		if tree.HasEdge(p, 3) {
			parents++
		}
	}
	require.Equal(t, 1, parents)
}

func TestTree_SkipsUnreachableComponent(t *testing.T) {
	g := undirected(t, [][2]core.NodeID{{0, 1}, {10, 11}})
	tree, err := dfs.Tree(g, 0)
	require.NoError(t, err)
	require.Equal(t, 2, tree.NodeCount())
	require.False(t, tree.HasNode(10))
}

func TestTree_DirectedFollowsOutEdgesOnly(t *testing.T) {
	g, err := core.New(core.WithDirected())
	require.NoError(t, err)
	_, err = g.AddEdge(0, 1)
	require.NoError(t, err)
	_, err = g.AddEdge(2, 0)
	require.NoError(t, err)

	tree, err := dfs.Tree(g, 0)
	require.NoError(t, err)
	require.True(t, tree.HasEdge(0, 1))
	require.False(t, tree.HasNode(2))
	requireTraversalTree(t, g, tree, 0)
}

func TestTree_VisitsEachNodeOnce(t *testing.T) {
	g := undirected(t, [][2]core.NodeID{{0, 1}, {0, 2}, {1, 2}, {2, 3}})
	visits := make(map[core.NodeID]int)
	_, err := dfs.Tree(g, 0, dfs.WithOnVisit(func(id core.NodeID) error {
		visits[id]++
		return nil
	}))
	require.NoError(t, err)
	require.Equal(t, map[core.NodeID]int{0: 1, 1: 1, 2: 1, 3: 1}, visits)
}

func TestTree_VisitErrorAborts(t *testing.T) {
	g := undirected(t, [][2]core.NodeID{{0, 1}})
	boom := errors.New("boom")
	_, err := dfs.Tree(g, 0, dfs.WithOnVisit(func(core.NodeID) error { return boom }))
	require.ErrorIs(t, err, boom)
}

func TestTree_ContextCancellation(t *testing.T) {
	g := undirected(t, [][2]core.NodeID{{0, 1}})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dfs.Tree(g, 0, dfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestTree_AllocFailureAtEveryReserve(t *testing.T) {
	g := undirected(t, [][2]core.NodeID{{0, 1}, {0, 2}, {1, 3}, {2, 4}})
	budget := alloc.NewBudget(-1)
	for limit := 0; ; limit++ {
		require.Less(t, limit, 200, "traversal never succeeded")
		budget.SetLimit(limit)
		tree, err := dfs.Tree(g, 0, dfs.WithAllocator(budget))
		if err == nil {
			require.Equal(t, 5, tree.NodeCount())
			break
		}
		require.ErrorIs(t, err, alloc.ErrNoMemory)
	}
}

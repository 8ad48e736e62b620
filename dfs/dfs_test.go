package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cavern/core"
	"github.com/katalvlaran/cavern/dfs"
)

// buildChain creates a directed chain graph of length n: 0→1→2→…→n-1
func buildChain(n int) *core.Graph[int] {
	g := core.NewGraph[int](core.WithDirected(true))
	for i := 0; i < n-1; i++ {
		_, _ = g.AddEdge(i, i+1, 0)
	}

	return g
}

func TestDFS_NilGraph(t *testing.T) {
	res, err := dfs.DFS[int](nil, 0)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestDFS_StartNotFound(t *testing.T) {
	g := core.NewGraph[int](core.WithDirected(true))
	res, err := dfs.DFS(g, 7)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
}

func TestDFS_Chain_PostOrder(t *testing.T) {
	g := buildChain(5)
	res, err := dfs.DFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 3, 2, 1, 0}, res.Order)
	assert.Equal(t, 4, res.Depth[4])
	assert.Equal(t, 3, res.Parent[4])
	_, hasParent := res.Parent[0]
	assert.False(t, hasParent)
}

func TestDFS_MaxDepth(t *testing.T) {
	g := buildChain(10)
	res, err := dfs.DFS(g, 0, dfs.WithMaxDepth[int](2))
	require.NoError(t, err)
	assert.Len(t, res.Order, 3)
	assert.False(t, res.Visited[3])
}

func TestDFS_Filter(t *testing.T) {
	g := buildChain(4)
	res, err := dfs.DFS(g, 0, dfs.WithFilterNeighbor(func(id int) bool { return id != 2 }))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0}, res.Order)
	assert.Equal(t, 1, res.SkippedNeighbors)
}

func TestDFS_HookErrorAborts(t *testing.T) {
	g := buildChain(4)
	boom := errors.New("boom")
	_, err := dfs.DFS(g, 0, dfs.WithOnVisit(func(id int) error {
		if id == 2 {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)
}

func TestDFS_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dfs.DFS(buildChain(3), 0, dfs.WithContext[int](ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDFS_FullTraversal(t *testing.T) {
	g := core.NewGraph[int]()
	_, _ = g.AddEdge(1, 2, 0)
	_, _ = g.AddEdge(3, 4, 0)
	g.AddVertex(5)
	res, err := dfs.DFS(g, 0, dfs.WithFullTraversal[int]())
	require.NoError(t, err)
	assert.Len(t, res.Order, 5)
}

func TestSCC_Directed(t *testing.T) {
	// 0→1→2→0 is one SCC; 2→3 leaves 3 alone; 4↔5 is another.
	g := core.NewGraph[int](core.WithDirected(true))
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 3}, {4, 5}, {5, 4}} {
		_, err := g.AddEdge(e[0], e[1], 0)
		require.NoError(t, err)
	}
	comps, err := dfs.StronglyConnectedComponents(g)
	require.NoError(t, err)
	require.Len(t, comps, 3)

	sizes := map[int]int{}
	for _, c := range comps {
		sizes[len(c)]++
	}
	assert.Equal(t, map[int]int{3: 1, 1: 1, 2: 1}, sizes)
}

func TestSCC_UndirectedIsComponents(t *testing.T) {
	g := core.NewGraph[uint32](core.WithWeighted())
	for i := uint32(0); i < 6; i++ {
		g.AddVertex(i)
	}
	n, err := dfs.CountComponents(g)
	require.NoError(t, err)
	assert.Equal(t, 6, n)

	_, _ = g.AddEdge(0, 1, 4)
	_, _ = g.AddEdge(1, 2, 4)
	_, _ = g.AddEdge(3, 4, 4)
	n, _ = dfs.CountComponents(g)
	assert.Equal(t, 3, n)

	_, _ = g.AddEdge(2, 3, 1)
	_, _ = g.AddEdge(5, 0, 1)
	n, _ = dfs.CountComponents(g)
	assert.Equal(t, 1, n)
}

func TestSCC_Empty(t *testing.T) {
	n, err := dfs.CountComponents(core.NewGraph[int]())
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = dfs.CountComponents[int](nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

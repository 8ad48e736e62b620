package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cavern/core"
)

// buildTriangle returns a weighted undirected triangle a-b-c.
func buildTriangle(t *testing.T) *core.Graph[string] {
	t.Helper()
	g := core.NewGraph[string](core.WithWeighted())
	_, err := g.AddEdge("a", "b", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("b", "c", 2)
	require.NoError(t, err)
	_, err = g.AddEdge("c", "a", 3)
	require.NoError(t, err)

	return g
}

func TestAddVertex_Idempotent(t *testing.T) {
	g := core.NewGraph[int]()
	g.AddVertex(1)
	g.AddVertex(1)
	assert.Equal(t, 1, g.VertexCount())
	assert.True(t, g.HasVertex(1))
	assert.False(t, g.HasVertex(2))
}

func TestAddEdge_Validation(t *testing.T) {
	g := core.NewGraph[int]()
	_, err := g.AddEdge(1, 2, 5)
	assert.ErrorIs(t, err, core.ErrBadWeight)

	_, err = g.AddEdge(1, 1, 0)
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)

	_, err = g.AddEdge(1, 2, 0)
	require.NoError(t, err)
	_, err = g.AddEdge(2, 1, 0)
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed, "undirected mirror counts as duplicate")

	looped := core.NewGraph[int](core.WithLoops())
	_, err = looped.AddEdge(3, 3, 0)
	assert.NoError(t, err)
}

func TestUndirected_Mirrors(t *testing.T) {
	g := buildTriangle(t)
	assert.True(t, g.HasEdge("a", "b"))
	assert.True(t, g.HasEdge("b", "a"))
	assert.Equal(t, 3, g.EdgeCount())

	nb, err := g.Neighbors("a")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c"}, nb)

	_, err = g.Neighbors("zz")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestDirected_OneWay(t *testing.T) {
	g := core.NewGraph[int](core.WithDirected(true))
	_, err := g.AddEdge(1, 2, 0)
	require.NoError(t, err)
	assert.True(t, g.HasEdge(1, 2))
	assert.False(t, g.HasEdge(2, 1))

	_, err = g.AddEdge(2, 1, 0)
	assert.NoError(t, err)
	assert.Equal(t, 2, g.EdgeCount())
	assert.True(t, g.Directed())
}

func TestEdges_InsertionOrder(t *testing.T) {
	g := buildTriangle(t)
	edges := g.Edges()
	require.Len(t, edges, 3)
	assert.Equal(t, uint64(1), edges[0].ID)
	assert.Equal(t, int64(2), edges[1].Weight)
	assert.Equal(t, "c", edges[2].From)
}

func TestRemoveEdge(t *testing.T) {
	g := buildTriangle(t)
	require.NoError(t, g.RemoveEdge("b", "a"))
	assert.False(t, g.HasEdge("a", "b"))
	assert.Equal(t, 2, g.EdgeCount())
	assert.ErrorIs(t, g.RemoveEdge("a", "b"), core.ErrEdgeNotFound)
}

func TestClone_Independent(t *testing.T) {
	g := buildTriangle(t)
	c := g.Clone()
	require.NoError(t, c.RemoveEdge("a", "b"))
	assert.True(t, g.HasEdge("a", "b"))
	assert.Equal(t, g.Vertices(), c.Vertices())

	id, err := c.AddEdge("a", "d", 4)
	require.NoError(t, err)
	assert.Equal(t, uint64(4), id, "clone continues the ID sequence")
}

func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph[int]()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _ = g.AddEdge(i, i+1000, 0)
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 50, g.EdgeCount())
	assert.Equal(t, 100, g.VertexCount())
}

func TestEdgeBetween(t *testing.T) {
	g := buildTriangle(t)
	e, ok := g.EdgeBetween("c", "b")
	require.True(t, ok)
	assert.Equal(t, int64(2), e.Weight)
	assert.Equal(t, "b", e.From, "stored orientation is preserved")

	_, ok = g.EdgeBetween("a", "zz")
	assert.False(t, ok)
}

// Package prim_kruskal provides Kruskal's algorithm as a spanning tree and as
// a spanning forest over disconnected graphs.
package prim_kruskal

import (
	"cmp"
	"sort"

	"github.com/katalvlaran/cavern/core"
)

// dsu is a disjoint-set over K with path compression and union by rank.
type dsu[K cmp.Ordered] struct {
	parent map[K]K
	rank   map[K]int
}

func newDSU[K cmp.Ordered](vertices []K) *dsu[K] {
	d := &dsu[K]{
		parent: make(map[K]K, len(vertices)),
		rank:   make(map[K]int, len(vertices)),
	}
	for _, v := range vertices {
		d.parent[v] = v
	}

	return d
}

// find walks to the root, halving the path as it goes.
func (d *dsu[K]) find(u K) K {
	for d.parent[u] != u {
		d.parent[u] = d.parent[d.parent[u]]
		u = d.parent[u]
	}

	return u
}

// union merges the sets of u and v and reports whether they were disjoint.
func (d *dsu[K]) union(u, v K) bool {
	ru, rv := d.find(u), d.find(v)
	if ru == rv {
		return false
	}
	switch {
	case d.rank[ru] < d.rank[rv]:
		d.parent[ru] = rv
	case d.rank[ru] > d.rank[rv]:
		d.parent[rv] = ru
	default:
		d.parent[rv] = ru
		d.rank[ru]++
	}

	return true
}

// SpanningForest returns a minimum spanning forest: one minimum spanning tree
// per connected component. It never fails on disconnected input.
//
// Steps:
//  1. Validate: graph != nil, graph.Weighted(), !graph.Directed().
//  2. Collect edges from graph.Edges() (insertion order), skipping self-loops.
//  3. Stable-sort by ascending Weight so equal weights keep insertion order.
//  4. Union-find over sorted edges; keep every edge joining two sets.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func SpanningForest[K cmp.Ordered](graph *core.Graph[K]) ([]core.Edge[K], int64, error) {
	// 1. Validate.
	if err := validate(graph); err != nil {
		return nil, 0, err
	}

	// 2. Collect non-loop edges.
	all := graph.Edges()
	edges := make([]core.Edge[K], 0, len(all))
	for _, e := range all {
		if e.From == e.To {
			continue
		}
		edges = append(edges, e)
	}

	// 3. Deterministic weight order.
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	// 4. Union-find.
	vertices := graph.Vertices()
	sets := newDSU(vertices)
	forest := make([]core.Edge[K], 0, max(len(vertices)-1, 0))
	var total int64
	for _, e := range edges {
		if sets.union(e.From, e.To) {
			forest = append(forest, e)
			total += e.Weight
			if len(forest) == len(vertices)-1 {
				break
			}
		}
	}

	return forest, total, nil
}

// Kruskal computes the Minimum Spanning Tree of an undirected, weighted graph.
//
// Error Conditions:
//   - ErrInvalidGraph : if graph is nil, directed or unweighted.
//   - ErrDisconnected : if |V| == 0 or the forest has more than one tree.
//
// Complexity: O(E log E + α(V)·E) ≈ O(E log V). Memory: O(E + V).
func Kruskal[K cmp.Ordered](graph *core.Graph[K]) ([]core.Edge[K], int64, error) {
	forest, total, err := SpanningForest(graph)
	if err != nil {
		return nil, 0, err
	}
	n := graph.VertexCount()
	if n == 0 || len(forest) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return forest, total, nil
}

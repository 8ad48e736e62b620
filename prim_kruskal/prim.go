// Package prim_kruskal provides an implementation of Prim's Minimum Spanning Tree (MST) algorithm.
package prim_kruskal

import (
	"cmp"
	"container/heap"

	"github.com/katalvlaran/cavern/core"
)

// Prim computes the MST of an undirected, weighted graph by growing outwards
// from root using a min-heap.
//
// Error Conditions:
//   - ErrInvalidGraph       : if graph is nil, directed or unweighted.
//   - ErrDisconnected       : if |V| == 0 or some vertex is unreachable from root.
//   - core.ErrVertexNotFound: if root does not exist.
//
// Steps:
//  1. Validate graph and root.
//  2. Mark root visited and push its incident edges.
//  3. Pop the lightest edge; skip if its far end is visited, else take it and
//     push the far end's edges.
//  4. Fewer than |V|-1 edges at the end means the graph is disconnected.
//
// Complexity: O(E log V) time, O(V + E) memory.
func Prim[K cmp.Ordered](graph *core.Graph[K], root K) ([]core.Edge[K], int64, error) {
	// 1. Validate.
	if err := validate(graph); err != nil {
		return nil, 0, err
	}
	n := graph.VertexCount()
	if n == 0 {
		return nil, 0, ErrDisconnected
	}
	if !graph.HasVertex(root) {
		return nil, 0, core.ErrVertexNotFound
	}

	visited := make(map[K]bool, n)
	mst := make([]core.Edge[K], 0, n-1)
	var total int64
	pq := &edgePQ[K]{}
	heap.Init(pq)

	// push enqueues every edge from u towards an unvisited vertex, oriented u→v.
	push := func(u K) error {
		nbs, err := graph.Neighbors(u)
		if err != nil {
			return err
		}
		for _, v := range nbs {
			if visited[v] {
				continue
			}
			e, _ := graph.EdgeBetween(u, v)
			heap.Push(pq, candidate[K]{edge: e, to: v})
		}

		return nil
	}

	// 2. Seed from root.
	visited[root] = true
	if err := push(root); err != nil {
		return nil, 0, err
	}

	// 3. Grow.
	for pq.Len() > 0 && len(mst) < n-1 {
		c := heap.Pop(pq).(candidate[K])
		if visited[c.to] {
			continue
		}
		visited[c.to] = true
		mst = append(mst, c.edge)
		total += c.edge.Weight
		if err := push(c.to); err != nil {
			return nil, 0, err
		}
	}

	// 4. Coverage check.
	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, total, nil
}

// candidate is a heap entry: the edge plus which endpoint it would add.
type candidate[K cmp.Ordered] struct {
	edge core.Edge[K]
	to   K
}

// edgePQ implements heap.Interface for a min-heap of candidates by Weight,
// ties broken by edge ID.
type edgePQ[K cmp.Ordered] []candidate[K]

func (pq edgePQ[K]) Len() int { return len(pq) }

func (pq edgePQ[K]) Less(i, j int) bool {
	if pq[i].edge.Weight != pq[j].edge.Weight {
		return pq[i].edge.Weight < pq[j].edge.Weight
	}

	return pq[i].edge.ID < pq[j].edge.ID
}

func (pq edgePQ[K]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *edgePQ[K]) Push(x interface{}) { *pq = append(*pq, x.(candidate[K])) }

func (pq *edgePQ[K]) Pop() interface{} {
	old := *pq
	n := len(old)
	c := old[n-1]
	*pq = old[:n-1]

	return c
}

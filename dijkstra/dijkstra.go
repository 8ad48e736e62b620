// Package dijkstra implements Dijkstra's shortest-path algorithm over an
// implicit graph: nodes are produced on demand by a successor function and
// the search stops at the first node satisfying a goal predicate.
//
// Complexity:
//
//   - Time:  O((V + E) log V) over the explored part of the graph.
//   - Space: O(V + E) for distance/predecessor maps and the lazy heap.
//
// Notes on implementation choices:
//
//   - "Lazy" decrease-key: duplicates are pushed and stale entries skipped.
//   - Ties in distance pop in insertion order, so results are deterministic
//     whenever the successor function is.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"
)

// ShortestPath searches from start for the cheapest path to any node for
// which goal returns true.
//
// Returns:
//
//   - path: nodes from start to the reached goal, inclusive.
//   - cost: sum of step costs along path.
//   - err:  ErrNoPath, ErrNegativeWeight, or an input validation error.
//
// If start itself satisfies goal, the path is [start] with cost 0.
func ShortestPath[N comparable](
	start N,
	successors func(N) []Successor[N],
	goal func(N) bool,
	opts ...Option,
) ([]N, int64, error) {
	// 1) Validate inputs
	if successors == nil {
		return nil, 0, ErrNilSuccessors
	}
	if goal == nil {
		return nil, 0, ErrNilGoal
	}

	// 2) Build options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 3) Run
	r := &runner[N]{
		options:    cfg,
		successors: successors,
		goal:       goal,
		dist:       make(map[N]int64),
		prev:       make(map[N]N),
		visited:    make(map[N]bool),
	}
	r.init(start)
	reached, ok, err := r.process()
	if err != nil {
		return nil, 0, err
	}
	if !ok {
		return nil, 0, ErrNoPath
	}

	return r.path(start, reached), r.dist[reached], nil
}

// runner holds the mutable state for a single search.
type runner[N comparable] struct {
	options    Options
	successors func(N) []Successor[N]
	goal       func(N) bool
	dist       map[N]int64
	prev       map[N]N
	visited    map[N]bool
	pq         nodePQ[N]
	seq        uint64
}

// init seeds the heap with start at distance zero.
func (r *runner[N]) init(start N) {
	r.dist[start] = 0
	heap.Init(&r.pq)
	r.push(start, 0)
}

func (r *runner[N]) push(n N, d int64) {
	r.seq++
	heap.Push(&r.pq, &nodeItem[N]{id: n, dist: d, seq: r.seq})
}

// process pops nodes in distance order until a goal is finalized or the heap
// empties. It reports the goal node reached, if any.
func (r *runner[N]) process() (N, bool, error) {
	var zero N
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-distance item.
		item := heap.Pop(&r.pq).(*nodeItem[N])
		u := item.id

		// 2) Skip stale entries.
		if r.visited[u] {
			continue
		}

		// 3) Respect the distance cap.
		if item.dist > r.options.MaxDistance {
			break
		}

		// 4) Finalize u; stop if it is a goal.
		r.visited[u] = true
		if r.goal(u) {
			return u, true, nil
		}

		// 5) Relax outgoing edges.
		if err := r.relax(u); err != nil {
			return zero, false, err
		}
	}

	return zero, false, nil
}

// relax tries to improve the distance of every successor of u.
func (r *runner[N]) relax(u N) error {
	du := r.dist[u]
	for _, s := range r.successors(u) {
		if s.Cost >= r.options.InfEdgeThreshold {
			continue
		}
		if s.Cost < 0 {
			return fmt.Errorf("%w: %v→%v cost=%d", ErrNegativeWeight, u, s.Node, s.Cost)
		}
		if r.visited[s.Node] {
			continue
		}

		// Saturate instead of overflowing on very long, very expensive paths.
		nd := du + s.Cost
		if nd < du {
			nd = math.MaxInt64
		}
		if nd > r.options.MaxDistance {
			continue
		}
		if old, seen := r.dist[s.Node]; seen && nd >= old {
			continue
		}

		r.dist[s.Node] = nd
		r.prev[s.Node] = u
		r.push(s.Node, nd)
	}

	return nil
}

// path walks predecessors back from end and returns start..end.
func (r *runner[N]) path(start, end N) []N {
	out := []N{end}
	for cur := end; cur != start; {
		cur = r.prev[cur]
		out = append(out, cur)
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return out
}

// nodeItem is a heap entry: a node, its tentative distance and insertion
// sequence for tie-breaking.
type nodeItem[N comparable] struct {
	id   N
	dist int64
	seq  uint64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then seq.
type nodePQ[N comparable] []*nodeItem[N]

func (pq nodePQ[N]) Len() int { return len(pq) }

func (pq nodePQ[N]) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].seq < pq[j].seq
}

func (pq nodePQ[N]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ[N]) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem[N])) }

func (pq *nodePQ[N]) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

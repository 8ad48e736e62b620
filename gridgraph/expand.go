package gridgraph

import (
	"container/list"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/cavern/grid"
)

// Bridge finds a minimum-conversion path from any cell in src to any cell in
// dst. Stepping onto an open cell costs 0, onto a closed cell 1. Returns the
// cells of the path (inclusive of both ends) and the number of closed cells
// on it.
//
// Behavior:
//  1. Validate both sets are non-empty.
//  2. Multi-source 0–1 BFS from all src cells.
//  3. Stop when any dst cell is popped.
//  4. Reconstruct path via predecessors.
//
// Source cells need not be open and are not counted. Ring cells are never
// entered, so a path exists whenever src and dst lie in the interior.
//
// Complexity: O(W·H·d). Memory: O(W·H).
func (gg *GridGraph) Bridge(src, dst []grid.Point) ([]grid.Point, int, error) {
	if len(src) == 0 || len(dst) == 0 {
		return nil, 0, ErrEmptySet
	}
	target := mapset.New[grid.Point]()
	for _, p := range dst {
		target.Put(p)
	}

	n := gg.Dims.Len()
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	// 0–1 BFS: deque processes cost0 at front, cost1 at back
	dq := list.New()
	for _, p := range src {
		i := gg.Dims.Index(p)
		dist[i] = 0
		dq.PushFront(i)
	}

	found := -1
	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		up := gg.Dims.PointOf(u)
		if target.Has(up) {
			found = u
			break
		}
		for _, vp := range gg.Neighbors(up) {
			v := gg.Dims.Index(vp)
			step := 0
			if !gg.open(vp) {
				step = 1
			}
			nd := dist[u] + step
			if nd >= dist[v] {
				continue
			}
			dist[v] = nd
			prev[v] = u
			if step == 0 {
				dq.PushFront(v)
			} else {
				dq.PushBack(v)
			}
		}
	}

	if found < 0 {
		return nil, 0, ErrNoPath
	}
	var path []grid.Point
	for at := found; at >= 0; at = prev[at] {
		path = append(path, gg.Dims.PointOf(at))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, dist[found], nil
}

// ExpandRegion bridges two regions with the fewest closed-cell conversions.
func (gg *GridGraph) ExpandRegion(src, dst Region) ([]grid.Point, int, error) {
	return gg.Bridge(src.Interior, dst.Interior)
}

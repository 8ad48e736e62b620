package gridgraph

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/cavern/grid"
)

// RegionAt grows the region containing start by BFS over open cells.
// Closed neighbors met along the way form the region's border.
//
// Returns ErrClosedStart if start is not open.
// Time:   O(R·d), where R = region size, d = 4 or 8.
// Memory: O(R + B).
func (gg *GridGraph) RegionAt(start grid.Point) (Region, error) {
	if !gg.Open(start) {
		return Region{}, ErrClosedStart
	}

	return gg.grow(start, mapset.New[grid.Point]()), nil
}

// Regions finds every connected open region, scanning cells in column-major
// order so the first region always holds the first open cell.
//
// Time:   O(W·H·d).
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) Regions() []Region {
	seen := mapset.New[grid.Point]()
	var out []Region
	for p := range gg.Dims.Points() {
		if seen.Has(p) || !gg.Open(p) {
			continue
		}
		out = append(out, gg.grow(p, seen))
	}

	return out
}

// grow runs BFS from start, marking interior cells in seen.
func (gg *GridGraph) grow(start grid.Point, seen mapset.Set[grid.Point]) Region {
	in := mapset.New[grid.Point]()
	border := mapset.New[grid.Point]()

	queue := []grid.Point{start}
	seen.Put(start)
	in.Put(start)
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, v := range gg.Neighbors(u) {
			if !gg.open(v) {
				border.Put(v)
				continue
			}
			if seen.Has(v) {
				continue
			}
			seen.Put(v)
			in.Put(v)
			queue = append(queue, v)
		}
	}

	return newRegion(queue, in, border)
}

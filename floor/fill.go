package floor

import (
	"fmt"

	"github.com/katalvlaran/cavern/dijkstra"
	"github.com/katalvlaran/cavern/grid"
	"github.com/katalvlaran/cavern/noise"
	"github.com/katalvlaran/cavern/tile"
)

// RandomFill samples the noise field and scatters walls.
//
// Ring tiles become Wall; every interior tile becomes Wall when a draw from
// [0,100] lands at or below WallChance, else Empty.
//
// Complexity: O(W×H).
func (s *Blank) RandomFill() *RandomFilled {
	b := take(&s.b)

	b.noise = noise.Fill(b.dims, noise.NewBillow(b.params.Noise, b.rng))
	for p := range b.dims.Points() {
		if b.dims.InRing(p) {
			b.tiles.Set(p, tile.WallTile)
			continue
		}
		if b.rng.Intn(101) <= b.params.WallChance {
			b.tiles.Set(p, tile.WallTile)
		} else {
			b.tiles.Set(p, tile.EmptyTile)
		}
	}
	b.frame(100)

	return &RandomFilled{b: b}
}

// TraceOriginalPath picks an entrance and an exit, carves the cheapest noise
// path between them (two tiles wide, down and right), and places both.
//
// Errors (wrapped in ErrGenerationFailed): ErrNoEndpoints, ErrNoPath.
func (s *RandomFilled) TraceOriginalPath() (*Filled, error) {
	b := take(&s.b)

	// 1. Endpoints.
	start, end, err := b.pickEndpoints()
	if err != nil {
		return nil, failed(err)
	}

	// 2. Cheapest path through the noise valleys.
	path, _, err := dijkstra.ShortestPath(start, b.successors(nil, true), func(p grid.Point) bool {
		return p == end
	})
	if err != nil {
		return nil, failed(fmt.Errorf("%w: %s→%s: %w", ErrNoPath, start, end, err))
	}

	// 3. Carve.
	for _, p := range path {
		b.carve(p)
		for _, q := range b.dims.DownRight(p) {
			b.carve(q)
		}
	}
	b.tiles.Set(start, tile.EntranceTile)
	b.tiles.Set(end, tile.ExitTile)

	// 4. Invariant check.
	if !b.tiles.At(start).IsEntrance() || !b.tiles.At(end).IsExit() {
		panic(fmt.Sprintf("floor %d: entrance %s / exit %s not in place after carving", b.id, start, end))
	}
	b.log.Debug("original path traced", "entrance", start.String(), "exit", end.String(), "length", len(path))
	b.frame(100)

	return &Filled{b: b}, nil
}

// carve clears p if it is solid.
func (b *builder) carve(p grid.Point) {
	if b.tiles.At(p).IsSolid() {
		b.tiles.Set(p, tile.EmptyTile)
	}
}

// pickEndpoints draws (start, end) pairs inside the ring until their distance
// lies strictly between half the larger side and the larger side.
func (b *builder) pickEndpoints() (grid.Point, grid.Point, error) {
	larger := float64(max(b.dims.W(), b.dims.H()))
	for i := 0; i < b.params.MaxEndpointSamples; i++ {
		start, end := b.interiorPoint(), b.interiorPoint()
		if d := grid.Distance(start, end); larger/2 < d && d < larger {
			return start, end, nil
		}
	}

	return grid.Point{}, grid.Point{}, fmt.Errorf("%w: %d samples on %dx%d",
		ErrNoEndpoints, b.params.MaxEndpointSamples, b.dims.W(), b.dims.H())
}

// interiorPoint returns a uniform point with row and column in [1, dim-1).
func (b *builder) interiorPoint() grid.Point {
	return grid.MustPoint(1+b.rng.Intn(b.dims.H()-2), 1+b.rng.Intn(b.dims.W()-2))
}

// successors builds a Legal4 successor function. allow, if non-nil, filters
// destinations. Costs are the destination's noise value or 1.
func (b *builder) successors(allow func(grid.Point) bool, useNoise bool) func(grid.Point) []dijkstra.Successor[grid.Point] {
	return func(p grid.Point) []dijkstra.Successor[grid.Point] {
		nbs := b.dims.Legal4(p)
		out := make([]dijkstra.Successor[grid.Point], 0, len(nbs))
		for _, q := range nbs {
			if allow != nil && !allow(q) {
				continue
			}
			cost := int64(1)
			if useNoise {
				cost = int64(b.noise.At(q))
			}
			out = append(out, dijkstra.Successor[grid.Point]{Node: q, Cost: cost})
		}

		return out
	}
}

package floor

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/cavern/grid"
	"github.com/katalvlaran/cavern/gridgraph"
	"github.com/katalvlaran/cavern/rng"
)

// BorderID identifies one border for the lifetime of a builder stage.
type BorderID struct{ n int }

func (id BorderID) String() string { return fmt.Sprintf("border#%d", id.n) }

// Border is the set of solid tiles touching one cave.
type Border struct {
	ID BorderID
	// Points is sorted by (row, column).
	Points []grid.Point

	set mapset.Set[grid.Point]
}

// Contains reports whether p belongs to the border.
func (b Border) Contains(p grid.Point) bool { return b.set.Has(p) }

// Len returns the number of border tiles.
func (b Border) Len() int { return len(b.Points) }

// CaveBorders finds every cave and its border. Caves with an empty border
// are dropped, IDs are assigned in discovery order, and the list is shuffled.
//
// Complexity: O(W×H).
func (s *Smoothed) CaveBorders() *HasBorders {
	b := take(&s.b)
	b.borders = b.findBorders()

	return &HasBorders{b: b}
}

// Borders returns the borders found by CaveBorders, in shuffled order.
func (s *HasBorders) Borders() []Border {
	b := peek(s.b)
	out := make([]Border, len(b.borders))
	copy(out, b.borders)

	return out
}

// open reports whether p can be walked on.
func (b *builder) open(p grid.Point) bool { return !b.tiles.At(p).IsSolid() }

func (b *builder) gridGraph() *gridgraph.GridGraph {
	gg, err := gridgraph.New(b.dims, b.open, gridgraph.Conn4)
	if err != nil {
		panic(err)
	}

	return gg
}

func (b *builder) findBorders() []Border {
	regions := b.gridGraph().Regions()
	out := make([]Border, 0, len(regions))
	for _, r := range regions {
		if len(r.Border) == 0 {
			continue
		}
		out = append(out, Border{
			ID:     BorderID{n: len(out)},
			Points: r.Border,
			set:    r.BorderSet(),
		})
	}
	rng.Shuffle(out, b.rng)

	return out
}

package floor

import (
	"github.com/katalvlaran/cavern/grid"
	"github.com/katalvlaran/cavern/rng"
	"github.com/katalvlaran/cavern/tile"
)

// PlaceTreasureChests drops between TreasureMin and TreasureMax chests on
// Empty tiles whose eight neighbours are all Empty. Candidates are shuffled
// and re-checked at placement, so two chests never touch. Fewer chests are
// placed when candidates run out.
func (s *HasSecretPassages) PlaceTreasureChests() *Filled {
	b := take(&s.b)

	var candidates []grid.Point
	for p, t := range b.tiles.All() {
		if t.IsEmpty() && b.enclosed(p) {
			candidates = append(candidates, p)
		}
	}
	rng.Shuffle(candidates, b.rng)

	want := rng.IntRange(b.rng, b.params.TreasureMin, b.params.TreasureMax)
	placed := 0
	for _, p := range candidates {
		if placed == want {
			break
		}
		if !b.enclosed(p) {
			continue
		}
		b.tiles.Set(p, tile.TreasureChestTile)
		placed++
		b.frame(10)
	}
	b.log.Debug("treasure placed", "wanted", want, "placed", placed, "candidates", len(candidates))

	return &Filled{b: b}
}

// enclosed reports whether all eight neighbours of p are interior Empty tiles.
func (b *builder) enclosed(p grid.Point) bool {
	nbs := b.dims.Legal8(p)
	if len(nbs) != 8 {
		return false
	}
	for _, q := range nbs {
		if !b.tiles.At(q).IsEmpty() {
			return false
		}
	}

	return true
}

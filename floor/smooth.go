package floor

import (
	"github.com/katalvlaran/cavern/grid"
	"github.com/katalvlaran/cavern/tile"
)

// Never is a createNewWalls schedule that never seeds walls.
func Never(int) bool { return false }

// Smoothen runs the cave cellular automaton repeat times. Each pass sweeps
// the floor in place, column by column, and createNewWalls(pass) decides
// whether that pass may seed walls in open areas.
//
// Complexity: O(repeat × W×H).
func (s *Filled) Smoothen(repeat int, createNewWalls func(iter int) bool) *Smoothed {
	b := take(&s.b)
	if createNewWalls == nil {
		createNewWalls = Never
	}
	for i := 0; i < repeat; i++ {
		seed := createNewWalls(i)
		for p := range b.dims.Points() {
			b.placeWallLogic(p, seed)
		}
		b.frame(100)
	}

	return &Smoothed{b: b}
}

// placeWallLogic applies the automaton rule to one tile. Only Empty and Wall
// tiles are rewritten; ring tiles are always Wall. Seeding only keeps an
// isolated wall standing, it never turns an Empty tile into rock.
func (b *builder) placeWallLogic(p grid.Point, createNewWalls bool) {
	t := b.tiles.At(p)
	if !t.IsEmpty() && !t.IsWall() {
		return
	}
	if b.dims.InRing(p) {
		b.tiles.Set(p, tile.WallTile)
		return
	}

	solid := t.IsSolid()
	n1 := b.adjacentWalls(p, 1, 1)
	switch {
	case solid && n1 >= 4:
		b.tiles.Set(p, tile.WallTile)
	case solid && createNewWalls && b.adjacentWalls(p, 2, 2) < 2:
		b.tiles.Set(p, tile.WallTile)
	case solid && n1 < 2:
		b.tiles.Set(p, tile.EmptyTile)
	case !solid && n1 >= 5:
		b.tiles.Set(p, tile.WallTile)
	default:
		b.tiles.Set(p, tile.EmptyTile)
	}
}

// adjacentWalls counts solid tiles in the rectangle of half-size (dx, dy)
// around p, excluding p. Ring and off-grid positions count as walls.
func (b *builder) adjacentWalls(p grid.Point, dx, dy int) int {
	in, outside := b.dims.Rect(p, dx, dy)
	n := outside
	for _, q := range in {
		if b.dims.InRing(q) || b.tiles.At(q).IsSolid() {
			n++
		}
	}

	return n
}

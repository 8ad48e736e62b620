package floor

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cavern/grid"
	"github.com/katalvlaran/cavern/tile"
)

// openBuilder returns a 10×10 builder with a wall ring and an empty interior.
func openBuilder(t *testing.T) *builder {
	t.Helper()
	d, err := grid.NewDims(10, 10)
	assert.NoError(t, err)
	b := newBuilder(1, d, DefaultOptions())
	for p := range d.Points() {
		if d.InRing(p) {
			b.tiles.Set(p, tile.WallTile)
		}
	}

	return b
}

func TestPlaceWallLogic(t *testing.T) {
	mid := grid.P(5, 5)

	t.Run("ring is always wall", func(t *testing.T) {
		b := openBuilder(t)
		b.tiles.Set(grid.P(0, 4), tile.EmptyTile)
		b.placeWallLogic(grid.P(0, 4), false)
		assert.True(t, b.tiles.At(grid.P(0, 4)).IsWall())
	})

	t.Run("lone wall erodes", func(t *testing.T) {
		b := openBuilder(t)
		b.tiles.Set(mid, tile.WallTile)
		b.placeWallLogic(mid, false)
		assert.True(t, b.tiles.At(mid).IsEmpty())
	})

	t.Run("lone wall in open area survives when seeding", func(t *testing.T) {
		b := openBuilder(t)
		b.tiles.Set(mid, tile.WallTile)
		b.placeWallLogic(mid, true)
		assert.True(t, b.tiles.At(mid).IsWall())
	})

	t.Run("empty tile in open area stays empty when seeding", func(t *testing.T) {
		b := openBuilder(t)
		b.placeWallLogic(mid, true)
		assert.True(t, b.tiles.At(mid).IsEmpty())
	})

	t.Run("chests count as neighbours", func(t *testing.T) {
		b := openBuilder(t)
		b.tiles.Set(mid, tile.WallTile)
		for _, p := range []grid.Point{grid.P(4, 4), grid.P(4, 5), grid.P(4, 6), grid.P(5, 4)} {
			b.tiles.Set(p, tile.TreasureChestTile)
		}
		b.placeWallLogic(mid, false)
		assert.True(t, b.tiles.At(mid).IsWall())
	})

	t.Run("five neighbours fill an empty tile", func(t *testing.T) {
		b := openBuilder(t)
		for _, p := range []grid.Point{grid.P(4, 4), grid.P(4, 5), grid.P(4, 6), grid.P(5, 4), grid.P(5, 6)} {
			b.tiles.Set(p, tile.WallTile)
		}
		b.placeWallLogic(mid, false)
		assert.True(t, b.tiles.At(mid).IsWall())
	})

	t.Run("wall with four neighbours survives", func(t *testing.T) {
		b := openBuilder(t)
		b.tiles.Set(mid, tile.WallTile)
		for _, p := range []grid.Point{grid.P(4, 4), grid.P(4, 5), grid.P(4, 6), grid.P(5, 4)} {
			b.tiles.Set(p, tile.WallTile)
		}
		b.placeWallLogic(mid, false)
		assert.True(t, b.tiles.At(mid).IsWall())
	})

	t.Run("wall with two neighbours erodes", func(t *testing.T) {
		b := openBuilder(t)
		b.tiles.Set(mid, tile.WallTile)
		b.tiles.Set(grid.P(4, 5), tile.WallTile)
		b.tiles.Set(grid.P(6, 5), tile.WallTile)
		b.placeWallLogic(mid, false)
		assert.True(t, b.tiles.At(mid).IsEmpty())
	})

	t.Run("ring counts toward the corner", func(t *testing.T) {
		b := openBuilder(t)
		b.placeWallLogic(grid.P(1, 1), false)
		assert.True(t, b.tiles.At(grid.P(1, 1)).IsWall(), "five ring neighbours")
	})

	t.Run("special tiles are left alone", func(t *testing.T) {
		b := openBuilder(t)
		b.tiles.Set(grid.P(1, 1), tile.SecretPassageTile)
		b.tiles.Set(mid, tile.EntranceTile)
		b.placeWallLogic(grid.P(1, 1), true)
		b.placeWallLogic(mid, true)
		assert.Equal(t, tile.SecretPassageTile, b.tiles.At(grid.P(1, 1)))
		assert.Equal(t, tile.EntranceTile, b.tiles.At(mid))
	})
}

func TestAdjacentWalls_OffGrid(t *testing.T) {
	b := openBuilder(t)
	// (0,0): two in-grid ring neighbours plus five off-grid positions.
	assert.Equal(t, 7, b.adjacentWalls(grid.P(0, 0), 1, 1))
	assert.Equal(t, 0, b.adjacentWalls(grid.P(5, 5), 1, 1))
	assert.Equal(t, 0, b.adjacentWalls(grid.P(5, 5), 2, 2))
	assert.Equal(t, 0, b.adjacentWalls(grid.P(2, 2), 1, 1))
	assert.Equal(t, 9, b.adjacentWalls(grid.P(2, 2), 2, 2), "top row and left column of the ring")

	b.tiles.Set(grid.P(4, 4), tile.TreasureChestTile)
	b.tiles.Set(grid.P(6, 6), tile.SecretPassageTile)
	assert.Equal(t, 1, b.adjacentWalls(grid.P(5, 5), 1, 1), "chests are solid, passages are not")
}

func TestPickEndpoints_Distance(t *testing.T) {
	b := openBuilder(t)
	for i := 0; i < 50; i++ {
		start, end, err := b.pickEndpoints()
		assert.NoError(t, err)
		d := grid.Distance(start, end)
		assert.Greater(t, d, 5.0)
		assert.Less(t, d, 10.0)
		assert.False(t, b.dims.InRing(start))
		assert.False(t, b.dims.InRing(end))
	}
}

// extraPassBound caps the single passes a floor needs to settle after the
// pipeline's ten smoothing passes. Most floors are already stable; a slow
// erosion front in the in-place sweep can take a couple of dozen more.
const extraPassBound = 40

// smoothedLikeCreate runs fill, the original path and both smoothing rounds
// the way Create does, without the connection stages in between.
func smoothedLikeCreate(t *testing.T, w, h int, seed int64) *builder {
	t.Helper()
	blank, err := NewBlank(1, w, h, WithSeed(seed))
	require.NoError(t, err)
	filled, err := blank.RandomFill().TraceOriginalPath()
	require.NoError(t, err)
	p := filled.b.params
	first := filled.Smoothen(p.FirstSmoothPasses, func(i int) bool { return i < p.NewWallPasses })
	second := (&Filled{b: take(&first.b)}).Smoothen(p.SecondSmoothPasses, Never)

	return take(&second.b)
}

// passesToSettle counts single passes until one changes nothing, or -1 when
// limit passes are not enough.
func passesToSettle(b *builder, limit int) int {
	for i := 0; i <= limit; i++ {
		before := b.tiles.Clone()
		sm := (&Filled{b: b}).Smoothen(1, Never)
		b = take(&sm.b)
		if slices.Equal(before.Cells(), b.tiles.Cells()) {
			return i
		}
	}

	return -1
}

func TestSmoothen_SettlesAfterPipeline(t *testing.T) {
	const seeds = 20
	quick := 0
	for seed := int64(1); seed <= seeds; seed++ {
		n := passesToSettle(smoothedLikeCreate(t, 60, 40, seed), extraPassBound)
		require.GreaterOrEqual(t, n, 0, "seed %d did not settle within %d passes", seed, extraPassBound)
		if n <= 2 {
			quick++
		}
	}
	assert.GreaterOrEqual(t, quick, seeds/2, "most floors settle within two extra passes")
}

func TestSmoothen_FixedPointIsStable(t *testing.T) {
	b := smoothedLikeCreate(t, 30, 20, 99)
	require.GreaterOrEqual(t, passesToSettle(b, extraPassBound), 0)

	converged := b.tiles.Clone()
	sm := (&Filled{b: b}).Smoothen(3, Never)
	assert.Equal(t, converged.Cells(), peek(sm.b).tiles.Cells())
}

package render_test

import (
	"bytes"
	"image/gif"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cavern/floor"
	"github.com/katalvlaran/cavern/render"
	"github.com/katalvlaran/cavern/tile"
)

func makeFloor(t *testing.T, id, w, h int) *floor.Floor {
	t.Helper()
	f, err := floor.Create(id, w, h, floor.WithSeed(int64(id)+1))
	require.NoError(t, err)

	return f
}

func TestPaletted(t *testing.T) {
	_, err := render.Paletted(2, 2, []uint8{0, 1, 2})
	assert.ErrorIs(t, err, render.ErrPixCount)

	img, err := render.Paletted(2, 1, []uint8{tile.WallTile.AsU8(), tile.ExitTile.AsU8()})
	require.NoError(t, err)
	assert.Equal(t, tile.Palette()[tile.Exit], img.At(1, 0))
}

func TestImage_MatchesTiles(t *testing.T) {
	f := makeFloor(t, 0, 20, 12)
	img := render.Image(f)
	assert.Equal(t, 20, img.Bounds().Dx())
	assert.Equal(t, 12, img.Bounds().Dy())
	for p, tl := range f.All() {
		assert.Equal(t, tl.AsU8(), img.ColorIndexAt(p.Column.Value(), p.Row.Value()))
	}
}

func TestFloorsGIF(t *testing.T) {
	floors := []*floor.Floor{makeFloor(t, 0, 20, 12), makeFloor(t, 1, 14, 30)}
	var buf bytes.Buffer
	require.NoError(t, render.FloorsGIF(&buf, floors))

	g, err := gif.DecodeAll(&buf)
	require.NoError(t, err)
	require.Len(t, g.Image, 2)
	assert.Equal(t, []int{render.FloorDelay, render.FloorDelay}, g.Delay)
	assert.Equal(t, 0, g.LoopCount)
	assert.Equal(t, 20, g.Config.Width, "canvas takes the widest floor")
	assert.Equal(t, 30, g.Config.Height, "canvas takes the tallest floor")

	assert.ErrorIs(t, render.EncodeGIF(&buf, nil), render.ErrNoFrames)
}

func TestASCII(t *testing.T) {
	f := makeFloor(t, 0, 16, 10)
	out := render.ASCII(f)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 10)
	assert.Equal(t, strings.Repeat("#", 16), lines[0])
	assert.Equal(t, 1, strings.Count(out, "<"))
	assert.Equal(t, 1, strings.Count(out, ">"))
}

func TestRecorder(t *testing.T) {
	var logged bytes.Buffer
	rec := render.NewRecorder(slog.New(slog.NewTextHandler(&logged, &slog.HandlerOptions{Level: slog.LevelDebug})))

	var wg sync.WaitGroup
	for id := 0; id < 3; id++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			_, err := floor.Create(id, 18, 12, floor.WithSeed(int64(id)+5), floor.WithFrameSink(rec))
			assert.NoError(t, err)
		}(id)
	}
	wg.Wait()

	assert.Equal(t, []int{0, 1, 2}, rec.IDs())
	frames := rec.Frames(1)
	require.NotEmpty(t, frames)
	assert.Equal(t, 100, frames[0].Delay, "random fill frame")

	rec.Frame(9, 3, 3, []uint8{1}, 10)
	assert.Empty(t, rec.Frames(9), "malformed frames are dropped")
	assert.Contains(t, logged.String(), "frame dropped")
	assert.Contains(t, logged.String(), "render: pixel count does not match dimensions")

	dir := filepath.Join(t.TempDir(), "out")
	require.NoError(t, rec.WriteDir(dir, nil))
	for _, id := range []string{"0", "1", "2"} {
		data, err := os.ReadFile(filepath.Join(dir, "floor_"+id+".gif"))
		require.NoError(t, err)
		g, err := gif.DecodeAll(bytes.NewReader(data))
		require.NoError(t, err)
		assert.Greater(t, len(g.Image), 5)
	}
}

package floor

import (
	"encoding/json"
	"fmt"
	"iter"
	"strings"

	"github.com/katalvlaran/cavern/grid"
	"github.com/katalvlaran/cavern/gridgraph"
	"github.com/katalvlaran/cavern/tile"
)

// Floor is a finished, single-region cave level.
type Floor struct {
	ID     int
	Width  grid.Size
	Height grid.Size
	Tiles  *grid.Grid[tile.Tile]
}

// Finish ends the pipeline and hands the tiles over to a Floor.
func (s *Filled) Finish() *Floor {
	b := take(&s.b)
	b.frame(100)

	return &Floor{ID: b.id, Width: b.dims.Width, Height: b.dims.Height, Tiles: b.tiles}
}

// At returns the tile at p.
func (f *Floor) At(p grid.Point) tile.Tile { return f.Tiles.At(p) }

// Set overwrites the tile at p, e.g. to open a secret door in play.
func (f *Floor) Set(p grid.Point, t tile.Tile) { f.Tiles.Set(p, t) }

// All yields every (point, tile) pair.
func (f *Floor) All() iter.Seq2[grid.Point, tile.Tile] { return f.Tiles.All() }

// Len returns the number of tiles.
func (f *Floor) Len() int { return f.Tiles.Len() }

// Entrance returns the location of the entrance tile.
func (f *Floor) Entrance() (grid.Point, bool) { return f.find(tile.Entrance) }

// Exit returns the location of the exit tile.
func (f *Floor) Exit() (grid.Point, bool) { return f.find(tile.Exit) }

func (f *Floor) find(k tile.Kind) (grid.Point, bool) {
	for p, t := range f.Tiles.All() {
		if t.Kind == k {
			return p, true
		}
	}

	return grid.Point{}, false
}

// Regions counts the 4-connected regions of non-solid tiles. A valid floor
// has exactly one.
func (f *Floor) Regions() int {
	gg, err := gridgraph.New(f.Tiles.Dims, func(p grid.Point) bool {
		return !f.Tiles.At(p).IsSolid()
	}, gridgraph.Conn4)
	if err != nil {
		panic(err)
	}

	return len(gg.Regions())
}

// Pix returns the palette index of every tile, row-major.
func (f *Floor) Pix() []uint8 {
	pix := make([]uint8, 0, f.Len())
	for _, row := range f.Tiles.Rows() {
		for _, t := range row {
			pix = append(pix, t.AsU8())
		}
	}

	return pix
}

// String draws the floor with two characters per tile, one row per line.
func (f *Floor) String() string {
	var sb strings.Builder
	sb.Grow(f.Len()*2 + f.Height.Value())
	for _, row := range f.Tiles.Rows() {
		for _, t := range row {
			sb.WriteString(t.Glyph())
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

type floorJSON struct {
	ID     int         `json:"id"`
	Width  grid.Size   `json:"width"`
	Height grid.Size   `json:"height"`
	Data   []tile.Tile `json:"data"`
}

// MarshalJSON encodes the floor with its tiles row-major under "data".
func (f *Floor) MarshalJSON() ([]byte, error) {
	return json.Marshal(floorJSON{ID: f.ID, Width: f.Width, Height: f.Height, Data: f.Tiles.Cells()})
}

// UnmarshalJSON decodes the MarshalJSON form. Out-of-range sizes and a tile
// count that does not match width×height are rejected.
func (f *Floor) UnmarshalJSON(data []byte) error {
	var w floorJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	tiles, err := grid.FromCells(grid.Dims{Width: w.Width, Height: w.Height}, w.Data)
	if err != nil {
		return fmt.Errorf("floor %d: %w", w.ID, err)
	}
	*f = Floor{ID: w.ID, Width: w.Width, Height: w.Height, Tiles: tiles}

	return nil
}

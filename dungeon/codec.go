package dungeon

import (
	"encoding/json"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/katalvlaran/cavern/floor"
	"github.com/katalvlaran/cavern/grid"
	"github.com/katalvlaran/cavern/tile"
)

type dungeonJSON struct {
	Type   Type           `json:"dungeon_type"`
	Floors []*floor.Floor `json:"floors"`
}

// ToJSON encodes the dungeon as {"dungeon_type": ..., "floors": [...]}.
func (d *Dungeon) ToJSON() ([]byte, error) {
	return json.Marshal(dungeonJSON{Type: d.Type, Floors: d.Floors})
}

// FromJSON decodes the ToJSON form.
func FromJSON(data []byte) (*Dungeon, error) {
	var w dungeonJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("dungeon: decode json: %w", err)
	}
	if len(w.Floors) == 0 {
		return nil, ErrZeroFloors
	}

	return &Dungeon{Type: w.Type, Floors: w.Floors}, nil
}

// MessagePack wire form. Tiles are packed as their kind plus door flags.
type packedDungeon struct {
	Type   string        `msgpack:"dungeon_type"`
	Floors []packedFloor `msgpack:"floors"`
}

type packedFloor struct {
	ID     int          `msgpack:"id"`
	Width  int          `msgpack:"width"`
	Height int          `msgpack:"height"`
	Data   []packedTile `msgpack:"data"`
}

type packedTile struct {
	_msgpack    struct{} `msgpack:",as_array"`
	Kind        uint8
	RequiresKey bool
	IsOpen      bool
}

// ToMsgPack encodes the dungeon as MessagePack.
func (d *Dungeon) ToMsgPack() ([]byte, error) {
	w := packedDungeon{Type: d.Type.String(), Floors: make([]packedFloor, 0, len(d.Floors))}
	for _, f := range d.Floors {
		pf := packedFloor{ID: f.ID, Width: f.Width.Value(), Height: f.Height.Value(), Data: make([]packedTile, 0, f.Len())}
		for _, t := range f.Tiles.Cells() {
			pf.Data = append(pf.Data, packedTile{Kind: t.AsU8(), RequiresKey: t.RequiresKey, IsOpen: t.IsOpen})
		}
		w.Floors = append(w.Floors, pf)
	}
	data, err := msgpack.Marshal(&w)
	if err != nil {
		return nil, fmt.Errorf("dungeon: encode msgpack: %w", err)
	}

	return data, nil
}

// FromMsgPack decodes the ToMsgPack form, validating sizes and tiles.
func FromMsgPack(data []byte) (*Dungeon, error) {
	var w packedDungeon
	if err := msgpack.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("dungeon: decode msgpack: %w", err)
	}
	typ, err := ParseType(w.Type)
	if err != nil {
		return nil, err
	}
	if len(w.Floors) == 0 {
		return nil, ErrZeroFloors
	}

	d := &Dungeon{Type: typ, Floors: make([]*floor.Floor, 0, len(w.Floors))}
	for _, pf := range w.Floors {
		dims, err := grid.NewDims(pf.Width, pf.Height)
		if err != nil {
			return nil, fmt.Errorf("dungeon: floor %d: %w", pf.ID, err)
		}
		cells := make([]tile.Tile, 0, len(pf.Data))
		for i, pt := range pf.Data {
			if pt.Kind > uint8(tile.Exit) {
				return nil, fmt.Errorf("%w: floor %d tile %d has kind %d", ErrBadTile, pf.ID, i, pt.Kind)
			}
			cells = append(cells, tile.Tile{Kind: tile.Kind(pt.Kind), RequiresKey: pt.RequiresKey, IsOpen: pt.IsOpen})
		}
		tiles, err := grid.FromCells(dims, cells)
		if err != nil {
			return nil, fmt.Errorf("dungeon: floor %d: %w", pf.ID, err)
		}
		d.Floors = append(d.Floors, &floor.Floor{ID: pf.ID, Width: dims.Width, Height: dims.Height, Tiles: tiles})
	}

	return d, nil
}

// Package tile defines the kinds of tile a floor is made of and their
// traversal semantics, palette indices and glyphs.
package tile

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
)

// ErrUnknownKind indicates a tile kind name that does not exist.
var ErrUnknownKind = errors.New("tile: unknown kind")

// Kind enumerates tile kinds. The numeric values double as palette indices.
type Kind uint8

const (
	Empty Kind = iota
	Wall
	SecretDoor
	SecretPassage
	TreasureChest
	Entrance
	Exit
)

var kindNames = [...]string{
	Empty:         "empty",
	Wall:          "wall",
	SecretDoor:    "secret_door",
	SecretPassage: "secret_passage",
	TreasureChest: "treasure_chest",
	Entrance:      "entrance",
	Exit:          "exit",
}

// String returns the snake_case name of k.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return fmt.Sprintf("kind(%d)", uint8(k))
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, error) {
	for i, n := range kindNames {
		if n == s {
			return Kind(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Tile is a single floor cell. RequiresKey and IsOpen only carry meaning for
// SecretDoor tiles. The zero Tile is Empty.
type Tile struct {
	Kind        Kind
	RequiresKey bool
	IsOpen      bool
}

// Convenience values for the plain kinds.
var (
	EmptyTile         = Tile{Kind: Empty}
	WallTile          = Tile{Kind: Wall}
	SecretPassageTile = Tile{Kind: SecretPassage}
	TreasureChestTile = Tile{Kind: TreasureChest}
	EntranceTile      = Tile{Kind: Entrance}
	ExitTile          = Tile{Kind: Exit}
)

// NewSecretDoor returns a SecretDoor tile with the given flags.
func NewSecretDoor(requiresKey, isOpen bool) Tile {
	return Tile{Kind: SecretDoor, RequiresKey: requiresKey, IsOpen: isOpen}
}

// IsWall reports whether t is a Wall.
func (t Tile) IsWall() bool { return t.Kind == Wall }

// IsEmpty reports whether t is an Empty tile.
func (t Tile) IsEmpty() bool { return t.Kind == Empty }

// IsSolid reports whether t blocks movement. Walls and treasure chests are solid.
func (t Tile) IsSolid() bool { return t.Kind == Wall || t.Kind == TreasureChest }

// IsEntrance reports whether t is the floor's entrance.
func (t Tile) IsEntrance() bool { return t.Kind == Entrance }

// IsExit reports whether t is the floor's exit.
func (t Tile) IsExit() bool { return t.Kind == Exit }

// IsSecret reports whether t is a secret door or passage.
func (t Tile) IsSecret() bool { return t.Kind == SecretDoor || t.Kind == SecretPassage }

// AsU8 returns the palette index of t.
func (t Tile) AsU8() uint8 { return uint8(t.Kind) }

// ColorMap is the RGB palette indexed by AsU8, three bytes per kind.
var ColorMap = [21]byte{
	0xFF, 0xFF, 0xFF, // Empty
	0x00, 0x00, 0x00, // Wall
	0xFF, 0x00, 0x00, // SecretDoor
	0x00, 0xFF, 0x00, // SecretPassage
	0x00, 0x00, 0xFF, // TreasureChest
	0xFF, 0x00, 0xFF, // Entrance
	0xAA, 0x40, 0x00, // Exit
}

// Palette returns ColorMap as an image palette.
func Palette() color.Palette {
	p := make(color.Palette, 0, len(ColorMap)/3)
	for i := 0; i < len(ColorMap); i += 3 {
		p = append(p, color.RGBA{R: ColorMap[i], G: ColorMap[i+1], B: ColorMap[i+2], A: 0xFF})
	}

	return p
}

// Glyph returns the two-cell text representation of t.
func (t Tile) Glyph() string {
	switch t.Kind {
	case Wall:
		return "██"
	case SecretDoor:
		return "SD"
	case SecretPassage:
		return "<>"
	case TreasureChest:
		return "TC"
	case Entrance:
		return "EN"
	case Exit:
		return "EX"
	default:
		return "  "
	}
}

// String implements fmt.Stringer.
func (t Tile) String() string {
	if t.Kind == SecretDoor {
		return fmt.Sprintf("secret_door{requires_key:%t,is_open:%t}", t.RequiresKey, t.IsOpen)
	}

	return t.Kind.String()
}

type secretDoorJSON struct {
	Kind        string `json:"kind"`
	RequiresKey bool   `json:"requires_key"`
	IsOpen      bool   `json:"is_open"`
}

// MarshalJSON encodes plain kinds as a bare string and secret doors as an
// object carrying their flags.
func (t Tile) MarshalJSON() ([]byte, error) {
	if t.Kind == SecretDoor {
		return json.Marshal(secretDoorJSON{Kind: t.Kind.String(), RequiresKey: t.RequiresKey, IsOpen: t.IsOpen})
	}

	return json.Marshal(t.Kind.String())
}

// UnmarshalJSON accepts either form produced by MarshalJSON.
func (t *Tile) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		k, err := ParseKind(name)
		if err != nil {
			return err
		}
		*t = Tile{Kind: k}

		return nil
	}

	var obj secretDoorJSON
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("tile: decode: %w", err)
	}
	k, err := ParseKind(obj.Kind)
	if err != nil {
		return err
	}
	*t = Tile{Kind: k}
	if k == SecretDoor {
		t.RequiresKey, t.IsOpen = obj.RequiresKey, obj.IsOpen
	}

	return nil
}

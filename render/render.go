package render

import (
	"errors"
	"fmt"
	"image"
	"image/gif"
	"io"
	"strings"

	"github.com/katalvlaran/cavern/floor"
	"github.com/katalvlaran/cavern/tile"
)

// Sentinel errors for rendering.
var (
	// ErrNoFrames indicates an animation with nothing to encode.
	ErrNoFrames = errors.New("render: no frames")

	// ErrPixCount indicates a pixel buffer that does not match its size.
	ErrPixCount = errors.New("render: pixel count does not match dimensions")
)

// FloorDelay is the per-floor delay of a dungeon animation, in hundredths
// of a second.
const FloorDelay = 300

// Paletted wraps row-major palette indices in an image.
func Paletted(width, height int, pix []uint8) (*image.Paletted, error) {
	if len(pix) != width*height {
		return nil, fmt.Errorf("%w: %d for %dx%d", ErrPixCount, len(pix), width, height)
	}
	img := image.NewPaletted(image.Rect(0, 0, width, height), tile.Palette())
	copy(img.Pix, pix)

	return img, nil
}

// Image renders f with one pixel per tile.
func Image(f *floor.Floor) *image.Paletted {
	img, err := Paletted(f.Width.Value(), f.Height.Value(), f.Pix())
	if err != nil {
		panic(err)
	}

	return img
}

// Frame is one image of an animation.
type Frame struct {
	Image *image.Paletted
	// Delay is in hundredths of a second.
	Delay int
}

// EncodeGIF writes frames as a looping GIF. The canvas is as large as the
// largest frame in each direction.
func EncodeGIF(w io.Writer, frames []Frame) error {
	if len(frames) == 0 {
		return ErrNoFrames
	}
	anim := &gif.GIF{LoopCount: 0}
	var cw, ch int
	for _, fr := range frames {
		b := fr.Image.Bounds()
		cw, ch = max(cw, b.Dx()), max(ch, b.Dy())
		anim.Image = append(anim.Image, fr.Image)
		anim.Delay = append(anim.Delay, fr.Delay)
		anim.Disposal = append(anim.Disposal, gif.DisposalBackground)
	}
	anim.Config = image.Config{ColorModel: tile.Palette(), Width: cw, Height: ch}

	if err := gif.EncodeAll(w, anim); err != nil {
		return fmt.Errorf("render: encode gif: %w", err)
	}

	return nil
}

// FloorsGIF writes one frame per floor, each shown for FloorDelay.
func FloorsGIF(w io.Writer, floors []*floor.Floor) error {
	frames := make([]Frame, 0, len(floors))
	for _, f := range floors {
		frames = append(frames, Frame{Image: Image(f), Delay: FloorDelay})
	}

	return EncodeGIF(w, frames)
}

// ASCII draws f with single-character glyphs, one row per line:
// '#' wall, ' ' empty, 'D' secret door, '+' secret passage, '$' chest,
// '<' entrance and '>' exit.
func ASCII(f *floor.Floor) string {
	var sb strings.Builder
	sb.Grow(f.Len() + f.Height.Value())
	for _, row := range f.Tiles.Rows() {
		for _, t := range row {
			sb.WriteByte(asciiGlyph(t))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

func asciiGlyph(t tile.Tile) byte {
	switch t.Kind {
	case tile.Wall:
		return '#'
	case tile.SecretDoor:
		return 'D'
	case tile.SecretPassage:
		return '+'
	case tile.TreasureChest:
		return '$'
	case tile.Entrance:
		return '<'
	case tile.Exit:
		return '>'
	default:
		return ' '
	}
}

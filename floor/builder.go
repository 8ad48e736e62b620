package floor

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/cavern/grid"
	"github.com/katalvlaran/cavern/noise"
	"github.com/katalvlaran/cavern/tile"
)

// builder is the payload handed from state to state. Exactly one state value
// holds a non-nil pointer to it at any time.
type builder struct {
	id     int
	dims   grid.Dims
	tiles  *grid.Grid[tile.Tile]
	noise  *noise.Map
	rng    *rand.Rand
	log    *slog.Logger
	params Params
	sink   FrameSink

	// borders is set by CaveBorders and read by later stages.
	borders []Border
	// connections is set by BuildConnections.
	connections []Connection
	// paths is set by TraceConnectionPaths and consumed by Draw.
	paths []ConnectionPath
	// strict disables the secret-tile goal and constrained search.
	strict bool
}

func newBuilder(id int, d grid.Dims, o Options) *builder {
	return &builder{
		id:     id,
		dims:   d,
		tiles:  grid.New[tile.Tile](d),
		noise:  grid.New[uint16](d),
		rng:    o.Rand,
		log:    o.Logger.With("floor", id),
		params: o.Params,
		sink:   o.Sink,
	}
}

// take moves the payload out of a state, panicking if it was already moved.
func take(pb **builder) *builder {
	b := *pb
	if b == nil {
		panic(ErrConsumed)
	}
	*pb = nil

	return b
}

// peek returns the payload without consuming it.
func peek(b *builder) *builder {
	if b == nil {
		panic(ErrConsumed)
	}

	return b
}

// frame sends the current tile state to the sink, if any.
func (b *builder) frame(delay int) {
	if b.sink == nil {
		return
	}
	pix := make([]uint8, b.tiles.Len())
	for r, row := range b.tiles.Rows() {
		for c, t := range row {
			pix[r*b.dims.W()+c] = t.AsU8()
		}
	}
	b.sink.Frame(b.id, b.dims.W(), b.dims.H(), pix, delay)
}

// Blank is a floor of the right size with nothing on it.
type Blank struct{ b *builder }

// RandomFilled has noise and random walls but no entrance or exit yet.
type RandomFilled struct{ b *builder }

// Filled is the rest state between stages. It can be smoothed again or finished.
type Filled struct{ b *builder }

// Smoothed has been through the cellular automaton.
type Smoothed struct{ b *builder }

// HasBorders knows the border of every cave.
type HasBorders struct{ b *builder }

// HasConnections has chosen which borders to link.
type HasConnections struct{ b *builder }

// Drawable holds traced corridors waiting to be drawn.
type Drawable struct{ b *builder }

// HasSecretPassages is a single connected floor awaiting treasure.
type HasSecretPassages struct{ b *builder }

// Smoothable is implemented by states that accept another smoothing pass.
type Smoothable interface {
	Smoothen(repeat int, createNewWalls func(iter int) bool) *Smoothed
}

var _ Smoothable = (*Filled)(nil)

// NewBlank starts a build of a width×height floor.
func NewBlank(id, width, height int, opts ...Option) (*Blank, error) {
	d, err := grid.NewDims(width, height)
	if err != nil {
		return nil, fmt.Errorf("floor: dimensions: %w", err)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err = o.Params.Validate(); err != nil {
		return nil, err
	}

	return &Blank{b: newBuilder(id, d, o)}, nil
}

// NewFilled starts a build from an existing tile grid, for re-running the
// later stages over a hand-made or previously generated layout. The noise
// field is sampled fresh from the injected generator. tiles is copied.
//
// Errors: ErrBadParams when the options carry invalid Params.
func NewFilled(id int, tiles *grid.Grid[tile.Tile], opts ...Option) (*Filled, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.Params.Validate(); err != nil {
		return nil, err
	}
	b := newBuilder(id, tiles.Dims, o)
	b.tiles = tiles.Clone()
	b.noise = noise.Fill(tiles.Dims, noise.NewBillow(o.Params.Noise, b.rng))

	return &Filled{b: b}, nil
}

// Tiles returns a copy of the current tile grid of a Filled state.
func (s *Filled) Tiles() *grid.Grid[tile.Tile] { return peek(s.b).tiles.Clone() }

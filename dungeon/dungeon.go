package dungeon

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/cavern/floor"
	"github.com/katalvlaran/cavern/grid"
	"github.com/katalvlaran/cavern/render"
	"github.com/katalvlaran/cavern/rng"
)

// Dungeon is an ordered set of floors sharing a theme.
type Dungeon struct {
	Type   Type
	Floors []*floor.Floor
}

// New generates floorCount floors of width×height in parallel.
//
// Floor i is built from its own generator, rng.Stream(Seed, i), so the
// result depends only on the options and not on scheduling. The first
// floor error cancels the rest.
//
// When GIF output is enabled the floors are still returned if writing the
// animations fails; the write error is returned alongside.
func New(ctx context.Context, height, width int, floorCount uint16, typ Type, opts ...Option) (*Dungeon, error) {
	// 1) Validate.
	if floorCount == 0 {
		return nil, ErrZeroFloors
	}
	if typ != Cave {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, typ)
	}
	if _, err := grid.NewDims(width, height); err != nil {
		return nil, fmt.Errorf("dungeon: dimensions: %w", err)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.Params.Validate(); err != nil {
		return nil, err
	}

	var rec *render.Recorder
	if o.GIFDir != "" {
		rec = render.NewRecorder(o.Logger)
	}

	// 2) Fan out.
	floors := make([]*floor.Floor, floorCount)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Workers)
	for i := range int(floorCount) {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fopts := []floor.Option{
				floor.WithContext(gctx),
				floor.WithRand(rng.Stream(o.Seed, uint64(i))),
				floor.WithLogger(o.Logger),
				floor.WithParams(o.Params),
			}
			if rec != nil {
				fopts = append(fopts, floor.WithFrameSink(rec))
			}
			f, err := floor.Create(i, width, height, fopts...)
			if err != nil {
				return fmt.Errorf("dungeon: floor %s: %w", FloorID(i), err)
			}
			floors[i] = f

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	d := &Dungeon{Type: typ, Floors: floors}
	o.Logger.Info("dungeon generated", "floors", len(floors), "width", width, "height", height, "seed", o.Seed)

	// 3) Animations.
	if rec != nil {
		if err := rec.WriteDir(o.GIFDir, o.Logger); err != nil {
			o.Logger.Error("writing floor animations", "dir", o.GIFDir, "err", err)
			return d, err
		}
	}

	return d, nil
}

// Floor returns the floor with the given ID.
func (d *Dungeon) Floor(id FloorID) (*floor.Floor, bool) {
	if int(id) >= len(d.Floors) {
		return nil, false
	}

	return d.Floors[id], true
}

// ToGIF writes one frame per floor, 3 s each, looping forever. The canvas
// fits the largest floor.
func (d *Dungeon) ToGIF(w io.Writer) error {
	return render.FloorsGIF(w, d.Floors)
}

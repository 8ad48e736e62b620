package floor

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cavern/grid"
	"github.com/katalvlaran/cavern/rng"
)

// Create runs the whole pipeline for a width×height floor:
//
//	RandomFill → TraceOriginalPath → Smoothen(first, seeding) → CaveBorders
//	→ BuildConnections(Finite) → TraceConnectionPaths(wide, noise)
//	→ Draw(EmptyBrush) → Smoothen(second, Never) → CheckForSecretPassages
//	→ PlaceTreasureChests → Finish
//
// The result must be a single region. A failed attempt is logged at warn
// level and retried with a reseeded generator, up to Params.MaxAttempts.
// Frames reach the sink only for the attempt that succeeds.
//
// Errors: ErrBadParams, grid range errors for bad dimensions, the context
// error once Options.Ctx is done, and *GenerationError once every attempt
// failed.
func Create(id, width, height int, opts ...Option) (*Floor, error) {
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

	var last error
	for attempt := 1; attempt <= o.Params.MaxAttempts; attempt++ {
		if err = o.Ctx.Err(); err != nil {
			return nil, fmt.Errorf("floor %d: %w", id, err)
		}
		var buf frameBuffer
		ao := o
		if o.Sink != nil {
			ao.Sink = &buf
		}

		f, err := build(id, d, ao)
		if err == nil {
			buf.flush(o.Sink)
			o.Logger.Debug("floor created", "floor", id, "attempt", attempt, "width", width, "height", height)
			return f, nil
		}
		if !errors.Is(err, ErrGenerationFailed) {
			return nil, err
		}
		last = err
		o.Logger.Warn("floor attempt failed", "floor", id, "attempt", attempt, "err", err)
		o.Rand = rng.Reseed(o.Rand)
	}

	return nil, &GenerationError{ID: id, Attempts: o.Params.MaxAttempts, Err: last}
}

func build(id int, d grid.Dims, o Options) (*Floor, error) {
	p := o.Params

	filled, err := (&Blank{b: newBuilder(id, d, o)}).RandomFill().TraceOriginalPath()
	if err != nil {
		return nil, err
	}
	filled = filled.
		Smoothen(p.FirstSmoothPasses, func(i int) bool { return i < p.NewWallPasses }).
		CaveBorders().
		BuildConnections(Finite(p.ConnectionIterations)).
		TraceConnectionPaths(true, true).
		Draw(EmptyBrush)

	secret, err := filled.Smoothen(p.SecondSmoothPasses, Never).CheckForSecretPassages()
	if err != nil {
		return nil, err
	}
	f := secret.PlaceTreasureChests().Finish()

	if n := f.Regions(); n != 1 {
		return nil, failed(fmt.Errorf("%w: %d regions", ErrDisconnected, n))
	}

	return f, nil
}

type capturedFrame struct {
	id, width, height int
	pix               []uint8
	delay             int
}

// frameBuffer holds one attempt's frames until the attempt is known good.
type frameBuffer struct{ frames []capturedFrame }

func (fb *frameBuffer) Frame(id, width, height int, pix []uint8, delay int) {
	fb.frames = append(fb.frames, capturedFrame{id: id, width: width, height: height, pix: pix, delay: delay})
}

func (fb *frameBuffer) flush(s FrameSink) {
	if s == nil {
		return
	}
	for _, f := range fb.frames {
		s.Frame(f.id, f.width, f.height, f.pix, f.delay)
	}
}

package floor

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/cavern/noise"
	"github.com/katalvlaran/cavern/rng"
)

// Params tunes the generation pipeline.
type Params struct {
	// WallChance is the percentage (0..100) of interior tiles walled by RandomFill.
	WallChance int
	// FirstSmoothPasses is the number of smoothing passes after random fill.
	FirstSmoothPasses int
	// NewWallPasses is how many of the first passes may seed new walls.
	NewWallPasses int
	// SecondSmoothPasses is the number of smoothing passes after corridors are drawn.
	SecondSmoothPasses int
	// ConnectionIterations bounds the first connection synthesis (Finite policy).
	ConnectionIterations int
	// TreasureMin and TreasureMax bound the number of chests attempted.
	TreasureMin, TreasureMax int
	// MaxAttempts bounds Create's reseed-and-retry loop.
	MaxAttempts int
	// MaxSecretRounds bounds the secret-passage finishing loop.
	MaxSecretRounds int
	// MaxEndpointSamples bounds entrance/exit sampling.
	MaxEndpointSamples int
	// Noise tunes the billow cost field.
	Noise noise.Params
}

// DefaultParams returns the stock tuning.
func DefaultParams() Params {
	return Params{
		WallChance:           52,
		FirstSmoothPasses:    3,
		NewWallPasses:        4,
		SecondSmoothPasses:   7,
		ConnectionIterations: 20,
		TreasureMin:          5,
		TreasureMax:          10,
		MaxAttempts:          8,
		MaxSecretRounds:      16,
		MaxEndpointSamples:   10_000,
		Noise:                noise.DefaultParams(),
	}
}

// Validate reports the first out-of-range field.
func (p Params) Validate() error {
	switch {
	case p.WallChance < 0 || p.WallChance > 100:
		return fmt.Errorf("%w: wall chance %d not in [0,100]", ErrBadParams, p.WallChance)
	case p.FirstSmoothPasses < 0 || p.SecondSmoothPasses < 0 || p.NewWallPasses < 0:
		return fmt.Errorf("%w: smoothing passes must be non-negative", ErrBadParams)
	case p.ConnectionIterations < 1:
		return fmt.Errorf("%w: connection iterations must be positive", ErrBadParams)
	case p.TreasureMin < 0 || p.TreasureMax < p.TreasureMin:
		return fmt.Errorf("%w: treasure range [%d,%d]", ErrBadParams, p.TreasureMin, p.TreasureMax)
	case p.MaxAttempts < 1 || p.MaxSecretRounds < 1 || p.MaxEndpointSamples < 1:
		return fmt.Errorf("%w: attempt limits must be positive", ErrBadParams)
	}

	return nil
}

// FrameSink receives a snapshot of the tile palette indices after a stage
// step. pix is row-major, width×height long, and owned by the sink.
// delay is in hundredths of a second.
type FrameSink interface {
	Frame(id, width, height int, pix []uint8, delay int)
}

// FrameSinkFunc adapts a function to FrameSink.
type FrameSinkFunc func(id, width, height int, pix []uint8, delay int)

// Frame calls f.
func (f FrameSinkFunc) Frame(id, width, height int, pix []uint8, delay int) {
	f(id, width, height, pix, delay)
}

// Options collects the settings of one floor build.
type Options struct {
	// Ctx is checked by Create before each attempt.
	Ctx    context.Context
	Rand   *rand.Rand
	Logger *slog.Logger
	Params Params
	Sink   FrameSink
}

// Option configures a floor build.
type Option func(*Options)

// DefaultOptions returns a DefaultSeed generator, a discarding logger,
// DefaultParams and no frame capture.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Rand:   rng.FromSeed(rng.DefaultSeed),
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Params: DefaultParams(),
	}
}

// WithContext makes Create stop retrying once ctx is done. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithRand injects the random source. A nil r is ignored.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithSeed seeds a fresh generator (seed 0 maps to rng.DefaultSeed).
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Rand = rng.FromSeed(seed) }
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithParams replaces the tuning parameters.
func WithParams(p Params) Option {
	return func(o *Options) { o.Params = p }
}

// WithFrameSink enables frame capture into s.
func WithFrameSink(s FrameSink) Option {
	return func(o *Options) { o.Sink = s }
}

package dungeon

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/katalvlaran/cavern/floor"
	"github.com/katalvlaran/cavern/rng"
)

// Sentinel errors for dungeon construction and decoding.
var (
	// ErrZeroFloors indicates a request for a dungeon without floors.
	ErrZeroFloors = errors.New("dungeon: floor count must be positive")

	// ErrUnsupportedType indicates a dungeon type with no generator yet.
	ErrUnsupportedType = errors.New("dungeon: unsupported dungeon type")

	// ErrUnknownType indicates a dungeon type name that does not exist.
	ErrUnknownType = errors.New("dungeon: unknown dungeon type")

	// ErrBadTile indicates an undecodable tile in serialized data.
	ErrBadTile = errors.New("dungeon: bad tile")
)

// FloorID numbers the floors of a dungeon from zero.
type FloorID uint16

func (id FloorID) String() string { return fmt.Sprintf("%d", uint16(id)) }

// Type is the theme of a dungeon.
type Type int

const (
	// Cave is a rocky, gloomy dungeon.
	Cave Type = iota
	// Forest is reserved; New rejects it with ErrUnsupportedType.
	Forest
)

func (t Type) String() string {
	switch t {
	case Cave:
		return "cave"
	case Forest:
		return "forest"
	}

	return fmt.Sprintf("type(%d)", int(t))
}

// ParseType is the inverse of Type.String.
func ParseType(s string) (Type, error) {
	switch s {
	case "cave":
		return Cave, nil
	case "forest":
		return Forest, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownType, s)
}

// MarshalText implements encoding.TextMarshaler.
func (t Type) MarshalText() ([]byte, error) {
	if t != Cave && t != Forest {
		return nil, fmt.Errorf("%w: %d", ErrUnknownType, int(t))
	}

	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Type) UnmarshalText(b []byte) error {
	v, err := ParseType(string(b))
	if err != nil {
		return err
	}
	*t = v

	return nil
}

// Options configures New.
type Options struct {
	// Workers bounds how many floors are generated at once.
	Workers int
	// Seed is the parent seed; floor i uses rng.Stream(Seed, i).
	Seed int64
	// GIFDir, when set, receives dir/floor_{id}.gif for every floor.
	GIFDir string
	Logger *slog.Logger
	Params floor.Params
}

// Option configures New.
type Option func(*Options)

// DefaultOptions uses GOMAXPROCS workers, rng.DefaultSeed, no GIF output,
// the floor package's default logger and floor.DefaultParams.
func DefaultOptions() Options {
	return Options{
		Workers: runtime.GOMAXPROCS(0),
		Seed:    rng.DefaultSeed,
		Logger:  floor.DefaultOptions().Logger,
		Params:  floor.DefaultParams(),
	}
}

// WithWorkers sets the worker limit. Values below 1 are ignored.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.Workers = n
		}
	}
}

// WithSeed sets the parent seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithGIFOutput captures generation frames and writes them under dir.
func WithGIFOutput(dir string) Option {
	return func(o *Options) { o.GIFDir = dir }
}

// WithLogger sets the logger passed down to every floor. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithParams sets the floor tuning.
func WithParams(p floor.Params) Option {
	return func(o *Options) { o.Params = p }
}

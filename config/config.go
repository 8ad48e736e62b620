// Package config loads cavegen settings from YAML.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cavern/boundedint"
	"github.com/katalvlaran/cavern/dungeon"
	"github.com/katalvlaran/cavern/floor"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the root of a cavegen YAML file.
type Config struct {
	Dungeon    DungeonConfig    `yaml:"dungeon"`
	Generation GenerationConfig `yaml:"generation"`
	Output     OutputConfig     `yaml:"output"`
	Server     ServerConfig     `yaml:"server"`
	Log        LogConfig        `yaml:"log"`
}

// DungeonConfig sizes the dungeon.
type DungeonConfig struct {
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	Floors  int    `yaml:"floors"`
	Type    string `yaml:"type"`
	Seed    int64  `yaml:"seed"`
	Workers int    `yaml:"workers"`
}

// GenerationConfig mirrors floor.Params.
type GenerationConfig struct {
	WallChance           int `yaml:"wall_chance"`
	FirstSmoothPasses    int `yaml:"first_smooth_passes"`
	NewWallPasses        int `yaml:"new_wall_passes"`
	SecondSmoothPasses   int `yaml:"second_smooth_passes"`
	ConnectionIterations int `yaml:"connection_iterations"`
	TreasureMin          int `yaml:"treasure_min"`
	TreasureMax          int `yaml:"treasure_max"`
	MaxAttempts          int `yaml:"max_attempts"`
	MaxSecretRounds      int `yaml:"max_secret_rounds"`
}

// OutputConfig picks the files written by `cavegen generate`.
type OutputConfig struct {
	Dir     string `yaml:"dir"`
	JSON    bool   `yaml:"json"`
	MsgPack bool   `yaml:"msgpack"`
	GIF     bool   `yaml:"gif"`
	// Frames records every generation step to dir/floor_{id}.gif.
	Frames bool `yaml:"frames"`
}

// ServerConfig configures `cavegen serve`.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns a configuration that generates five 80×50 cave floors.
func Default() Config {
	p := floor.DefaultParams()

	return Config{
		Dungeon: DungeonConfig{Width: 80, Height: 50, Floors: 5, Type: dungeon.Cave.String()},
		Generation: GenerationConfig{
			WallChance:           p.WallChance,
			FirstSmoothPasses:    p.FirstSmoothPasses,
			NewWallPasses:        p.NewWallPasses,
			SecondSmoothPasses:   p.SecondSmoothPasses,
			ConnectionIterations: p.ConnectionIterations,
			TreasureMin:          p.TreasureMin,
			TreasureMax:          p.TreasureMax,
			MaxAttempts:          p.MaxAttempts,
			MaxSecretRounds:      p.MaxSecretRounds,
		},
		Output: OutputConfig{Dir: "out", JSON: true, MsgPack: true, GIF: true},
		Server: ServerConfig{Addr: "127.0.0.1:8080"},
		Log:    LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads path and overlays it on Default. A missing path yields Default.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return &cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	return Parse(data)
}

// Parse overlays YAML data on Default and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate reports the first invalid field.
func (c *Config) Validate() error {
	lo, hi := boundedint.MinFloorSize, boundedint.MaxFloorSize
	if c.Dungeon.Width < lo || c.Dungeon.Width > hi || c.Dungeon.Height < lo || c.Dungeon.Height > hi {
		return fmt.Errorf("%w: dungeon size %dx%d outside [%d,%d]", ErrInvalid, c.Dungeon.Width, c.Dungeon.Height, lo, hi)
	}
	if c.Dungeon.Floors < 1 || c.Dungeon.Floors > 1<<16-1 {
		return fmt.Errorf("%w: dungeon.floors must be in [1,65535]", ErrInvalid)
	}
	if _, err := dungeon.ParseType(c.Dungeon.Type); err != nil {
		return fmt.Errorf("%w: dungeon.type: %w", ErrInvalid, err)
	}
	if c.Dungeon.Workers < 0 {
		return fmt.Errorf("%w: dungeon.workers must be non-negative", ErrInvalid)
	}
	if err := c.Params().Validate(); err != nil {
		return fmt.Errorf("%w: generation: %w", ErrInvalid, err)
	}
	if _, err := c.level(); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q (want text or json)", ErrInvalid, c.Log.Format)
	}

	return nil
}

// Params converts the generation section into floor.Params.
func (c *Config) Params() floor.Params {
	p := floor.DefaultParams()
	g := c.Generation
	p.WallChance = g.WallChance
	p.FirstSmoothPasses = g.FirstSmoothPasses
	p.NewWallPasses = g.NewWallPasses
	p.SecondSmoothPasses = g.SecondSmoothPasses
	p.ConnectionIterations = g.ConnectionIterations
	p.TreasureMin, p.TreasureMax = g.TreasureMin, g.TreasureMax
	p.MaxAttempts = g.MaxAttempts
	p.MaxSecretRounds = g.MaxSecretRounds

	return p
}

// DungeonType returns the parsed dungeon type.
func (c *Config) DungeonType() dungeon.Type {
	t, _ := dungeon.ParseType(c.Dungeon.Type)

	return t
}

// DungeonOptions returns the dungeon.New options the config implies.
func (c *Config) DungeonOptions(log *slog.Logger) []dungeon.Option {
	opts := []dungeon.Option{
		dungeon.WithParams(c.Params()),
		dungeon.WithLogger(log),
		dungeon.WithWorkers(c.Dungeon.Workers),
	}
	if c.Dungeon.Seed != 0 {
		opts = append(opts, dungeon.WithSeed(c.Dungeon.Seed))
	}
	if c.Output.Frames {
		opts = append(opts, dungeon.WithGIFOutput(c.Output.Dir))
	}

	return opts
}

// Logger builds the configured slog logger writing to w.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	lvl, _ := c.level()
	hopts := &slog.HandlerOptions{Level: lvl}
	if strings.EqualFold(c.Log.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, hopts))
	}

	return slog.New(slog.NewTextHandler(w, hopts))
}

func (c *Config) level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level)
	}

	return lvl, nil
}

package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cavern/config"
	"github.com/katalvlaran/cavern/dungeon"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, dungeon.Cave, cfg.DungeonType())
	assert.NoError(t, cfg.Params().Validate())
}

func TestLoad_OverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cavegen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
dungeon:
  width: 40
  floors: 2
  seed: 99
generation:
  wall_chance: 45
log:
  level: debug
  format: json
`), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 40, cfg.Dungeon.Width)
	assert.Equal(t, 50, cfg.Dungeon.Height, "unset fields keep defaults")
	assert.Equal(t, 2, cfg.Dungeon.Floors)
	assert.Equal(t, int64(99), cfg.Dungeon.Seed)
	assert.Equal(t, 45, cfg.Params().WallChance)
	assert.Equal(t, 7, cfg.Params().SecondSmoothPasses)

	var buf bytes.Buffer
	cfg.Logger(&buf).Debug("hello", "k", 1)
	assert.Contains(t, buf.String(), `"msg":"hello"`)

	assert.Len(t, cfg.DungeonOptions(cfg.Logger(&buf)), 4, "params, logger, workers, seed")
}

func TestLoad_EmptyPathIsDefault(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), *cfg)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestParse_ValidationErrors(t *testing.T) {
	cases := map[string]string{
		"too small":      "dungeon: {width: 5}",
		"too large":      "dungeon: {height: 201}",
		"no floors":      "dungeon: {floors: 0}",
		"bad type":       "dungeon: {type: swamp}",
		"bad workers":    "dungeon: {workers: -1}",
		"wall chance":    "generation: {wall_chance: 120}",
		"treasure range": "generation: {treasure_min: 9, treasure_max: 3}",
		"attempts":       "generation: {max_attempts: 0}",
		"log level":      "log: {level: loud}",
		"log format":     "log: {format: xml}",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(doc))
			assert.ErrorIs(t, err, config.ErrInvalid)
		})
	}

	_, err := config.Parse([]byte("dungeon: [oops"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, config.ErrInvalid)
}

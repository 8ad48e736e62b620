package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cavern/dungeon"
)

func TestRun_Usage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.ErrorIs(t, run(context.Background(), nil, &stdout, &stderr), errUsage)
	assert.Contains(t, stderr.String(), "usage: cavegen")

	stderr.Reset()
	assert.ErrorIs(t, run(context.Background(), []string{"dance"}, &stdout, &stderr), errUsage)
	assert.Contains(t, stderr.String(), `unknown command "dance"`)

	assert.ErrorIs(t, run(context.Background(), []string{"generate", "-bogus"}, &stdout, &stderr), errUsage)
}

func TestRun_Generate(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "cfg.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
dungeon: {width: 24, height: 16, floors: 2}
log: {level: error}
`), 0o600))
	out := filepath.Join(dir, "out")

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"generate", "-config", cfgPath, "-out", out, "-seed", "4"}, &stdout, &stderr)
	require.NoError(t, err, stderr.String())
	assert.Contains(t, stdout.String(), "wrote 2 floors")

	data, err := os.ReadFile(filepath.Join(out, "dungeon.json"))
	require.NoError(t, err)
	d, err := dungeon.FromJSON(data)
	require.NoError(t, err)
	assert.Len(t, d.Floors, 2)

	for _, name := range []string{"dungeon.msgpack", "dungeon.gif"} {
		_, err = os.Stat(filepath.Join(out, name))
		assert.NoError(t, err, name)
	}
}

func TestRun_InvalidOverride(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"generate", "-floors", "-3"}, &stdout, &stderr)
	assert.Error(t, err)
}

package noise_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/cavern/grid"
	"github.com/katalvlaran/cavern/noise"
	"github.com/katalvlaran/cavern/rng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCostOf checks the piecewise mapping at known samples.
func TestCostOf(t *testing.T) {
	// v=-1 → (8)^4 = 4096 → valley → 2048.
	assert.Equal(t, uint16(2048), noise.CostOf(-1))
	// v=0 → 16^4 = 65536 → saturates → ridge.
	assert.Equal(t, uint16(math.MaxUint16), noise.CostOf(0))
	// v=-0.5 → 12^4 = 20736 ≤ 26214 → 10368.
	assert.Equal(t, uint16(10368), noise.CostOf(-0.5))
	// v=1 saturates.
	assert.Equal(t, uint16(math.MaxUint16), noise.CostOf(1))
}

// TestFill_Deterministic verifies same seed ⇒ same map, and every value is a
// legal cost.
func TestFill_Deterministic(t *testing.T) {
	d, err := grid.NewDims(40, 30)
	require.NoError(t, err)

	a := noise.Fill(d, noise.NewBillow(noise.DefaultParams(), rng.FromSeed(5)))
	b := noise.Fill(d, noise.NewBillow(noise.DefaultParams(), rng.FromSeed(5)))
	assert.Equal(t, a.Cells(), b.Cells())
	assert.Equal(t, 1200, a.Len())

	for _, v := range a.Cells() {
		assert.True(t, v <= 13107 || v == math.MaxUint16, "unexpected cost %d", v)
	}
}

// TestBillow_Range samples the generator and checks it stays within [-1, 1].
func TestBillow_Range(t *testing.T) {
	b := noise.NewBillow(noise.DefaultParams(), rng.FromSeed(17))
	for i := 0; i < 100; i++ {
		v := b.At(float64(i)/100, float64(100-i)/100)
		assert.GreaterOrEqual(t, v, -1.0)
		assert.LessOrEqual(t, v, 1.0+1e-9)
	}
}

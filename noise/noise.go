// Package noise produces the scalar cost field a floor is carved against.
//
// A billow field (absolute-value Perlin noise) is sampled once per tile and
// mapped onto uint16 costs. Low values mark "valleys" that corridor searches
// prefer; high values (65535) mark ridges they avoid.
package noise

import (
	"math"
	"math/rand"

	"github.com/aquilax/go-perlin"

	"github.com/katalvlaran/cavern/grid"
)

// Params tunes the billow generator.
type Params struct {
	Octaves     int32
	Frequency   float64
	Lacunarity  float64
	Persistence float64
}

// DefaultParams returns the low-frequency, single-octave tuning used for
// floor generation.
func DefaultParams() Params {
	return Params{
		Octaves:     1,
		Frequency:   5.0,
		Lacunarity:  0.001,
		Persistence: 0.001,
	}
}

// Billow is a seeded billow noise source.
type Billow struct {
	p    *perlin.Perlin
	freq float64
}

// NewBillow builds a billow generator seeded from r.
func NewBillow(params Params, r *rand.Rand) *Billow {
	// go-perlin weights octave i by 1/alpha^i and scales coordinates by beta^i,
	// so persistence and lacunarity map onto alpha and beta respectively.
	alpha := 1 / params.Persistence
	return &Billow{
		p:    perlin.NewPerlin(alpha, params.Lacunarity, params.Octaves, r.Int63()),
		freq: params.Frequency,
	}
}

// At returns the billow value at (x, y), in roughly [-1, 1].
func (b *Billow) At(x, y float64) float64 {
	return math.Abs(b.p.Noise2D(x*b.freq, y*b.freq))*2 - 1
}

// ridge is the raw cost above which a tile is treated as impassable terrain.
const ridge = uint16(math.MaxUint16 / 2.5)

// Cost maps the billow value at a tile onto a uint16 path cost.
func (b *Billow) Cost(column, row, width, height int) uint16 {
	v := b.At(float64(column)/float64(width), float64(row)/float64(height))

	return CostOf(v)
}

// CostOf converts a raw billow sample into a path cost:
//
//	n = ceil((v*8 + 16)^4), saturated to 65535
//	cost = n/2 if n <= 65535/2.5, else 65535
func CostOf(v float64) uint16 {
	f := math.Ceil(math.Pow(v*8+16, 4))
	var n uint16
	switch {
	case f >= math.MaxUint16:
		n = math.MaxUint16
	case f <= 0:
		n = 0
	default:
		n = uint16(f)
	}
	if n <= ridge {
		return n / 2
	}

	return math.MaxUint16
}

// Map is a per-tile cost grid.
type Map = grid.Grid[uint16]

// Fill samples b at every point of d and returns the resulting cost map.
//
// Complexity: O(W×H).
func Fill(d grid.Dims, b *Billow) *Map {
	m := grid.New[uint16](d)
	for p := range d.Points() {
		m.Set(p, b.Cost(p.Column.Value(), p.Row.Value(), d.W(), d.H()))
	}

	return m
}

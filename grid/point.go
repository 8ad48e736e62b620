package grid

import (
	"fmt"
	"math"

	"github.com/katalvlaran/cavern/boundedint"
)

// Row is a bounded row coordinate.
type Row struct {
	v boundedint.Int[boundedint.Coord]
}

// Column is a bounded column coordinate.
type Column struct {
	v boundedint.Int[boundedint.Coord]
}

// NewRow validates n as a row coordinate.
func NewRow(n int) (Row, error) {
	v, err := boundedint.New[boundedint.Coord](n)
	if err != nil {
		return Row{}, fmt.Errorf("grid: row: %w", err)
	}

	return Row{v: v}, nil
}

// NewColumn validates n as a column coordinate.
func NewColumn(n int) (Column, error) {
	v, err := boundedint.New[boundedint.Coord](n)
	if err != nil {
		return Column{}, fmt.Errorf("grid: column: %w", err)
	}

	return Column{v: v}, nil
}

// Value returns the row as a plain int.
func (r Row) Value() int { return r.v.Value() }

// Get returns the underlying bounded value.
func (r Row) Get() boundedint.Int[boundedint.Coord] { return r.v }

// Add returns r+n or an overflow error.
func (r Row) Add(n int) (Row, error) {
	v, err := r.v.Add(n)
	return Row{v: v}, err
}

// Sub returns r-n or an underflow error.
func (r Row) Sub(n int) (Row, error) {
	v, err := r.v.Sub(n)
	return Row{v: v}, err
}

// SaturatingAdd returns r+n clamped to the coordinate range.
func (r Row) SaturatingAdd(n int) Row { return Row{v: r.v.SaturatingAdd(n)} }

// SaturatingSub returns r-n clamped to the coordinate range.
func (r Row) SaturatingSub(n int) Row { return Row{v: r.v.SaturatingSub(n)} }

// Value returns the column as a plain int.
func (c Column) Value() int { return c.v.Value() }

// Get returns the underlying bounded value.
func (c Column) Get() boundedint.Int[boundedint.Coord] { return c.v }

// Add returns c+n or an overflow error.
func (c Column) Add(n int) (Column, error) {
	v, err := c.v.Add(n)
	return Column{v: v}, err
}

// Sub returns c-n or an underflow error.
func (c Column) Sub(n int) (Column, error) {
	v, err := c.v.Sub(n)
	return Column{v: v}, err
}

// SaturatingAdd returns c+n clamped to the coordinate range.
func (c Column) SaturatingAdd(n int) Column { return Column{v: c.v.SaturatingAdd(n)} }

// SaturatingSub returns c-n clamped to the coordinate range.
func (c Column) SaturatingSub(n int) Column { return Column{v: c.v.SaturatingSub(n)} }

// Point is a (row, column) position on a floor.
type Point struct {
	Row    Row
	Column Column
}

// P builds a Point from raw coordinates, clamping each into the coordinate
// range. It is meant for literals in tests and examples; library code uses
// MustPoint or NewPoint, which never clamp.
func P(row, column int) Point {
	return Point{
		Row:    Row{v: boundedint.NewClamped[boundedint.Coord](row)},
		Column: Column{v: boundedint.NewClamped[boundedint.Coord](column)},
	}
}

// MustPoint builds a Point from coordinates the caller knows are in range.
// It panics otherwise.
func MustPoint(row, column int) Point {
	return Point{
		Row:    Row{v: boundedint.MustNew[boundedint.Coord](row)},
		Column: Column{v: boundedint.MustNew[boundedint.Coord](column)},
	}
}

// NewPoint validates both coordinates.
func NewPoint(row, column int) (Point, error) {
	r, err := NewRow(row)
	if err != nil {
		return Point{}, err
	}
	c, err := NewColumn(column)
	if err != nil {
		return Point{}, err
	}

	return Point{Row: r, Column: c}, nil
}

// Compare orders points by row, then column.
func (p Point) Compare(q Point) int {
	if c := p.Row.v.Compare(q.Row.v); c != 0 {
		return c
	}

	return p.Column.v.Compare(q.Column.v)
}

// String formats p as "(row,col)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row.Value(), p.Column.Value())
}

// DistanceSquared returns the squared Euclidean distance between a and b.
func DistanceSquared(a, b Point) int64 {
	dr := int64(a.Row.Value() - b.Row.Value())
	dc := int64(a.Column.Value() - b.Column.Value())

	return dr*dr + dc*dc
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return math.Sqrt(float64(DistanceSquared(a, b)))
}

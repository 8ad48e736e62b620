package grid

import (
	"errors"
	"iter"

	"github.com/katalvlaran/cavern/boundedint"
)

// ErrLengthMismatch indicates a cell buffer whose length is not width×height.
var ErrLengthMismatch = errors.New("grid: cell count does not match dimensions")

// Size is a bounded floor dimension.
type Size = boundedint.Int[boundedint.FloorSize]

// Dims holds a floor's width and height and implements all geometry on it.
type Dims struct {
	Width  Size
	Height Size
}

// NewDims validates raw dimensions.
func NewDims(width, height int) (Dims, error) {
	w, err := boundedint.New[boundedint.FloorSize](width)
	if err != nil {
		return Dims{}, err
	}
	h, err := boundedint.New[boundedint.FloorSize](height)
	if err != nil {
		return Dims{}, err
	}

	return Dims{Width: w, Height: h}, nil
}

// W returns the width as an int.
func (d Dims) W() int { return d.Width.Value() }

// H returns the height as an int.
func (d Dims) H() int { return d.Height.Value() }

// Len returns width×height.
func (d Dims) Len() int { return d.W() * d.H() }

// Contains reports whether p lies within the dimensions.
func (d Dims) Contains(p Point) bool {
	return p.Row.Value() < d.H() && p.Column.Value() < d.W()
}

// Index returns the row-major offset of p. The caller must ensure Contains(p).
// Complexity: O(1).
func (d Dims) Index(p Point) int {
	return p.Row.Value()*d.W() + p.Column.Value()
}

// PointOf converts a row-major offset back into a Point.
// Complexity: O(1).
func (d Dims) PointOf(idx int) Point {
	return MustPoint(idx/d.W(), idx%d.W())
}

// PointAt returns the point at (row, column) and whether it lies inside the
// dimensions. Negative or too-large inputs report false.
func (d Dims) PointAt(row, column int) (Point, bool) {
	if row < 0 || column < 0 || row >= d.H() || column >= d.W() {
		return Point{}, false
	}

	return MustPoint(row, column), true
}

// InRing reports whether p is on the outer 1-tile frame (or outside entirely).
func (d Dims) InRing(p Point) bool {
	r, c := p.Row.Value(), p.Column.Value()

	return r == 0 || c == 0 || r >= d.H()-1 || c >= d.W()-1
}

// Points yields every point in column-major order: all rows of column 0,
// then all rows of column 1, and so on.
func (d Dims) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for c := 0; c < d.W(); c++ {
			for r := 0; r < d.H(); r++ {
				if !yield(MustPoint(r, c)) {
					return
				}
			}
		}
	}
}

// orthogonal lists (drow, dcol) offsets in down, right, up, left order.
var orthogonal = [4][2]int{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}

// diagonal lists the eight surrounding offsets, row by row.
var diagonal = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Legal4 returns the orthogonal neighbours of p that are inside the grid and
// not on the ring, in down, right, up, left order.
//
//	o x o
//	x p x
//	o x o
func (d Dims) Legal4(p Point) []Point {
	return d.legal(p, orthogonal[:])
}

// Legal8 returns all eight surrounding neighbours of p that are inside the
// grid and not on the ring.
func (d Dims) Legal8(p Point) []Point {
	return d.legal(p, diagonal[:])
}

// DownRight returns the neighbours below and to the right of p that are
// inside the grid and not on the ring.
//
//	o o o
//	o p x
//	o x o
func (d Dims) DownRight(p Point) []Point {
	return d.legal(p, orthogonal[:2])
}

// Rect returns every in-grid point of the (2dy+1)×(2dx+1) rectangle centred
// on p, excluding p itself, along with how many rectangle positions fall
// outside the grid. Ring points are included.
func (d Dims) Rect(p Point, dx, dy int) ([]Point, int) {
	in := make([]Point, 0, (2*dx+1)*(2*dy+1)-1)
	outside := 0
	r, c := p.Row.Value(), p.Column.Value()
	for dr := -dy; dr <= dy; dr++ {
		for dc := -dx; dc <= dx; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			q, ok := d.PointAt(r+dr, c+dc)
			if !ok {
				outside++
				continue
			}
			in = append(in, q)
		}
	}

	return in, outside
}

func (d Dims) legal(p Point, offsets [][2]int) []Point {
	out := make([]Point, 0, len(offsets))
	r, c := p.Row.Value(), p.Column.Value()
	for _, o := range offsets {
		q, ok := d.PointAt(r+o[0], c+o[1])
		if !ok || d.InRing(q) {
			continue
		}
		out = append(out, q)
	}

	return out
}

// Grid is a row-major buffer of T sized by Dims.
type Grid[T any] struct {
	Dims
	cells []T
}

// New allocates a grid filled with the zero value of T.
func New[T any](d Dims) *Grid[T] {
	return &Grid[T]{Dims: d, cells: make([]T, d.Len())}
}

// FromCells wraps an existing row-major slice. The slice length must equal
// d.Len(); the grid takes ownership of it.
func FromCells[T any](d Dims, cells []T) (*Grid[T], error) {
	if len(cells) != d.Len() {
		return nil, ErrLengthMismatch
	}

	return &Grid[T]{Dims: d, cells: cells}, nil
}

// At returns the value at p. Panics if p is outside the grid.
func (g *Grid[T]) At(p Point) T {
	return g.cells[g.Index(p)]
}

// Set stores v at p. Panics if p is outside the grid.
func (g *Grid[T]) Set(p Point, v T) {
	g.cells[g.Index(p)] = v
}

// Len returns the number of cells.
func (g *Grid[T]) Len() int { return len(g.cells) }

// Cells returns a copy of the row-major buffer.
func (g *Grid[T]) Cells() []T {
	out := make([]T, len(g.cells))
	copy(out, g.cells)

	return out
}

// Clone returns a deep copy of the grid buffer.
func (g *Grid[T]) Clone() *Grid[T] {
	return &Grid[T]{Dims: g.Dims, cells: g.Cells()}
}

// All yields every (point, value) pair in column-major order.
func (g *Grid[T]) All() iter.Seq2[Point, T] {
	return func(yield func(Point, T) bool) {
		for p := range g.Points() {
			if !yield(p, g.At(p)) {
				return
			}
		}
	}
}

// Rows yields each row of the buffer as a sub-slice, top to bottom.
// The slices alias the grid; callers must not retain or modify them.
func (g *Grid[T]) Rows() iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		w := g.W()
		for r := 0; r < g.H(); r++ {
			if !yield(r, g.cells[r*w:(r+1)*w]) {
				return
			}
		}
	}
}

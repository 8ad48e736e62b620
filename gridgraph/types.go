// Package gridgraph defines core types, options, and sentinel errors
// for treating a floor grid as an implicit graph.
package gridgraph

import (
	"errors"
	"slices"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/cavern/grid"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrNilPredicate indicates New was called without an open-cell predicate.
	ErrNilPredicate = errors.New("gridgraph: open predicate is nil")
	// ErrClosedStart indicates RegionAt was asked to grow from a closed cell.
	ErrClosedStart = errors.New("gridgraph: start cell is not open")
	// ErrEmptySet indicates Bridge was given no source or no target cells.
	ErrEmptySet = errors.New("gridgraph: source and target sets must be non-empty")
	// ErrNoPath indicates no conversion path exists between two cell sets.
	ErrNoPath = errors.New("gridgraph: no path between specified cells")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: down, right, up, left.
	Conn4 Connectivity = iota
	// Conn8 uses all eight surrounding cells.
	Conn8
)

// GridGraph views a grid.Dims as a graph whose vertices are the interior
// (non-ring) cells. A cell is "open" when the predicate says so; regions are
// maximal connected sets of open cells. The predicate is consulted lazily, so
// a GridGraph over a mutable floor reflects the floor's current state.
type GridGraph struct {
	Dims grid.Dims
	Conn Connectivity
	open func(grid.Point) bool
}

// Region is one connected set of open cells and the closed cells that touch it.
//
// Interior lists cells in discovery order; Border is sorted by (row, column)
// so iteration over it is deterministic.
type Region struct {
	Interior []grid.Point
	Border   []grid.Point

	interior mapset.Set[grid.Point]
	border   mapset.Set[grid.Point]
}

// Contains reports whether p is an interior cell of r.
// Complexity: O(1).
func (r Region) Contains(p grid.Point) bool { return r.interior.Has(p) }

// OnBorder reports whether p is a border cell of r.
// Complexity: O(1).
func (r Region) OnBorder(p grid.Point) bool { return r.border.Has(p) }

// Size returns the number of interior cells.
func (r Region) Size() int { return r.interior.Size() }

// BorderSet exposes the border as a set for callers that merge borders.
func (r Region) BorderSet() mapset.Set[grid.Point] { return r.border }

// newRegion seals interior/border collections into a Region.
func newRegion(interior []grid.Point, in, border mapset.Set[grid.Point]) Region {
	b := make([]grid.Point, 0, border.Size())
	border.Each(func(p grid.Point) { b = append(b, p) })
	slices.SortFunc(b, grid.Point.Compare)

	return Region{Interior: interior, Border: b, interior: in, border: border}
}

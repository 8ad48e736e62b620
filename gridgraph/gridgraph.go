// Package gridgraph treats a floor grid as an implicit graph. It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Identification of connected open regions and the closed cells around them
//   - Minimal-conversion paths between cell sets
//
// Ring cells (the outermost frame) are never vertices.
package gridgraph

import (
	"github.com/katalvlaran/cavern/grid"
)

// New wraps d with an open-cell predicate.
// Returns ErrNilPredicate if open is nil.
// Complexity: O(1).
func New(d grid.Dims, open func(grid.Point) bool, conn Connectivity) (*GridGraph, error) {
	if open == nil {
		return nil, ErrNilPredicate
	}

	return &GridGraph{Dims: d, Conn: conn, open: open}, nil
}

// Open reports whether p is an open interior cell.
// Complexity: O(1) plus the predicate.
func (gg *GridGraph) Open(p grid.Point) bool {
	return gg.Dims.Contains(p) && !gg.Dims.InRing(p) && gg.open(p)
}

// Neighbors returns the legal neighbors of p for gg.Conn, open or not.
// Complexity: O(1).
func (gg *GridGraph) Neighbors(p grid.Point) []grid.Point {
	if gg.Conn == Conn8 {
		return gg.Dims.Legal8(p)
	}

	return gg.Dims.Legal4(p)
}

// Package grid maps 2D floor coordinates onto flat, row-major storage.
//
// What:
//
//   - Row and Column are bounded coordinates in [0, MaxFloorSize].
//   - Point pairs a Row with a Column; it is a comparable value type usable as
//     a map or set key and ordered by (row, column).
//   - Dims carries a floor's width and height and owns all geometry: the
//     row-major index math, ring detection, and neighbour rules.
//   - Grid[T] is a flat []T of length width×height addressed through Dims.
//
// Index math:
//
//	index = row*width + column
//
//	     0  1  2  3
//	  0 [a, b, c, d]
//	  1 [e, f, g, h]    Point{row 1, column 2} → 1*4 + 2 = 6 → g
//	  2 [i, j, k, l]
//
// Ring:
//
//	The outermost 1-tile frame of a floor is always wall. Neighbour helpers
//	(Legal4, Legal8, DownRight) never return ring points.
//
// Complexity:
//
//   - Index, PointOf, At, Set: O(1).
//   - Points / All iteration: O(W×H).
package grid

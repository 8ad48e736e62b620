// Package gridgraph treats a floor grid as a graph, enabling region analysis
// and minimal-cost bridging between regions.
//
// What:
//
//   - GridGraph wraps grid.Dims with an "open cell" predicate.
//   - Regions identifies connected sets of open cells and, for each, the
//     closed cells on its edge (its border).
//   - Bridge computes minimal conversions (0-1 BFS) to connect two cell sets.
//
// Why:
//
//   - Cave floors: detect separate caves, the walls that enclose each one,
//     and verify that a finished floor is a single walkable region.
//   - Fallback corridors: when a weighted corridor search is boxed in, a
//     bridge always exists through interior walls.
//
// Complexity:
//
//   - Regions:  O(W×H×d), Memory: O(W×H)    (d = number of neighbors, 4 or 8).
//   - RegionAt: O(R×d) for a region of R cells.
//   - Bridge:   O(W×H×d), Memory: O(W×H).
//
// Errors:
//
//   - ErrNilPredicate: New without a predicate.
//   - ErrClosedStart:  RegionAt from a closed cell.
//   - ErrEmptySet:     Bridge with an empty source or target.
//   - ErrNoPath:       no bridge exists (only when a set lies on the ring).
package gridgraph

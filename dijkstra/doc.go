// Package dijkstra provides Dijkstra's shortest-path search over implicit
// graphs with non-negative edge costs.
//
// Overview:
//
//   - ShortestPath expands nodes produced by a successor function in order of
//     increasing distance and stops at the first node accepted by a goal
//     predicate. Nodes can be any comparable type, so a grid search uses
//     grid.Point directly without building an explicit graph first.
//   - Supports distance caps and "impassable" edge thresholds.
//
// When to use:
//
//   - Carving corridors across a cost field where the target is a predicate
//     ("any tile of the other cave") rather than one fixed node.
//   - Any search where materializing the whole graph up front is wasteful.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V) over explored nodes.
//   - Space: O(V + E).
//
// Determinism:
//
//   - Equal-distance ties pop in push order; given a deterministic successor
//     function the returned path is reproducible.
//
// Example:
//
//	path, cost, err := dijkstra.ShortestPath(start,
//	    func(n int) []dijkstra.Successor[int] { ... },
//	    func(n int) bool { return n == target },
//	)
package dijkstra

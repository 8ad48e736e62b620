// Package prim_kruskal computes minimum spanning trees and forests on an
// undirected, weighted *core.Graph.
//
// What & Why
//
//   - Given an undirected weighted graph G = (V, E), a minimum spanning forest
//     keeps, per connected component, the lightest set of edges that still
//     spans it. Floor generation uses it to prune the border-link graph down
//     to the cheapest set of corridors that preserves connectivity.
//
// Algorithms Provided
//
//   - SpanningForest(g) ([]core.Edge[K], int64, error)
//     Kruskal without the connectivity requirement.
//
//   - Kruskal(g) ([]core.Edge[K], int64, error)
//     Sort all edges by weight, union-find, stop at |V|−1 edges.
//     Time: O(E log E + α(V)·E). Space: O(V + E).
//     Determinism: graph.Edges() is in insertion order and the sort is stable.
//
//   - Prim(g, root) ([]core.Edge[K], int64, error)
//     Grow one tree from root with a min-heap. Time: O(E log V).
//
//   - Compute(g, opts...) dispatches by WithMethod.
//
// Error Conditions
//
//   - ErrInvalidGraph: nil, directed, or unweighted graph.
//   - ErrDisconnected: Kruskal/Prim on an empty or disconnected graph.
//   - core.ErrVertexNotFound: Prim root missing.
//   - ErrUnknownMethod: Compute with an unknown method name.
package prim_kruskal

// Package core provides a thread-safe, generic in-memory Graph used to track
// which cave borders have been linked while a floor is built.
//
// The Graph G = (V,E) is keyed by any ordered vertex type K and supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Weighted vs. unweighted edges (WithWeighted)
//   - Self-loops (WithLoops)
//   - Constant-time edge lookups via nested maps:
//     adjacency[from][to] = edgeID
//   - Monotonic Edge.ID generation (1, 2, …) giving a stable insertion order
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Why use core.Graph?
//
//   - Deterministic iteration: Vertices(), Neighbors() are sorted by K and
//     Edges() by insertion ID, so algorithms built on top (SCC, MST) are
//     reproducible for a fixed seed.
//   - Clone support for speculative edits.
//
// Core Methods:
//
//	AddVertex(id K)                          // O(1), idempotent
//	HasVertex(id K) bool                     // O(1)
//	AddEdge(from, to K, w int64) (uint64, error) // O(1)
//	HasEdge(from, to K) bool                 // O(1)
//	EdgeBetween(from, to K) (Edge[K], bool)  // O(1)
//	RemoveEdge(from, to K) error             // O(1)
//	Neighbors(id K) ([]K, error)             // O(d·log d)
//	Vertices() []K                           // O(V·log V)
//	Edges() []Edge[K]                        // O(E·log E)
//	VertexCount(), EdgeCount() int           // O(1)
//	Clone() *Graph[K]                        // O(V+E)
//
// Errors:
//
//	ErrVertexNotFound      – missing vertex
//	ErrEdgeNotFound        – missing edge
//	ErrBadWeight           – non-zero weight on unweighted graph
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – second edge between the same endpoints
package core

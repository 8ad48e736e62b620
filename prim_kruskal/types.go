// Package prim_kruskal defines configuration options and sentinel errors for MST computation.
// It supports selecting between Kruskal and Prim algorithms via MSTOptions.
package prim_kruskal

import (
	"cmp"
	"errors"

	"github.com/katalvlaran/cavern/core"
)

// ErrInvalidGraph indicates that MST algorithms require an undirected, weighted graph.
// Returned when graph is nil, directed, or unweighted.
var ErrInvalidGraph = errors.New("prim_kruskal: MST requires undirected, weighted graph")

// ErrDisconnected indicates that the graph is not fully connected, so a spanning
// tree covering all vertices cannot be formed.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrUnknownMethod indicates an MSTOptions.Method outside MethodPrim/MethodKruskal.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm to run, and for Prim, which
// starting vertex to use.
type MSTOptions[K cmp.Ordered] struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting vertex for Prim's algorithm. Unused by Kruskal.
	Root K
}

// Option configures MSTOptions.
type Option[K cmp.Ordered] func(*MSTOptions[K])

// WithMethod sets the algorithm Method.
func WithMethod[K cmp.Ordered](m string) Option[K] {
	return func(opts *MSTOptions[K]) { opts.Method = m }
}

// WithRoot sets the starting vertex for Prim's algorithm. Kruskal ignores it.
func WithRoot[K cmp.Ordered](root K) Option[K] {
	return func(opts *MSTOptions[K]) { opts.Root = root }
}

// DefaultOptions returns MSTOptions initialized for Kruskal.
func DefaultOptions[K cmp.Ordered]() MSTOptions[K] {
	return MSTOptions[K]{Method: MethodKruskal}
}

// Compute selects and runs the MST algorithm based on the options.
//
//	– MethodKruskal: Kruskal(graph).
//	– MethodPrim:    Prim(graph, Root).
//	– otherwise:     ErrUnknownMethod.
func Compute[K cmp.Ordered](graph *core.Graph[K], opts ...Option[K]) ([]core.Edge[K], int64, error) {
	o := DefaultOptions[K]()
	for _, fn := range opts {
		fn(&o)
	}

	switch o.Method {
	case MethodKruskal:
		return Kruskal(graph)
	case MethodPrim:
		return Prim(graph, o.Root)
	default:
		return nil, 0, ErrUnknownMethod
	}
}

// validate rejects graphs no MST routine can use.
func validate[K cmp.Ordered](graph *core.Graph[K]) error {
	if graph == nil || !graph.Weighted() || graph.Directed() {
		return ErrInvalidGraph
	}

	return nil
}

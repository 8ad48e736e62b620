// Package core defines the generic Graph and Edge types and the sentinel
// errors returned by graph mutations.
package core

import (
	"cmp"
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a non-zero weight provided to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a second edge between the same endpoints.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge represents a connection between two vertices.
//
// ID is assigned at insertion (1, 2, …) and never reused, so sorting by ID
// recovers insertion order.
type Edge[K cmp.Ordered] struct {
	ID     uint64
	From   K
	To     K
	Weight int64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(c *config)

// config holds the immutable construction-time flags.
type config struct {
	directed   bool
	weighted   bool
	allowLoops bool
}

// WithDirected sets whether new edges are one-way (true) or mirrored (false).
func WithDirected(directed bool) GraphOption {
	return func(c *config) { c.directed = directed }
}

// WithWeighted allows non-zero edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(c *config) { c.weighted = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(c *config) { c.allowLoops = true }
}

// Graph is the core in-memory graph data structure.
//
// muVert protects vertices; muEdgeAdj protects edges and adjacency.
// Lock order is always muVert before muEdgeAdj.
type Graph[K cmp.Ordered] struct {
	muVert    sync.RWMutex
	muEdgeAdj sync.RWMutex

	cfg config

	nextEdgeID uint64
	vertices   map[K]struct{}
	edges      map[uint64]*Edge[K]

	// adjacency[from][to] = edge ID; undirected edges are mirrored.
	adjacency map[K]map[K]uint64
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph is undirected, unweighted, with no loops.
// Complexity: O(1)
func NewGraph[K cmp.Ordered](opts ...GraphOption) *Graph[K] {
	g := &Graph[K]{
		vertices:  make(map[K]struct{}),
		edges:     make(map[uint64]*Edge[K]),
		adjacency: make(map[K]map[K]uint64),
	}
	for _, opt := range opts {
		opt(&g.cfg)
	}

	return g
}

// Directed reports the construction-time directedness flag.
func (g *Graph[K]) Directed() bool { return g.cfg.directed }

// Weighted reports whether non-zero weights are permitted.
func (g *Graph[K]) Weighted() bool { return g.cfg.weighted }

// Looped reports whether self-loops are permitted.
func (g *Graph[K]) Looped() bool { return g.cfg.allowLoops }

// Package dfs defines types and options for depth-first search traversal,
// including cancellation, pre-/post-order hooks, depth limiting, neighbor filtering
// and full-graph (forest) traversal.
package dfs

import (
	"cmp"
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS or
	// StronglyConnectedComponents.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the specified start vertex ID
	// does not exist in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, startID, opts...).
type Option[K cmp.Ordered] func(*Options[K])

// Options holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when filters and hooks are O(1).
type Options[K cmp.Ordered] struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked immediately upon discovering a vertex (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(id K) error

	// OnExit, if non-nil, is invoked after all descendants of a vertex
	// have been explored (post-order), before appending to result.Order.
	OnExit func(id K) error

	// MaxDepth, if non-negative, limits recursion to the given depth.
	// A depth of 0 visits only the start vertex. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each neighbor ID before recursing.
	// Return true to traverse into that neighbor, false to skip it.
	FilterNeighbor func(id K) bool

	// FullTraversal, if true, runs DFS from every unvisited vertex in the graph.
	FullTraversal bool

	// SkippedNeighbors counts neighbors rejected by FilterNeighbor.
	SkippedNeighbors int
}

// DefaultOptions returns Options with a background context, no hooks,
// no depth limit and single-source traversal.
func DefaultOptions[K cmp.Ordered]() Options[K] {
	return Options[K]{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the Context for DFS traversal.
// Passing a nil context has no effect.
func WithContext[K cmp.Ordered](ctx context.Context) Option[K] {
	return func(o *Options[K]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit[K cmp.Ordered](fn func(id K) error) Option[K] {
	return func(o *Options[K]) { o.OnVisit = fn }
}

// WithOnExit installs fn as a post-order hook.
func WithOnExit[K cmp.Ordered](fn func(id K) error) Option[K] {
	return func(o *Options[K]) { o.OnExit = fn }
}

// WithMaxDepth limits traversal depth to limit.
func WithMaxDepth[K cmp.Ordered](limit int) Option[K] {
	return func(o *Options[K]) { o.MaxDepth = limit }
}

// WithFilterNeighbor skips neighbors for which fn returns false.
func WithFilterNeighbor[K cmp.Ordered](fn func(id K) bool) Option[K] {
	return func(o *Options[K]) { o.FilterNeighbor = fn }
}

// WithFullTraversal restarts DFS from each unvisited vertex, covering
// disconnected components.
func WithFullTraversal[K cmp.Ordered]() Option[K] {
	return func(o *Options[K]) { o.FullTraversal = true }
}

// Result captures the outcome of a depth-first traversal.
type Result[K cmp.Ordered] struct {
	// Order records vertices in the sequence they finished (post-order).
	Order []K

	// Depth maps each vertex ID to its distance (#edges) from its tree root.
	Depth map[K]int

	// Parent maps each vertex to the vertex it was first discovered from.
	// Tree roots do not appear.
	Parent map[K]K

	// Visited flags which vertices were reached.
	Visited map[K]bool

	// SkippedNeighbors aggregates FilterNeighbor rejections across all trees.
	SkippedNeighbors int
}

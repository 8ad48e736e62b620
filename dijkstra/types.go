// Package dijkstra defines the types and options for a shortest-path search
// over an implicit graph described by a successor function.
//
// Options:
//
//	– MaxDistance:      optional cap on distances to explore; nodes beyond are skipped.
//	– InfEdgeThreshold: edges with cost >= this threshold are treated as impassable.
//
// Errors (sentinel):
//
//	– ErrNilSuccessors   if the successor function is nil.
//	– ErrNilGoal         if the goal predicate is nil.
//	– ErrNoPath          if no goal node is reachable under the given limits.
//	– ErrNegativeWeight  if a successor reports a negative cost.
//	– ErrBadMaxDistance  if MaxDistance < 0.
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by ShortestPath.
var (
	// ErrNilSuccessors indicates a nil successor function.
	ErrNilSuccessors = errors.New("dijkstra: successor function is nil")

	// ErrNilGoal indicates a nil goal predicate.
	ErrNilGoal = errors.New("dijkstra: goal predicate is nil")

	// ErrNoPath indicates the search exhausted every reachable node without
	// satisfying the goal.
	ErrNoPath = errors.New("dijkstra: no path to goal")

	// ErrNegativeWeight indicates a successor reported a negative edge cost.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Successor is one outgoing edge of an implicit graph: the node reached and
// the cost of the step.
type Successor[N comparable] struct {
	Node N
	Cost int64
}

// Options configures the search.
//
// MaxDistance      – nodes whose distance would exceed this are not explored.
// InfEdgeThreshold – edges with cost ≥ this threshold are skipped.
type Options struct {
	MaxDistance      int64
	InfEdgeThreshold int64
}

// Option represents a functional option for configuring ShortestPath.
type Option func(*Options)

// WithMaxDistance sets a maximum distance threshold.
// Negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a cost at or above which edges are
// non-traversable. Zero or negative values panic with ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns Options with no distance cap and no impassable edges.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
	}
}

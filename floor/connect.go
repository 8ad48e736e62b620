package floor

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/cavern/core"
	"github.com/katalvlaran/cavern/dfs"
	"github.com/katalvlaran/cavern/grid"
	"github.com/katalvlaran/cavern/prim_kruskal"
)

type policyKind int

const (
	fullyConnect policyKind = iota
	finite
	until
)

// Policy decides when connection synthesis stops adding links.
type Policy struct {
	kind policyKind
	n    int
}

// FullyConnect links borders until they form a single component.
func FullyConnect() Policy { return Policy{kind: fullyConnect} }

// Finite stops after n border iterations, or earlier once fully connected.
func Finite(n int) Policy { return Policy{kind: finite, n: n} }

// Until stops once at most k components remain.
func Until(k int) Policy { return Policy{kind: until, n: k} }

func (p Policy) String() string {
	switch p.kind {
	case finite:
		return fmt.Sprintf("finite(%d)", p.n)
	case until:
		return fmt.Sprintf("until(%d)", p.n)
	default:
		return "fully_connect"
	}
}

// done reports whether synthesis should stop.
func (p Policy) done(iterations, components int) bool {
	switch p.kind {
	case finite:
		return iterations >= p.n || components <= 1
	case until:
		return components <= p.n
	default:
		return components <= 1
	}
}

// Endpoint is a border tile together with the border it belongs to.
type Endpoint struct {
	Point  grid.Point
	Border BorderID
}

// Connection links the closest tiles of two borders.
type Connection struct {
	// DistanceSquared is the squared Euclidean distance between the endpoints.
	DistanceSquared int64
	From, To        Endpoint
}

// BuildConnections links borders under policy and prunes the result to a
// minimum spanning forest. A single border yields no connections.
func (s *HasBorders) BuildConnections(policy Policy) *HasConnections {
	b := take(&s.b)
	b.connections = b.connect(policy)

	return &HasConnections{b: b}
}

// Connections returns the links chosen by BuildConnections.
func (s *HasConnections) Connections() []Connection {
	b := peek(s.b)

	return slices.Clone(b.connections)
}

// connect implements BuildConnections.
//
// Steps:
//  1. One graph vertex per border.
//  2. Cycle over borders; for each, link it to the closest tile of any
//     border it is not yet adjacent to, weighting the edge by squared
//     distance, then recount components.
//  3. Stop when the policy is satisfied or a full pass adds nothing.
//  4. Keep only connections on a minimum spanning forest.
func (b *builder) connect(policy Policy) []Connection {
	if len(b.borders) <= 1 {
		return nil
	}

	// 1. Vertices.
	g := core.NewGraph[int](core.WithWeighted())
	for _, br := range b.borders {
		g.AddVertex(br.ID.n)
	}
	byID := slices.Clone(b.borders)
	slices.SortFunc(byID, func(x, y Border) int { return x.ID.n - y.ID.n })

	// 2–3. Grow.
	recorded := make(map[[2]int]Connection)
	iterations, components := 0, len(b.borders)
	for {
		added := false
		for _, br := range b.borders {
			if policy.done(iterations, components) {
				return b.prune(g, recorded)
			}
			iterations++

			c, ok := closest(br, byID, g)
			if !ok {
				continue
			}
			if _, err := g.AddEdge(c.From.Border.n, c.To.Border.n, c.DistanceSquared); err != nil {
				panic(fmt.Sprintf("floor %d: linking %s: %v", b.id, br.ID, err))
			}
			recorded[edgeKey(c.From.Border.n, c.To.Border.n)] = c
			added = true

			n, err := dfs.CountComponents(g)
			if err != nil {
				panic(err)
			}
			components = n
		}
		if !added {
			b.log.Debug("connection pass added nothing", "policy", policy.String(), "components", components)
			return b.prune(g, recorded)
		}
	}
}

// prune keeps the recorded connections whose edge survives Kruskal.
func (b *builder) prune(g *core.Graph[int], recorded map[[2]int]Connection) []Connection {
	forest, _, err := prim_kruskal.SpanningForest(g)
	if err != nil {
		panic(err)
	}
	out := make([]Connection, 0, len(forest))
	for _, e := range forest {
		out = append(out, recorded[edgeKey(e.From, e.To)])
	}
	b.log.Debug("connections built", "recorded", len(recorded), "kept", len(out))

	return out
}

func edgeKey(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}

	return [2]int{a, b}
}

// closest finds the nearest tile pair between from and any border it is not
// yet linked to. Candidates are scanned by ascending ID and sorted points, so
// the first minimal pair wins ties.
func closest(from Border, byID []Border, g *core.Graph[int]) (Connection, bool) {
	best := Connection{DistanceSquared: math.MaxInt64}
	found := false
	for _, other := range byID {
		if other.ID == from.ID || g.HasEdge(from.ID.n, other.ID.n) {
			continue
		}
		for _, p := range from.Points {
			for _, q := range other.Points {
				d := grid.DistanceSquared(p, q)
				if d >= best.DistanceSquared {
					continue
				}
				best = Connection{
					DistanceSquared: d,
					From:            Endpoint{Point: p, Border: from.ID},
					To:              Endpoint{Point: q, Border: other.ID},
				}
				found = true
				if d == 0 {
					return best, true
				}
			}
		}
	}

	return best, found
}

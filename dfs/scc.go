package dfs

import (
	"cmp"

	"github.com/katalvlaran/cavern/core"
)

// StronglyConnectedComponents returns the SCCs of g using Kosaraju's
// two-pass algorithm. On an undirected graph every edge is mirrored, so the
// result is the set of connected components.
//
// Components are listed in the order the second pass discovers them; each
// component lists its vertices in discovery order.
//
// Steps:
//  1. Full DFS over g recording post-order finish times.
//  2. Build the transpose adjacency from g.Edges().
//  3. Walk vertices by decreasing finish time; each unvisited root in the
//     transpose collects one component.
//
// Complexity: O(V+E) plus the sorting done by core accessors.
func StronglyConnectedComponents[K cmp.Ordered](g *core.Graph[K]) ([][]K, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	// 1. First pass: finish order.
	first, err := DFS(g, *new(K), WithFullTraversal[K]())
	if err != nil {
		return nil, err
	}

	// 2. Transpose adjacency.
	rev := make(map[K][]K, g.VertexCount())
	for _, e := range g.Edges() {
		rev[e.To] = append(rev[e.To], e.From)
		if !g.Directed() {
			rev[e.From] = append(rev[e.From], e.To)
		}
	}

	// 3. Second pass over the transpose, iteratively.
	seen := make(map[K]bool, len(first.Order))
	var comps [][]K
	for i := len(first.Order) - 1; i >= 0; i-- {
		root := first.Order[i]
		if seen[root] {
			continue
		}
		seen[root] = true
		comp := []K{root}
		stack := []K{root}
		for len(stack) > 0 {
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, u := range rev[v] {
				if seen[u] {
					continue
				}
				seen[u] = true
				comp = append(comp, u)
				stack = append(stack, u)
			}
		}
		comps = append(comps, comp)
	}

	return comps, nil
}

// CountComponents returns the number of strongly connected components of g.
// A graph with no vertices has zero components.
func CountComponents[K cmp.Ordered](g *core.Graph[K]) (int, error) {
	comps, err := StronglyConnectedComponents(g)
	if err != nil {
		return 0, err
	}

	return len(comps), nil
}

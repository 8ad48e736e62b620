package core

import (
	"slices"
)

// AddVertex inserts id if absent. Idempotent.
// Complexity: O(1).
func (g *Graph[K]) AddVertex(id K) {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	g.addVertexLocked(id)
}

// addVertexLocked requires both locks held.
func (g *Graph[K]) addVertexLocked(id K) {
	if _, ok := g.vertices[id]; ok {
		return
	}
	g.vertices[id] = struct{}{}
	g.adjacency[id] = make(map[K]uint64)
}

// HasVertex reports whether id exists.
// Complexity: O(1).
func (g *Graph[K]) HasVertex(id K) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	_, ok := g.vertices[id]

	return ok
}

// AddEdge inserts an edge from→to with weight w and returns its ID.
// Missing endpoints are created. For undirected graphs the adjacency entry is
// mirrored but only one Edge is stored.
//
// Errors: ErrBadWeight, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
// Complexity: O(1).
func (g *Graph[K]) AddEdge(from, to K, w int64) (uint64, error) {
	// 1) Validate against construction-time flags.
	if !g.cfg.weighted && w != 0 {
		return 0, ErrBadWeight
	}
	if from == to && !g.cfg.allowLoops {
		return 0, ErrLoopNotAllowed
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	// 2) Ensure both endpoints exist.
	g.addVertexLocked(from)
	g.addVertexLocked(to)

	// 3) Reject parallel edges.
	if _, dup := g.adjacency[from][to]; dup {
		return 0, ErrMultiEdgeNotAllowed
	}

	// 4) Store and index.
	g.nextEdgeID++
	id := g.nextEdgeID
	g.edges[id] = &Edge[K]{ID: id, From: from, To: to, Weight: w}
	g.adjacency[from][to] = id
	if !g.cfg.directed {
		g.adjacency[to][from] = id
	}

	return id, nil
}

// HasEdge reports whether an edge from→to exists. For undirected graphs the
// order of endpoints does not matter.
// Complexity: O(1).
func (g *Graph[K]) HasEdge(from, to K) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	_, ok := g.adjacency[from][to]

	return ok
}

// RemoveEdge deletes the edge from→to (and its mirror when undirected).
// Complexity: O(1).
func (g *Graph[K]) RemoveEdge(from, to K) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	id, ok := g.adjacency[from][to]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, id)
	delete(g.adjacency[from], to)
	if !g.cfg.directed {
		delete(g.adjacency[to], from)
	}

	return nil
}

// Neighbors returns the vertices reachable from id over one edge, sorted.
// Complexity: O(d·log d).
func (g *Graph[K]) Neighbors(id K) ([]K, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]K, 0, len(g.adjacency[id]))
	for to := range g.adjacency[id] {
		out = append(out, to)
	}
	slices.Sort(out)

	return out, nil
}

// Vertices returns all vertex IDs, sorted.
// Complexity: O(V·log V).
func (g *Graph[K]) Vertices() []K {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	out := make([]K, 0, len(g.vertices))
	for v := range g.vertices {
		out = append(out, v)
	}
	slices.Sort(out)

	return out
}

// Edges returns copies of all edges in insertion order.
// Complexity: O(E·log E).
func (g *Graph[K]) Edges() []Edge[K] {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]Edge[K], 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, *e)
	}
	slices.SortFunc(out, func(a, b Edge[K]) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})

	return out
}

// VertexCount returns |V|.
func (g *Graph[K]) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns |E|. An undirected edge counts once.
func (g *Graph[K]) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// Clone returns a deep copy with identical flags, vertices, edges and IDs.
// Complexity: O(V+E).
func (g *Graph[K]) Clone() *Graph[K] {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	c := &Graph[K]{
		cfg:        g.cfg,
		nextEdgeID: g.nextEdgeID,
		vertices:   make(map[K]struct{}, len(g.vertices)),
		edges:      make(map[uint64]*Edge[K], len(g.edges)),
		adjacency:  make(map[K]map[K]uint64, len(g.adjacency)),
	}
	for v := range g.vertices {
		c.vertices[v] = struct{}{}
	}
	for id, e := range g.edges {
		cp := *e
		c.edges[id] = &cp
	}
	for from, row := range g.adjacency {
		m := make(map[K]uint64, len(row))
		for to, id := range row {
			m[to] = id
		}
		c.adjacency[from] = m
	}

	return c
}

// EdgeBetween returns a copy of the edge from→to, if present.
// Complexity: O(1).
func (g *Graph[K]) EdgeBetween(from, to K) (Edge[K], bool) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	id, ok := g.adjacency[from][to]
	if !ok {
		return Edge[K]{}, false
	}

	return *g.edges[id], true
}

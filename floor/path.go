package floor

import (
	"fmt"
	"slices"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/cavern/dijkstra"
	"github.com/katalvlaran/cavern/grid"
	"github.com/katalvlaran/cavern/tile"
)

// PathKind classifies a traced corridor by the number of tiles it spans.
type PathKind int

const (
	// Length1 is a single tile shared by both borders.
	Length1 PathKind = iota + 1
	// Length2 is two adjacent tiles.
	Length2
	// Length3Plus has interior tiles between its ends.
	Length3Plus
)

func (k PathKind) String() string {
	switch k {
	case Length1:
		return "length1"
	case Length2:
		return "length2"
	case Length3Plus:
		return "length3+"
	}

	return fmt.Sprintf("PathKind(%d)", int(k))
}

// ConnectionPath is a traced corridor ready to be drawn.
type ConnectionPath struct {
	Kind       PathKind
	Start, End grid.Point
	// From and To are the borders the corridor joins.
	From, To BorderID

	interior mapset.Set[grid.Point]
}

// Interior returns the tiles between Start and End, sorted. Empty unless
// Kind is Length3Plus.
func (c ConnectionPath) Interior() []grid.Point {
	if c.Kind != Length3Plus {
		return nil
	}
	out := make([]grid.Point, 0, c.interior.Size())
	c.interior.Each(func(p grid.Point) { out = append(out, p) })
	slices.SortFunc(out, grid.Point.Compare)

	return out
}

// Len returns the number of distinct tiles the corridor covers.
func (c ConnectionPath) Len() int {
	switch c.Kind {
	case Length1:
		return 1
	case Length2:
		return 2
	}

	return 2 + c.interior.Size()
}

// TraceConnectionPaths traces a corridor for every connection.
//
// Each trace runs Dijkstra from the From endpoint over Legal4 moves that
// avoid every border tile except the To endpoint. Step cost is the noise
// value when useNoise is set, else 1. Outside strict mode the search also
// stops on any secret tile. When the constrained search fails, or the
// builder is strict, the trace falls back to a minimum-conversion bridge
// over the whole interior, which always succeeds.
//
// wide adds the Legal4 neighbours of every path tile to the interior.
// Paths are returned sorted by start point.
func (s *HasConnections) TraceConnectionPaths(wide, useNoise bool) *Drawable {
	b := take(&s.b)

	onBorder := mapset.New[grid.Point]()
	for _, br := range b.borders {
		for _, p := range br.Points {
			onBorder.Put(p)
		}
	}

	paths := make([]ConnectionPath, 0, len(b.connections))
	for _, c := range b.connections {
		path := b.trace(c, onBorder, useNoise)
		paths = append(paths, b.classify(c, path, wide))
	}
	slices.SortFunc(paths, func(x, y ConnectionPath) int {
		if n := x.Start.Compare(y.Start); n != 0 {
			return n
		}

		return x.End.Compare(y.End)
	})
	b.paths = paths

	return &Drawable{b: b}
}

// Paths returns the traced corridors.
func (s *Drawable) Paths() []ConnectionPath {
	return slices.Clone(peek(s.b).paths)
}

func (b *builder) trace(c Connection, onBorder mapset.Set[grid.Point], useNoise bool) []grid.Point {
	from, to := c.From.Point, c.To.Point
	if !b.strict {
		allow := func(q grid.Point) bool { return q == to || !onBorder.Has(q) }
		goal := func(p grid.Point) bool { return p == to || b.tiles.At(p).IsSecret() }
		path, _, err := dijkstra.ShortestPath(from, b.successors(allow, useNoise), goal)
		if err == nil {
			return path
		}
		b.log.Debug("constrained trace failed, bridging", "from", from.String(), "to", to.String(), "err", err)
	}

	path, _, err := b.gridGraph().Bridge([]grid.Point{from}, []grid.Point{to})
	if err != nil {
		panic(fmt.Sprintf("floor %d: bridge %s→%s: %v", b.id, from, to, err))
	}

	return path
}

func (b *builder) classify(c Connection, path []grid.Point, wide bool) ConnectionPath {
	cp := ConnectionPath{From: c.From.Border, To: c.To.Border, Start: path[0], End: path[len(path)-1]}
	switch len(path) {
	case 1:
		cp.Kind = Length1
		return cp
	case 2:
		cp.Kind = Length2
		return cp
	}

	cp.Kind = Length3Plus
	cp.interior = mapset.New[grid.Point]()
	for _, p := range path {
		cp.interior.Put(p)
		if !wide {
			continue
		}
		for _, q := range b.dims.Legal4(p) {
			cp.interior.Put(q)
		}
	}
	cp.interior.Remove(cp.Start)
	cp.interior.Remove(cp.End)

	return cp
}

// Brush picks the tile painted at p. isFirst and isLast mark corridor ends.
type Brush func(isFirst, isLast bool, p grid.Point) tile.Tile

// EmptyBrush paints plain floor.
func EmptyBrush(_, _ bool, _ grid.Point) tile.Tile { return tile.EmptyTile }

// SecretBrush paints closed, keyed secret doors at the ends and secret
// passage in between.
func SecretBrush(isFirst, isLast bool, _ grid.Point) tile.Tile {
	if isFirst || isLast {
		return tile.NewSecretDoor(true, false)
	}

	return tile.SecretPassageTile
}

// Draw paints every traced corridor with brush. Entrance and Exit are never
// overwritten. A frame is emitted per interior tile.
func (s *Drawable) Draw(brush Brush) *Filled {
	b := take(&s.b)

	for _, cp := range b.paths {
		switch cp.Kind {
		case Length1:
			b.paint(cp.Start, brush(true, true, cp.Start))
		case Length2:
			b.paint(cp.Start, brush(true, false, cp.Start))
			b.paint(cp.End, brush(false, true, cp.End))
		case Length3Plus:
			b.paint(cp.Start, brush(true, false, cp.Start))
			b.paint(cp.End, brush(false, true, cp.End))
			for _, p := range cp.Interior() {
				b.paint(p, brush(false, false, p))
				b.frame(1)
			}
		}
	}
	b.log.Debug("corridors drawn", "count", len(b.paths))
	b.borders, b.connections, b.paths = nil, nil, nil

	return &Filled{b: b}
}

func (b *builder) paint(p grid.Point, t tile.Tile) {
	if cur := b.tiles.At(p); cur.IsEntrance() || cur.IsExit() {
		return
	}
	b.tiles.Set(p, t)
}

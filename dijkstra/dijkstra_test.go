// Package dijkstra_test contains unit tests for ShortestPath: validation,
// goal predicates, distance caps, impassable edges and tie-breaking.
package dijkstra_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/cavern/dijkstra"
)

// weighted is a tiny explicit adjacency used to drive the implicit search.
type weighted map[string][]dijkstra.Successor[string]

func (w weighted) next(n string) []dijkstra.Successor[string] { return w[n] }

func is(target string) func(string) bool {
	return func(n string) bool { return n == target }
}

// diamond: A→B(1) A→C(4) B→C(1) B→D(5) C→D(1). Shortest A→D is A,B,C,D = 3.
var diamond = weighted{
	"A": {{Node: "B", Cost: 1}, {Node: "C", Cost: 4}},
	"B": {{Node: "C", Cost: 1}, {Node: "D", Cost: 5}},
	"C": {{Node: "D", Cost: 1}},
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestShortestPath_NilInputs(t *testing.T) {
	if _, _, err := dijkstra.ShortestPath("A", nil, is("B")); err != dijkstra.ErrNilSuccessors {
		t.Fatalf("expected ErrNilSuccessors, got %v", err)
	}
	if _, _, err := dijkstra.ShortestPath("A", diamond.next, nil); err != dijkstra.ErrNilGoal {
		t.Fatalf("expected ErrNilGoal, got %v", err)
	}
}

func TestShortestPath_NegativeCost(t *testing.T) {
	g := weighted{"A": {{Node: "B", Cost: -1}}}
	_, _, err := dijkstra.ShortestPath("A", g.next, is("B"))
	if !errors.Is(err, dijkstra.ErrNegativeWeight) {
		t.Fatalf("expected ErrNegativeWeight, got %v", err)
	}
}

func TestOptions_PanicOnBadValues(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for negative MaxDistance")
		}
	}()
	_ = dijkstra.WithMaxDistance(-1)
}

// ------------------------------------------------------------------------
// 2. Behaviour
// ------------------------------------------------------------------------

func TestShortestPath_Diamond(t *testing.T) {
	path, cost, err := dijkstra.ShortestPath("A", diamond.next, is("D"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cost != 3 {
		t.Fatalf("expected cost 3, got %d", cost)
	}
	want := []string{"A", "B", "C", "D"}
	if len(path) != len(want) {
		t.Fatalf("expected %v, got %v", want, path)
	}
	for i := range want {
		if path[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, path)
		}
	}
}

func TestShortestPath_StartIsGoal(t *testing.T) {
	path, cost, err := dijkstra.ShortestPath("A", diamond.next, is("A"))
	if err != nil || cost != 0 || len(path) != 1 || path[0] != "A" {
		t.Fatalf("expected [A] 0, got %v %d %v", path, cost, err)
	}
}

func TestShortestPath_Unreachable(t *testing.T) {
	_, _, err := dijkstra.ShortestPath("D", diamond.next, is("A"))
	if err != dijkstra.ErrNoPath {
		t.Fatalf("expected ErrNoPath, got %v", err)
	}
}

func TestShortestPath_PredicateGoal(t *testing.T) {
	// Any node among {C, D} is acceptable; C is reached first at cost 2.
	path, cost, err := dijkstra.ShortestPath("A", diamond.next, func(n string) bool {
		return n == "C" || n == "D"
	})
	if err != nil || cost != 2 || path[len(path)-1] != "C" {
		t.Fatalf("expected to stop at C with cost 2, got %v %d %v", path, cost, err)
	}
}

func TestShortestPath_MaxDistance(t *testing.T) {
	_, _, err := dijkstra.ShortestPath("A", diamond.next, is("D"), dijkstra.WithMaxDistance(2))
	if err != dijkstra.ErrNoPath {
		t.Fatalf("expected ErrNoPath beyond cap, got %v", err)
	}
}

func TestShortestPath_InfEdgeThreshold(t *testing.T) {
	// Forbid every edge of cost ≥ 2: A→C and B→D go, A,B,C,D survives.
	_, cost, err := dijkstra.ShortestPath("A", diamond.next, is("D"), dijkstra.WithInfEdgeThreshold(2))
	if err != nil || cost != 3 {
		t.Fatalf("expected cost 3 with threshold, got %d %v", cost, err)
	}
	_, _, err = dijkstra.ShortestPath("A", diamond.next, is("D"), dijkstra.WithInfEdgeThreshold(1))
	if err != dijkstra.ErrNoPath {
		t.Fatalf("expected ErrNoPath when every edge is a wall, got %v", err)
	}
}

func TestShortestPath_GridTieBreakDeterministic(t *testing.T) {
	type cell struct{ r, c int }
	next := func(n cell) []dijkstra.Successor[cell] {
		var out []dijkstra.Successor[cell]
		for _, d := range []cell{{1, 0}, {0, 1}, {-1, 0}, {0, -1}} {
			m := cell{n.r + d.r, n.c + d.c}
			if m.r < 0 || m.c < 0 || m.r > 5 || m.c > 5 {
				continue
			}
			out = append(out, dijkstra.Successor[cell]{Node: m, Cost: 1})
		}
		return out
	}
	goal := func(n cell) bool { return n == cell{5, 5} }

	first, c1, err := dijkstra.ShortestPath(cell{0, 0}, next, goal)
	if err != nil || c1 != 10 {
		t.Fatalf("expected cost 10, got %d %v", c1, err)
	}
	for i := 0; i < 5; i++ {
		again, _, _ := dijkstra.ShortestPath(cell{0, 0}, next, goal)
		for j := range first {
			if first[j] != again[j] {
				t.Fatalf("non-deterministic path on run %d", i)
			}
		}
	}
}

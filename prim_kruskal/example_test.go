package prim_kruskal_test

import (
	"fmt"

	"github.com/katalvlaran/cavern/core"
	"github.com/katalvlaran/cavern/prim_kruskal"
)

// ExampleSpanningForest prunes a redundant link between cave borders.
func ExampleSpanningForest() {
	g := core.NewGraph[uint32](core.WithWeighted())
	_, _ = g.AddEdge(0, 1, 4)
	_, _ = g.AddEdge(1, 2, 9)
	_, _ = g.AddEdge(0, 2, 25)

	forest, total, _ := prim_kruskal.SpanningForest(g)
	for _, e := range forest {
		fmt.Printf("%d-%d ", e.From, e.To)
	}
	fmt.Println(total)
	// Output: 0-1 1-2 13
}

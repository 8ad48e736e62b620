package core_test

import (
	"fmt"

	"github.com/katalvlaran/cavern/core"
)

// ExampleGraph links three border IDs and lists the neighbours of the middle one.
func ExampleGraph() {
	g := core.NewGraph[uint32](core.WithWeighted())
	_, _ = g.AddEdge(0, 1, 25)
	_, _ = g.AddEdge(1, 2, 9)

	nb, _ := g.Neighbors(1)
	fmt.Println(nb, g.EdgeCount())
	// Output: [0 2] 2
}

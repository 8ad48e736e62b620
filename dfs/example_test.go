package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/cavern/core"
	"github.com/katalvlaran/cavern/dfs"
)

// ExampleDFS demonstrates a post-order traversal on a diamond-shaped graph.
//
//	  A
//	 / \
//	B   C
//	 \ /
//	  D
func ExampleDFS() {
	g := core.NewGraph[string](core.WithDirected(true))
	for _, e := range [][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}} {
		_, _ = g.AddEdge(e[0], e[1], 0)
	}

	res, err := dfs.DFS(g, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	// Output: [D B C A]
}

// ExampleCountComponents counts linked groups of cave borders.
func ExampleCountComponents() {
	g := core.NewGraph[int]()
	_, _ = g.AddEdge(0, 1, 0)
	g.AddVertex(2)

	n, _ := dfs.CountComponents(g)
	fmt.Println(n)
	// Output: 2
}

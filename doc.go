// Package cavern generates multi-floor cave dungeons on a 2D tile grid.
//
// A floor starts as random rock, is carved into caves by cellular-automaton
// smoothing, then stitched together: cave borders are extracted, linked by
// the nearest point pairs, pruned to a spanning forest and joined with
// noise-weighted corridors. A finishing loop seals leftover pockets behind
// secret doors, chests are dropped into enclosed nooks, and the result is
// checked to be a single reachable region with one entrance and one exit.
//
// Layout:
//
//	boundedint/   - range-checked integers (floor sizes, rows, columns)
//	grid/         - points, dimensions and the row-major Grid[T]
//	tile/         - tile kinds, predicates, glyphs and the GIF palette
//	rng/          - seeded, derivable *rand.Rand streams
//	noise/        - billow-shaped Perlin noise mapped to corridor costs
//	core/         - thread-safe generic graph used to track border links
//	dfs/          - depth-first search and Kosaraju component counting
//	dijkstra/     - shortest paths over implicit successor functions
//	prim_kruskal/ - minimum spanning trees and forests
//	gridgraph/    - flood-fill regions and 0-1 BFS bridges on grids
//	floor/        - the staged floor builder and Create
//	dungeon/      - parallel multi-floor generation and export
//	render/       - paletted images, GIF encoding, ASCII dumps
//	config/       - YAML configuration
//	viewer/       - tcell terminal viewer
//	server/       - HTTP and websocket preview server
//	cmd/cavegen/  - command-line entry point
//
// Quick start:
//
//	d, err := dungeon.New(ctx, 50, 80, 5, dungeon.Cave, dungeon.WithSeed(7))
//	if err != nil {
//		return err
//	}
//	f, _ := d.Floor(0)
//	fmt.Println(f)
package cavern

// Package floor generates a single cave floor: a rectangular grid of tiles
// whose walkable space forms exactly one 4-connected region containing one
// entrance and one exit.
//
// Pipeline:
//
// Generation is a chain of typed states. Each transition consumes the state
// it is called on and returns the next one, so stages cannot run out of
// order and a consumed state panics with ErrConsumed if reused.
//
//	Blank.RandomFill                      → RandomFilled
//	RandomFilled.TraceOriginalPath        → Filled
//	Filled.Smoothen                       → Smoothed
//	Smoothed.CaveBorders                  → HasBorders
//	HasBorders.BuildConnections           → HasConnections
//	HasConnections.TraceConnectionPaths   → Drawable
//	Drawable.Draw                         → Filled
//	Smoothed.CheckForSecretPassages       → HasSecretPassages
//	HasSecretPassages.PlaceTreasureChests → Filled
//	Filled.Finish                         → *Floor
//
// Create drives the whole chain with the default schedule and retries a
// failed attempt with a reseeded generator.
//
// Algorithms:
//
//   - Random fill over a billow noise cost field (noise).
//   - Cellular automaton smoothing with a 3×3 survival rule and an optional
//     5×5 rule that keeps isolated walls standing.
//   - Cave and border extraction by BFS (gridgraph).
//   - Border linking by closest pair, component counting (dfs) and pruning
//     to a minimum spanning forest (prim_kruskal).
//   - Corridors by Dijkstra over the noise field (dijkstra), falling back to
//     a minimum-conversion bridge.
//   - Secret passages for caves cut off by the second smoothing.
//
// Determinism:
//
// For fixed options, including the injected *rand.Rand, the output is
// identical across runs. Every map or set iteration that reaches the output
// is sorted first.
//
// Errors:
//
//	ErrBadParams        – Params.Validate failed
//	ErrGenerationFailed – wraps ErrNoEndpoints, ErrNoPath, ErrSecretRounds,
//	                      ErrDisconnected for a single attempt
//	*GenerationError    – every attempt of Create failed
package floor

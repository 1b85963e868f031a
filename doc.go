// Package gridstar is a small toolkit for path search on 2D occupancy grids,
// built around a deterministic A* engine that can draw every step it takes.
//
// 🚀 What is in the box?
//
//   - gridgraph: immutable grids: bounds, 8-way neighbours, regions, wall breaches
//   - astar: the search engine: heuristics, lazy relaxation, live rendering, batches
//   - dijkstra: exact single-source distances, used to check A* results
//   - catalog: built-in maps (embedded YAML) and text/YAML map files
//   - render: terminal frames and summary tables
//   - cmd/gridstar: the CLI: find, maps, show, run, demo
//
// ✨ Cost model
//
//   - Orthogonal step: 10, diagonal step: 14.
//   - Heuristics: Manhattan (fast, inadmissible with diagonals),
//     Euclidean, Octile (exact on open grids).
//
// Quick start:
//
//	e, _ := astar.NewFromProvider(catalog.Default(), "a", astar.WithHeuristic(astar.Octile))
//	res, err := e.Find(astar.Coord{X: 1, Y: 1}, astar.Coord{X: 8, Y: 8}, false)
//	// res.Cost == 116, res.Path.Route() runs start → goal
//
// See each subpackage's documentation for details.
package gridstar

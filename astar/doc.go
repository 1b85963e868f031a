// Package astar provides an A* search engine over 2D occupancy grids.
//
// Overview:
//
//   - An Engine owns a read-only gridgraph.Grid and answers one query per
//     Find call: the cheapest route between two passable cells, moving in
//     8 directions (10 per orthogonal step, 14 per diagonal step).
//   - The open set is a min-heap ordered by f = g + h, ties broken by
//     insertion order, so every search is deterministic.
//   - Nodes live in a per-call arena and point to their parent by index.
//     A cheaper route to an open cell appends a new node; the old heap entry
//     becomes stale and is skipped when popped.
//
// Heuristics:
//
//   - Manhattan: (|dx| + |dy|) * 10. Overestimates diagonal routes, so it
//     trades optimality for fewer expansions.
//   - Euclidean: sqrt(dx² + dy²) * 10, truncated.
//   - Octile:    10*max(|dx|,|dy|) + 4*min(|dx|,|dy|). Exact on open grids
//     under this cost model; admissible and consistent.
//
// Live rendering:
//
//	Find(start, goal, true) calls the configured Renderer once per expanded
//	node with the partial path and the open set, then sleeps for the
//	configured pace. Rendering never changes the result.
//
// Options:
//
//   - WithHeuristic, WithRenderer, WithPace
//   - WithRelaxation(false) reproduces the classic "first discovery wins"
//     behaviour, which is not optimal when a cell is reached by several
//     routes before it is expanded.
//   - WithCornerCutting(false) forbids diagonal moves past a wall corner.
//   - WithMaxSteps, WithContext bound long searches.
//   - WithLogger, WithOnStep for observability.
//
// Errors (sentinel):
//
//   - ErrInvalidGrid        empty/ragged grid, nil grid, or provider failure.
//   - ErrInvalidCoordinate  start or goal out of bounds or blocked.
//   - ErrNoPathFound        search exhausted; wrapped with the step count.
//   - ErrUnknownHeuristic   value outside Manhattan/Euclidean/Octile.
//   - ErrStepLimit          MaxSteps reached before the goal.
//   - ErrOptionViolation    invalid option value.
//   - ErrNoRenderer         PrintMap without any renderer.
//
// Complexity:
//
//   - Time:  O(N log N) where N = nodes pushed (≤ 8 × passable cells).
//   - Space: O(N) for the arena and the heap.
package astar

package gridgraph

import (
	"container/list"
)

// MinBreach finds a route from a to b that passes through the fewest blocked
// cells, moving in 8 directions. Each blocked cell entered costs 1; passable
// cells are free. Endpoints may themselves be blocked and are counted.
// Returns the route (a first, b last) and the number of walls on it.
//
// Behavior:
//  1. Validate both endpoints are in bounds (ErrOutOfBounds).
//  2. 0–1 BFS from a:
//     • Moving into a passable cell → cost 0
//     • Moving into a blocked cell  → cost 1
//  3. Stop when b is dequeued.
//  4. Reconstruct route via predecessors.
//
// A result of 0 walls means a and b are already connected.
//
// Complexity: O(W·H·8) on average.
// Memory:     O(W·H) for distance and prev slices.
func (g *Grid) MinBreach(a, b Coord) (route []Coord, walls int, err error) {
	if !g.InBounds(a) || !g.InBounds(b) {
		return nil, 0, ErrOutOfBounds
	}

	N := g.Width * g.Height
	const inf = int(^uint(0) >> 1)
	dist := make([]int, N)
	prev := make([]int, N)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	src, dst := g.index(a), g.index(b)
	dist[src] = 0
	if g.Blocked(a) {
		dist[src] = 1
	}

	// 0–1 BFS: deque processes cost0 at front, cost1 at back
	dq := list.New()
	dq.PushFront(src)
	done := make([]bool, N)
	found := false

	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if done[u] {
			continue
		}
		done[u] = true
		if u == dst {
			found = true
			break
		}
		uc := g.Coordinate(u)
		for _, d := range neighborOffsets {
			vc := uc.Add(d)
			if !g.InBounds(vc) {
				continue
			}
			v := g.index(vc)
			step := 0
			if g.cells[vc.Y][vc.X] {
				step = 1
			}
			nd := dist[u] + step
			if nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	if !found {
		return nil, 0, ErrNoPath
	}
	// Reconstruct route
	for at := dst; at >= 0; at = prev[at] {
		route = append(route, g.Coordinate(at))
	}
	for i, j := 0, len(route)-1; i < j; i, j = i+1, j-1 {
		route[i], route[j] = route[j], route[i]
	}

	return route, dist[dst], nil
}

// Walls returns the blocked cells on route, in order.
func (g *Grid) Walls(route []Coord) []Coord {
	var walls []Coord
	for _, c := range route {
		if g.Blocked(c) {
			walls = append(walls, c)
		}
	}

	return walls
}

package astar

import (
	"container/heap"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPath_ZeroValue(t *testing.T) {
	var p Path
	assert.True(t, p.Empty())
	assert.Equal(t, 0, p.Len())
	assert.False(t, p.Contains(Coord{}))
	assert.Empty(t, p.Cells())
	assert.Empty(t, p.Route())
}

func TestPath_Orders(t *testing.T) {
	cells := []Coord{{X: 2, Y: 2}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	p := newPath(cells)

	assert.Equal(t, 3, p.Len())
	assert.True(t, p.Contains(Coord{X: 1, Y: 1}))
	assert.False(t, p.Contains(Coord{X: 1, Y: 0}))
	assert.Equal(t, []Coord{{X: 2, Y: 2}, {X: 1, Y: 1}, {X: 0, Y: 1}}, p.Cells())
	assert.Equal(t, []Coord{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 2}}, p.Route())

	// Returned slices are copies.
	c := p.Cells()
	c[0] = Coord{X: 9, Y: 9}
	assert.Equal(t, Coord{X: 2, Y: 2}, p.Cells()[0])
}

// TestNodePQ_TieOrder pops equal f values in insertion order.
func TestNodePQ_TieOrder(t *testing.T) {
	var pq nodePQ
	heap.Init(&pq)
	for _, e := range []pqEntry{{f: 30, idx: 0}, {f: 20, idx: 1}, {f: 30, idx: 2}, {f: 20, idx: 3}, {f: 10, idx: 4}} {
		heap.Push(&pq, e)
	}

	var order []int
	for pq.Len() > 0 {
		order = append(order, heap.Pop(&pq).(pqEntry).idx)
	}
	assert.Equal(t, []int{4, 1, 3, 0, 2}, order)
}

package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/gridstar/dijkstra"
	"github.com/katalvlaran/gridstar/gridgraph"
)

// ExampleDistance measures a detour around a wall segment.
//
//	. # . .
//	. # . .
//	. . . .
func ExampleDistance() {
	g, _ := gridgraph.New([][]bool{
		{false, true, false, false},
		{false, true, false, false},
		{false, false, false, false},
	})

	d, ok := dijkstra.Distance(g, gridgraph.Coord{X: 0, Y: 0}, gridgraph.Coord{X: 3, Y: 0})
	fmt.Println(d, ok)
	// Output:
	// 52 true
}

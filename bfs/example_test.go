package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/bfs"
	"github.com/katalvlaran/labyrinth/core"
)

// ExampleWalk walks an S-shaped corridor in a 2×3 grid.
//
//	(0,0) ─ (0,1) ─ (0,2)
//	                  │
//	(1,0) ─ (1,1) ─ (1,2)
func ExampleWalk() {
	g, _ := core.New(2, 3)
	_ = g.RemoveWalls(core.Cell{Row: 0, Col: 0}, core.Cell{Row: 0, Col: 1})
	_ = g.RemoveWalls(core.Cell{Row: 0, Col: 1}, core.Cell{Row: 0, Col: 2})
	_ = g.RemoveWalls(core.Cell{Row: 0, Col: 2}, core.Cell{Row: 1, Col: 2})
	_ = g.RemoveWalls(core.Cell{Row: 1, Col: 2}, core.Cell{Row: 1, Col: 1})
	_ = g.RemoveWalls(core.Cell{Row: 1, Col: 1}, core.Cell{Row: 1, Col: 0})

	res, err := bfs.Walk(g, core.Cell{Row: 0, Col: 0})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	fmt.Println("depth of (1,0):", res.Depth[core.Cell{Row: 1, Col: 0}])
	fmt.Println("furthest:", bfs.Furthest(g, 2, 3, core.Cell{Row: 0, Col: 0}))
	// Output:
	// [(0,0) (0,1) (0,2) (1,2) (1,1) (1,0)]
	// depth of (1,0): 5
	// furthest: (1,0)
}

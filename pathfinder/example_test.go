package pathfinder_test

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/core"
	"github.com/katalvlaran/labyrinth/pathfinder"
)

// ExampleSolve solves a hand-carved 3×3 maze with a single winding route.
//
//	S ─ . ─ .
//	        │
//	. ─ . ─ .
//	│
//	. ─ . ─ G
func ExampleSolve() {
	g, _ := core.New(3, 3)
	route := []core.Cell{
		{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2},
		{Row: 1, Col: 2}, {Row: 1, Col: 1}, {Row: 1, Col: 0},
		{Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2},
	}
	for i := 1; i < len(route); i++ {
		_ = g.RemoveWalls(route[i-1], route[i])
	}
	m, _ := core.NewMaze(g, core.Cell{Row: 0, Col: 0}, core.Cell{Row: 2, Col: 2})

	for _, alg := range pathfinder.Algorithms {
		tr, err := pathfinder.Solve(m, 3, 3, m.Start, pathfinder.WithAlgorithm(alg))
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Printf("%s: %d steps %v\n", alg, tr.Len(), tr.Shortest)
	}
	// Output:
	// bfs: 8 steps [(0,0) (0,1) (0,2) (1,2) (1,1) (1,0) (2,0) (2,1) (2,2)]
	// astar: 8 steps [(0,0) (0,1) (0,2) (1,2) (1,1) (1,0) (2,0) (2,1) (2,2)]
}

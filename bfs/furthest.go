package bfs

import "github.com/katalvlaran/labyrinth/core"

// Furthest walks the finished grid from seed within [0,rows)×[0,cols) and
// returns the last cell dequeued: one of maximum depth, ties broken by
// FIFO order. When seed is the only reachable cell, or the walk cannot
// start, seed itself is returned.
// Complexity: O(rows·cols).
func Furthest(g *core.Grid, rows, cols int, seed core.Cell) core.Cell {
	res, err := Walk(g, seed, WithBounds(rows, cols))
	if err != nil || len(res.Order) == 0 {
		return seed
	}
	return res.Order[len(res.Order)-1]
}

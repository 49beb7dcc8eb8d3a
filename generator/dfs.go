package generator

import (
	"github.com/zyedidia/generic/stack"

	"github.com/katalvlaran/labyrinth/core"
)

// depthFirst runs the recursive backtracker from start.
//
// The top cell is popped; if it has unvisited neighbours it is pushed
// back, a random neighbour is carved to, marked and pushed. A cell with
// no unvisited neighbours stays popped. Every cell is pushed exactly once
// as a new cell, so the loop ends after at most 2·rows·cols pops.
func (c *carver) depthFirst(start core.Cell) error {
	frontier := stack.New[core.Cell]()
	c.grid.Mark(start, core.Visited)
	frontier.Push(start)

	for frontier.Size() > 0 {
		cur := frontier.Pop()
		candidates := c.unvisitedNeighbors(cur)
		if len(candidates) == 0 {
			continue // backtrack
		}
		next := candidates[c.rng.Intn(len(candidates))]

		frontier.Push(cur)
		if err := c.carve(cur, next); err != nil {
			return err
		}
		c.grid.Mark(next, core.Visited)
		frontier.Push(next)
	}
	return nil
}

package generator

import "github.com/katalvlaran/labyrinth/core"

// prim grows the maze from start. The frontier holds walls from carved
// cells toward uncarved ones; a random wall is removed each step and,
// if its far side is still uncarved, opened.
func (c *carver) prim(start core.Cell) error {
	var frontier []wall
	add := func(cell core.Cell) {
		c.grid.Mark(cell, core.Visited)
		for _, d := range core.Directions {
			n := cell.Neighbor(d)
			if c.grid.InBounds(n) && !c.grid.IsVisited(n) {
				frontier = append(frontier, wall{cell: cell, dir: d})
			}
		}
	}
	add(start)

	for len(frontier) > 0 {
		i := c.rng.Intn(len(frontier))
		w := frontier[i]
		// swap-remove
		last := len(frontier) - 1
		frontier[i] = frontier[last]
		frontier = frontier[:last]

		next := w.cell.Neighbor(w.dir)
		if c.grid.IsVisited(next) {
			continue
		}
		if err := c.carve(w.cell, next); err != nil {
			return err
		}
		add(next)
	}
	return nil
}

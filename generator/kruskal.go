package generator

import (
	"github.com/spakin/disjoint"

	"github.com/katalvlaran/labyrinth/core"
)

// wall is the inner wall between cell and its neighbour in direction dir.
type wall struct {
	cell core.Cell
	dir  core.Direction
}

// kruskal knocks down shuffled walls whose sides lie in different sets,
// stopping once rows·cols-1 passages exist.
func (c *carver) kruskal() error {
	g := c.grid
	rows, cols := g.Rows(), g.Cols()

	sets := make([]*disjoint.Element, g.Len())
	for i := range sets {
		sets[i] = disjoint.NewElement()
		g.Mark(g.CellAt(i), core.Visited)
	}
	set := func(cell core.Cell) *disjoint.Element {
		return sets[cell.Row*cols+cell.Col]
	}

	// only Right and Down walls, so each inner wall appears once
	walls := make([]wall, 0, 2*g.Len())
	for r := 0; r < rows; r++ {
		for col := 0; col < cols; col++ {
			cell := core.Cell{Row: r, Col: col}
			if col+1 < cols {
				walls = append(walls, wall{cell: cell, dir: core.DirRight})
			}
			if r+1 < rows {
				walls = append(walls, wall{cell: cell, dir: core.DirDown})
			}
		}
	}
	c.rng.Shuffle(len(walls), func(i, j int) { walls[i], walls[j] = walls[j], walls[i] })

	need := g.Len() - 1
	for _, w := range walls {
		if need == 0 {
			break
		}
		a, b := w.cell, w.cell.Neighbor(w.dir)
		if set(a).Find() == set(b).Find() {
			continue
		}
		disjoint.Union(set(a), set(b))
		if err := c.carve(a, b); err != nil {
			return err
		}
		need--
	}
	return nil
}

package generator

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/katalvlaran/labyrinth/bfs"
	"github.com/katalvlaran/labyrinth/core"
)

// carver holds the state shared by every carving strategy.
type carver struct {
	grid    *core.Grid
	rng     *rand.Rand
	onCarve func(a, b core.Cell)
}

// carve opens the passage between adjacent in-bounds cells a and b.
// OnCarve runs only after the walls are gone.
func (c *carver) carve(a, b core.Cell) error {
	if err := c.grid.RemoveWalls(a, b); err != nil {
		return fmt.Errorf("generator: carve %v-%v: %w", a, b, err)
	}
	c.onCarve(a, b)
	return nil
}

// Generate builds a rows × cols perfect maze.
//
// Steps:
//  1. Apply options; reject invalid ones and unknown algorithms.
//  2. Allocate a fully walled grid (core.ErrInvalidDimension on bad size).
//  3. Pick a uniformly random start cell.
//  4. Carve with the selected algorithm.
//  5. Goal = bfs.Furthest(start).
//
// Complexity: O(rows·cols) for DFS and Prim, near-linear for Kruskal.
func Generate(rows, cols int, opts ...Option) (*core.Maze, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	switch o.Algorithm {
	case DepthFirstSearch, RandomizedKruskal, RandomizedPrim:
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, o.Algorithm)
	}

	g, err := core.New(rows, cols)
	if err != nil {
		return nil, err
	}
	rng := o.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	start := core.Cell{Row: rng.Intn(rows), Col: rng.Intn(cols)}
	c := &carver{grid: g, rng: rng, onCarve: o.OnCarve}

	switch o.Algorithm {
	case DepthFirstSearch:
		err = c.depthFirst(start)
	case RandomizedKruskal:
		err = c.kruskal()
	case RandomizedPrim:
		err = c.prim(start)
	}
	if err != nil {
		return nil, err
	}

	goal := bfs.Furthest(g, rows, cols, start)

	return core.NewMaze(g, start, goal)
}

// unvisitedNeighbors returns in-bounds neighbours of cur without the
// Visited marker, in core.Directions order.
func (c *carver) unvisitedNeighbors(cur core.Cell) []core.Cell {
	out := make([]core.Cell, 0, 4)
	for _, d := range core.Directions {
		n := cur.Neighbor(d)
		if c.grid.InBounds(n) && !c.grid.IsVisited(n) {
			out = append(out, n)
		}
	}
	return out
}

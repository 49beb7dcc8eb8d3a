package core

import "fmt"

// Maze bundles a generated Grid with its Start and Goal cells.
// Consumers treat it as read-only.
type Maze struct {
	Grid  *Grid
	Start Cell
	Goal  Cell
}

// NewMaze validates that start and goal lie within g and returns the bundle.
func NewMaze(g *Grid, start, goal Cell) (*Maze, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: start %v", ErrOutOfBounds, start)
	}
	if !g.InBounds(goal) {
		return nil, fmt.Errorf("%w: goal %v", ErrOutOfBounds, goal)
	}
	return &Maze{Grid: g, Start: start, Goal: goal}, nil
}

// Rows returns the number of grid rows.
func (m *Maze) Rows() int { return m.Grid.Rows() }

// Cols returns the number of grid columns.
func (m *Maze) Cols() int { return m.Grid.Cols() }

// CanMove reports whether a passage joins a and b in the maze grid.
func (m *Maze) CanMove(a, b Cell) bool { return m.Grid.CanMove(a, b) }

// String renders the grid with S and G marking start and goal.
func (m *Maze) String() string {
	return m.Grid.Render(func(c Cell) string {
		switch c {
		case m.Start:
			return " S "
		case m.Goal:
			return " G "
		}
		return ""
	})
}

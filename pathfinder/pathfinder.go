package pathfinder

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/core"
)

// Solve searches m from start to m.Goal.
// rows and cols must equal the maze grid dimensions.
//
// Returns ErrMazeNil, ErrDimensionMismatch, ErrStartOutOfBounds or
// ErrUnknownAlgorithm for invalid input, ErrUnreachableGoal when the goal
// cannot be reached, or the context error on cancellation.
func Solve(m *core.Maze, rows, cols int, start core.Cell, opts ...Option) (*Traversal, error) {
	if m == nil || m.Grid == nil {
		return nil, ErrMazeNil
	}
	if rows != m.Rows() || cols != m.Cols() {
		return nil, fmt.Errorf("%w: got %d×%d, maze is %d×%d",
			ErrDimensionMismatch, rows, cols, m.Rows(), m.Cols())
	}
	if !m.Grid.InBounds(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartOutOfBounds, start)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	switch o.Algorithm {
	case BreadthFirstSearch:
		return solveBFS(m, rows, cols, start, o)
	case AStar:
		return solveAStar(m, rows, cols, start, o)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, o.Algorithm)
	}
}

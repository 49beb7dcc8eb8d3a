package pathfinder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/labyrinth/bfs"
	"github.com/katalvlaran/labyrinth/core"
)

// solveBFS runs a breadth-first walk that halts once the goal is dequeued.
func solveBFS(m *core.Maze, rows, cols int, start core.Cell, o Options) (*Traversal, error) {
	res, err := bfs.Walk(m.Grid, start,
		bfs.WithContext(o.Ctx),
		bfs.WithBounds(rows, cols),
		bfs.WithStopAt(m.Goal),
		bfs.WithOnEnqueue(func(c core.Cell, _ int) { o.OnDiscover(c) }),
	)
	if err != nil {
		return nil, err
	}
	path, err := res.PathTo(m.Goal)
	if errors.Is(err, bfs.ErrUnreachable) {
		return nil, fmt.Errorf("%w: %v from %v", ErrUnreachableGoal, m.Goal, start)
	}
	if err != nil {
		return nil, err
	}

	return &Traversal{
		Seen:     res.Discovered,
		Shortest: path,
	}, nil
}

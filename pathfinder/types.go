package pathfinder

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/labyrinth/core"
)

// Sentinel errors for Solve.
var (
	// ErrMazeNil is returned if the maze or its grid is nil.
	ErrMazeNil = errors.New("pathfinder: maze is nil")

	// ErrDimensionMismatch indicates rows/cols that differ from the grid.
	ErrDimensionMismatch = errors.New("pathfinder: dimensions do not match maze")

	// ErrStartOutOfBounds indicates a start cell outside the grid.
	ErrStartOutOfBounds = errors.New("pathfinder: start cell out of bounds")

	// ErrUnreachableGoal indicates the goal was never discovered.
	ErrUnreachableGoal = errors.New("pathfinder: goal unreachable")

	// ErrUnknownAlgorithm indicates an Algorithm value outside the enum.
	ErrUnknownAlgorithm = errors.New("pathfinder: unknown algorithm")
)

// Algorithm selects the search strategy.
type Algorithm int

const (
	// BreadthFirstSearch explores in FIFO order.
	BreadthFirstSearch Algorithm = iota
	// AStar explores by f = g + Manhattan distance to the goal.
	AStar
)

// Algorithms lists every supported strategy.
var Algorithms = []Algorithm{BreadthFirstSearch, AStar}

func (a Algorithm) String() string {
	switch a {
	case BreadthFirstSearch:
		return "bfs"
	case AStar:
		return "astar"
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// ParseAlgorithm maps "bfs" or "astar" (case-insensitive) to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	for _, a := range Algorithms {
		if strings.EqualFold(s, a.String()) {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// Option configures Solve via functional arguments.
type Option func(*Options)

// Options holds search parameters and hooks.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Algorithm selects the search strategy.
	Algorithm Algorithm

	// OnDiscover is called once per cell as it is appended to Seen,
	// starting with the start cell.
	OnDiscover func(c core.Cell)
}

// DefaultOptions returns BFS with a background context and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		Algorithm:  BreadthFirstSearch,
		OnDiscover: func(core.Cell) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithAlgorithm selects the search strategy.
func WithAlgorithm(a Algorithm) Option {
	return func(o *Options) {
		o.Algorithm = a
	}
}

// WithOnDiscover registers a callback run for every discovered cell.
func WithOnDiscover(fn func(c core.Cell)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDiscover = fn
		}
	}
}

// Traversal is the record of one search run.
type Traversal struct {
	// Seen is the start followed by every discovered cell, each once.
	Seen []core.Cell
	// Shortest runs from the start to the goal, inclusive.
	Shortest []core.Cell
}

// Len returns the number of passages on the shortest path.
func (t *Traversal) Len() int {
	if len(t.Shortest) == 0 {
		return 0
	}
	return len(t.Shortest) - 1
}

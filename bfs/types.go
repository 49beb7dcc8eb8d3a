package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/labyrinth/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("bfs: grid is nil")

	// ErrStartOutOfBounds is returned when the start cell is not walkable.
	ErrStartOutOfBounds = errors.New("bfs: start cell out of bounds")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrUnreachable is returned by PathTo for a cell the walk never reached.
	ErrUnreachable = errors.New("bfs: cell not reached")
)

// Option configures a walk via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by Walk.
type Option func(*Options)

// Options holds parameters and callbacks to customize a walk.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a cell is discovered, with its depth.
	OnEnqueue func(c core.Cell, depth int)

	// OnDequeue is called immediately before a cell is expanded.
	OnDequeue func(c core.Cell, depth int)

	// MaxDepth, if > 0, stops discovery beyond this depth.
	MaxDepth int

	// Rows and Cols bound the walk, clipped to the grid; zero means the grid's own size.
	Rows, Cols int

	stopAt  core.Cell
	hasStop bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context, no-op hooks,
// no depth limit, no stop cell and grid-sized bounds.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnEnqueue: func(core.Cell, int) {},
		OnDequeue: func(core.Cell, int) {},
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

// WithOnEnqueue registers a callback to run on discovery.
func WithOnEnqueue(fn func(c core.Cell, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run before expansion.
func WithOnDequeue(fn func(c core.Cell, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithMaxDepth stops discovery past depth d.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithStopAt ends the walk once c is dequeued. c is recorded in Order
// but its neighbours are not expanded.
func WithStopAt(c core.Cell) Option {
	return func(o *Options) {
		o.stopAt = c
		o.hasStop = true
	}
}

// WithBounds restricts the walk to [0,rows)×[0,cols). Both must be positive.
// Bounds larger than the grid are clipped to it.
func WithBounds(rows, cols int) Option {
	return func(o *Options) {
		if rows <= 0 || cols <= 0 {
			o.err = fmt.Errorf("%w: bounds %d×%d", ErrOptionViolation, rows, cols)
			return
		}
		o.Rows, o.Cols = rows, cols
	}
}

// Result holds the outcome of a walk:
//   - Order: cells in dequeue sequence.
//   - Discovered: start, then cells in the sequence they were first seen.
//   - Depth: cell → distance in passages from the start.
//   - Parent: cell → predecessor in the BFS tree (start has none).
type Result struct {
	Order      []core.Cell
	Discovered []core.Cell
	Depth      map[core.Cell]int
	Parent     map[core.Cell]core.Cell
}

// Reached reports whether c was discovered by the walk.
func (r *Result) Reached(c core.Cell) bool {
	_, ok := r.Depth[c]
	return ok
}

// PathTo reconstructs the path from the start cell to dest, inclusive.
// Returns ErrUnreachable if dest was not discovered.
func (r *Result) PathTo(dest core.Cell) ([]core.Cell, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, dest)
	}
	// build reversed path
	path := make([]core.Cell, 0, r.Depth[dest]+1)
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

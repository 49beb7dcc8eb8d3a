package bfs

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"

	"github.com/katalvlaran/labyrinth/core"
)

// queueItem pairs a cell with its BFS depth.
type queueItem struct {
	cell  core.Cell
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	grid       *core.Grid
	opts       Options
	rows, cols int
	queue      *queue.Queue[queueItem]
	seen       mapset.Set[core.Cell]
	res        *Result
}

// Walk runs breadth-first search on g starting from start, applying any
// number of functional Options.
// Returns ErrGridNil, ErrOptionViolation or ErrStartOutOfBounds for invalid
// input, or the context error if the walk is cancelled.
func Walk(g *core.Grid, start core.Cell, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// bounds past the grid are clipped; cells outside it are never walkable
	rows, cols := g.Rows(), g.Cols()
	if o.Rows > 0 {
		rows, cols = min(o.Rows, rows), min(o.Cols, cols)
	}
	if start.Row < 0 || start.Row >= rows || start.Col < 0 || start.Col >= cols || !g.InBounds(start) {
		return nil, fmt.Errorf("%w: %v in %d×%d", ErrStartOutOfBounds, start, rows, cols)
	}

	n := rows * cols // at most g.Len()
	w := &walker{
		grid:  g,
		opts:  o,
		rows:  rows,
		cols:  cols,
		queue: queue.New[queueItem](),
		seen:  mapset.New[core.Cell](),
		res: &Result{
			Order:      make([]core.Cell, 0, n),
			Discovered: make([]core.Cell, 0, n),
			Depth:      make(map[core.Cell]int, n),
			Parent:     make(map[core.Cell]core.Cell, n),
		},
	}

	// seed with the start cell (no parent)
	w.enqueue(start, 0, nil)

	return w.res, w.loop()
}

// enqueue marks c seen at depth d, records its parent and discovery slot,
// calls OnEnqueue, and adds it to the queue.
func (w *walker) enqueue(c core.Cell, d int, parent *core.Cell) {
	w.seen.Put(c)
	w.res.Depth[c] = d
	if parent != nil {
		w.res.Parent[c] = *parent
	}
	w.res.Discovered = append(w.res.Discovered, c)
	w.opts.OnEnqueue(c, d)
	w.queue.Enqueue(queueItem{cell: c, depth: d})
}

// loop processes the queue until empty, the stop cell, or cancellation.
func (w *walker) loop() error {
	for !w.queue.Empty() {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue.Dequeue()
		w.opts.OnDequeue(item.cell, item.depth)
		w.res.Order = append(w.res.Order, item.cell)

		if w.opts.hasStop && item.cell == w.opts.stopAt {
			return nil
		}
		w.expand(item)
	}
	return nil
}

// expand enqueues every unseen neighbour reachable from item, in
// core.Directions order, honouring MaxDepth.
func (w *walker) expand(item queueItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, d := range core.Directions {
		nbr := item.cell.Neighbor(d)
		if w.seen.Has(nbr) {
			continue
		}
		if !core.CanMove(w.grid, w.rows, w.cols, item.cell, nbr) {
			continue
		}
		parent := item.cell
		w.enqueue(nbr, next, &parent)
	}
}

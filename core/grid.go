package core

import "fmt"

// Grid is a rows × cols array of WallState stored in row-major order.
// It is mutated only while a maze is being generated and treated as
// read-only afterwards.
type Grid struct {
	rows, cols int
	cells      []WallState
}

// New allocates a rows × cols grid with every cell fully walled and
// Visited clear. Returns ErrInvalidDimension if rows or cols is not positive.
// Complexity: O(rows·cols).
func New(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrInvalidDimension, rows, cols)
	}
	n := rows * cols
	if n/cols != rows {
		return nil, fmt.Errorf("%w: %d×%d overflows", ErrInvalidDimension, rows, cols)
	}
	cells := make([]WallState, n)
	for i := range cells {
		cells[i] = AllWalls
	}

	return &Grid{rows: rows, cols: cols, cells: cells}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Len returns rows·cols.
func (g *Grid) Len() int { return len(g.cells) }

// InBounds reports whether c lies within [0,rows)×[0,cols).
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// index maps c to its row-major offset. c must be in bounds.
func (g *Grid) index(c Cell) int {
	return c.Row*g.cols + c.Col
}

// CellAt converts a row-major index back to a Cell.
func (g *Grid) CellAt(i int) Cell {
	return Cell{Row: i / g.cols, Col: i % g.cols}
}

// At returns the state of c. Out-of-bounds cells read as AllWalls.
func (g *Grid) At(c Cell) WallState {
	if !g.InBounds(c) {
		return AllWalls
	}
	return g.cells[g.index(c)]
}

// Mark sets flag on c. It is a no-op for out-of-bounds cells.
func (g *Grid) Mark(c Cell, flag WallState) {
	if g.InBounds(c) {
		g.cells[g.index(c)] |= flag
	}
}

// Clear clears flag on c. It is a no-op for out-of-bounds cells.
func (g *Grid) Clear(c Cell, flag WallState) {
	if g.InBounds(c) {
		g.cells[g.index(c)] &^= flag
	}
}

// IsVisited reports whether c carries the Visited marker.
func (g *Grid) IsVisited(c Cell) bool {
	return HasState(g.At(c), Visited)
}

// RemoveWalls opens the passage between two adjacent cells, clearing
// a's wall toward b and b's wall toward a.
// Returns ErrOutOfBounds or ErrNotAdjacent on invalid input.
func (g *Grid) RemoveWalls(a, b Cell) error {
	if !g.InBounds(a) || !g.InBounds(b) {
		return fmt.Errorf("%w: %v-%v in %d×%d grid", ErrOutOfBounds, a, b, g.rows, g.cols)
	}
	d, ok := a.DirectionTo(b)
	if !ok {
		return fmt.Errorf("%w: %v and %v", ErrNotAdjacent, a, b)
	}
	g.cells[g.index(a)] &^= d.Wall()
	g.cells[g.index(b)] &^= d.Opposite().Wall()

	return nil
}

// Passages counts open edges between in-bounds neighbours.
// Each undirected edge is counted once, by looking only Right and Down.
// Complexity: O(rows·cols).
func (g *Grid) Passages() int {
	n := 0
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			cell := Cell{Row: r, Col: c}
			if g.CanMove(cell, cell.Neighbor(DirRight)) {
				n++
			}
			if g.CanMove(cell, cell.Neighbor(DirDown)) {
				n++
			}
		}
	}
	return n
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	cells := make([]WallState, len(g.cells))
	copy(cells, g.cells)
	return &Grid{rows: g.rows, cols: g.cols, cells: cells}
}

package core

// CanMove reports whether a passage joins a and b, which callers must keep
// grid-adjacent. rows and cols bound the walk; a cell outside them, or
// outside g's storage, is never reachable.
//
// Only one flag is inspected because walls are always removed in pairs:
//
//	b above a  → Down on b
//	b below a  → Down on a
//	b left of a  → Left on a
//	b right of a → Left on b
//
// Non-adjacent pairs report false.
// Complexity: O(1).
func CanMove(g *Grid, rows, cols int, a, b Cell) bool {
	if g == nil {
		return false
	}
	inside := func(c Cell) bool {
		return c.Row >= 0 && c.Row < rows && c.Col >= 0 && c.Col < cols && g.InBounds(c)
	}
	if !inside(a) || !inside(b) {
		return false
	}

	switch a.Row - b.Row {
	case 1:
		if a.Col != b.Col {
			return false
		}
		return !HasState(g.At(b), Down)
	case -1:
		if a.Col != b.Col {
			return false
		}
		return !HasState(g.At(a), Down)
	case 0:
		switch a.Col - b.Col {
		case 1:
			return !HasState(g.At(a), Left)
		case -1:
			return !HasState(g.At(b), Left)
		}
	}
	return false
}

// CanMove is CanMove(g, g.Rows(), g.Cols(), a, b).
func (g *Grid) CanMove(a, b Cell) bool {
	return CanMove(g, g.rows, g.cols, a, b)
}

// Step moves pos one cell in direction d when a passage allows it.
// It returns the new position and true, or pos and false when blocked.
func (g *Grid) Step(pos Cell, d Direction) (Cell, bool) {
	next := pos.Neighbor(d)
	if !g.CanMove(pos, next) {
		return pos, false
	}
	return next, true
}

// OpenNeighbors returns the cells reachable from c in one step, in
// Directions order.
func (g *Grid) OpenNeighbors(c Cell) []Cell {
	out := make([]Cell, 0, 4)
	for _, d := range Directions {
		if n := c.Neighbor(d); g.CanMove(c, n) {
			out = append(out, n)
		}
	}
	return out
}

// Package core defines the grid primitives every other labyrinth package
// builds on: cells, wall bitmasks, the rectangular Grid, the finished Maze,
// and the single connectivity query used by generation and search alike.
//
// What
//
//   - Cell: an immutable (Row, Col) value, comparable and usable as a map key.
//   - WallState: bitmask of Up, Right, Down, Left wall flags plus Visited.
//   - Grid: rows × cols WallStates, allocated fully walled.
//   - CanMove: reports whether a passage joins two adjacent cells.
//   - Maze: a generated Grid bundled with its Start and Goal cells.
//
// Topology
//
//	Row grows downward, column grows rightward:
//
//	      c=0   c=1   c=2
//	    +-----+-----+-----+
//	r=0 |     |           |
//	    +     +-----+     +
//	r=1 |           |     |
//	    +-----+-----+-----+
//
//	Walls are stored per cell, but an edge between two cells is undirected:
//	RemoveWalls always clears both sides (A's wall toward B and B's wall
//	toward A), so CanMove(a, b) == CanMove(b, a) for every adjacent pair.
//
// Connectivity
//
//	CanMove inspects exactly one flag on an in-bounds cell and never reads
//	storage outside the grid. Moving off the grid is always false.
//
// Complexity
//
//   - New:        O(rows·cols) time and memory.
//   - CanMove:    O(1).
//   - Passages:   O(rows·cols).
//   - String:     O(rows·cols).
//
// Errors
//
//   - ErrInvalidDimension: rows or cols not positive.
//   - ErrOutOfBounds:      a cell lies outside the grid.
//   - ErrNotAdjacent:      two cells do not share an edge.
//   - ErrGridNil:          a nil *Grid was supplied.
package core

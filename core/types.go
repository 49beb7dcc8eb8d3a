package core

import (
	"fmt"
	"strings"
)

// WallState is a bitmask of the four wall flags of a cell plus the
// generation-time Visited marker.
type WallState uint8

const (
	// Up is the wall on the side of row-1.
	Up WallState = 1 << iota
	// Right is the wall on the side of col+1.
	Right
	// Down is the wall on the side of row+1.
	Down
	// Left is the wall on the side of col-1.
	Left
	// Visited marks a cell already reached by a generator.
	// It carries no meaning once generation completes.
	Visited
)

// AllWalls is the initial state of every cell: four walls, not visited.
const AllWalls = Up | Right | Down | Left

// HasState reports whether any bit of flag is set in s.
func HasState(s, flag WallState) bool {
	return s&flag != 0
}

// String lists the set flags, e.g. "Up|Left" or "none".
func (s WallState) String() string {
	names := []struct {
		flag WallState
		name string
	}{{Up, "Up"}, {Right, "Right"}, {Down, "Down"}, {Left, "Left"}, {Visited, "Visited"}}

	var parts []string
	for _, n := range names {
		if HasState(s, n.flag) {
			parts = append(parts, n.name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// Direction is one of the four orthogonal moves on the grid.
type Direction int

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
)

// Directions is the fixed expansion order shared by generation and search.
var Directions = [4]Direction{DirUp, DirRight, DirDown, DirLeft}

// Delta returns the row and column offsets of d.
func (d Direction) Delta() (dr, dc int) {
	switch d {
	case DirUp:
		return -1, 0
	case DirRight:
		return 0, 1
	case DirDown:
		return 1, 0
	case DirLeft:
		return 0, -1
	}
	return 0, 0
}

// Opposite returns the direction pointing back.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Wall returns the wall flag on the side d points to.
func (d Direction) Wall() WallState {
	switch d {
	case DirUp:
		return Up
	case DirRight:
		return Right
	case DirDown:
		return Down
	case DirLeft:
		return Left
	}
	return 0
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Cell is a grid coordinate. It is a plain value: equality is structural
// and it can be used directly as a map key or set member.
type Cell struct {
	Row, Col int
}

// Neighbor returns the cell one step away in direction d.
// The result may lie outside the grid.
func (c Cell) Neighbor(d Direction) Cell {
	dr, dc := d.Delta()
	return Cell{Row: c.Row + dr, Col: c.Col + dc}
}

// DirectionTo returns the direction leading from c to an orthogonally
// adjacent cell o. ok is false when o is not adjacent to c.
func (c Cell) DirectionTo(o Cell) (d Direction, ok bool) {
	for _, d := range Directions {
		if c.Neighbor(d) == o {
			return d, true
		}
	}
	return 0, false
}

// Manhattan returns |Δrow| + |Δcol| between c and o.
func (c Cell) Manhattan(o Cell) int {
	dr, dc := c.Row-o.Row, c.Col-o.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr + dc
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

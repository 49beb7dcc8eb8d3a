package core

import "errors"

var (
	// ErrInvalidDimension indicates a non-positive row or column count.
	ErrInvalidDimension = errors.New("core: rows and cols must be at least 1")
	// ErrOutOfBounds indicates a cell outside [0,rows)×[0,cols).
	ErrOutOfBounds = errors.New("core: cell out of bounds")
	// ErrNotAdjacent indicates two cells that do not share an edge.
	ErrNotAdjacent = errors.New("core: cells are not adjacent")
	// ErrGridNil indicates a nil grid pointer.
	ErrGridNil = errors.New("core: grid is nil")
)

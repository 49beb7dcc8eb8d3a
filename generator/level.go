package generator

import "fmt"

// MaxLevel is the last playable level.
const MaxLevel = 10

// Level sizing: 3×3 before the first level, two cells wider per level.
const (
	baseSize  = 3
	levelStep = 2
)

// LevelSize returns the square grid dimensions of level (1-based):
// 5×5 for level 1, 7×7 for level 2, up to 23×23 for MaxLevel.
// Returns ErrInvalidLevel outside 1..MaxLevel.
func LevelSize(level int) (rows, cols int, err error) {
	if level < 1 || level > MaxLevel {
		return 0, 0, fmt.Errorf("%w: %d not in 1..%d", ErrInvalidLevel, level, MaxLevel)
	}
	n := baseSize + levelStep*level
	return n, n, nil
}

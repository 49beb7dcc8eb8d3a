// Package generator carves perfect mazes: every cell reachable from every
// other by exactly one passage path, rows·cols-1 passages in total.
//
// What
//
//   - DepthFirstSearch (default): recursive backtracker driven by an explicit
//     stack. From a random start, repeatedly pick a random unvisited neighbour
//     of the top cell, carve toward it and push it; pop when stuck.
//   - RandomizedKruskal: shuffle every inner wall and knock it down whenever
//     the cells on either side are still in different disjoint sets.
//   - RandomizedPrim: grow the maze from the start by opening a random wall
//     on the frontier between carved and uncarved cells.
//   - Whatever the algorithm, Start is a uniformly random cell and Goal is
//     the cell bfs.Furthest reports from Start.
//
// Randomness
//
//	Generate never touches package-level random state. Pass WithSeed or
//	WithRand for reproducible layouts; otherwise a time-seeded source is
//	created for the call.
//
// Levels
//
//	LevelSize maps a level number (1..MaxLevel) to a square grid that grows
//	by two cells per level, starting at 5×5.
//
// Complexity (N = rows·cols)
//
//   - DFS:     O(N) time, O(N) stack.
//   - Kruskal: O(N·α(N)) time after an O(N) shuffle.
//   - Prim:    O(N) time, O(N) frontier.
//
// Errors
//
//   - core.ErrInvalidDimension if rows or cols is not positive.
//   - ErrUnknownAlgorithm      for an Algorithm value outside the enum.
//   - ErrOptionViolation       for an invalid Option (e.g. nil random source).
//   - ErrInvalidLevel          from LevelSize outside 1..MaxLevel.
package generator

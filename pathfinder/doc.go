// Package pathfinder solves a generated maze from any start cell to its
// goal, returning every cell it discovered and the shortest path.
//
// What
//
//   - BreadthFirstSearch (default): FIFO search that stops expanding as
//     soon as the goal is dequeued. The goal's own neighbours are never
//     explored.
//   - AStar: best-first search on a min-heap ordered by f = g + h, ties
//     broken by insertion order, with the Manhattan distance as h. The
//     heuristic is consistent on a unit-cost grid, so the path found is
//     as short as the BFS one.
//   - Both report a Traversal:
//   - Seen:     start, then every cell in first-discovery order
//   - Shortest: start → goal, inclusive, consecutive cells joined by a passage
//
// Path order
//
//	Shortest always runs from the start to the goal. Callers animating a
//	solution can replay it front to back.
//
// Complexity (N = rows·cols)
//
//   - BFS:   O(N) time and memory.
//   - AStar: O(N log N) time, O(N) memory.
//
// Errors
//
//   - ErrMazeNil           if the maze or its grid is nil.
//   - ErrDimensionMismatch if rows or cols disagree with the maze grid.
//   - ErrStartOutOfBounds  if start lies outside the grid.
//   - ErrUnknownAlgorithm  for an Algorithm value outside the enum.
//   - ErrUnreachableGoal   if the goal is never discovered (disconnected or
//     corrupt grid).
package pathfinder

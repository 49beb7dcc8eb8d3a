// Package bfs provides breadth-first traversal over a maze grid,
// returning layer depths, parent links, visit order and discovery order.
//
// What
//
//   - Explore cells in non-decreasing passage distance from a start cell.
//   - Two cells are neighbours only when core.CanMove allows the move, so
//     generation, goal selection and solving share one topology.
//   - Neighbours are expanded in the fixed order up, right, down, left.
//   - Returns a Result containing:
//   - Order:      cells in dequeue sequence
//   - Discovered: the start followed by every cell in enqueue sequence
//   - Depth:      cell → distance (passages) from the start
//   - Parent:     cell → predecessor in the BFS tree
//   - Supports hooks at two stages: OnEnqueue and OnDequeue.
//   - WithStopAt ends the walk as soon as a given cell is dequeued; its own
//     neighbours are never expanded.
//
// Determinism
//
//	The expansion order is fixed, so Order and Discovered are fully
//	reproducible for a given grid and start.
//
// Furthest
//
//	Furthest returns the last cell dequeued by a full walk: a cell of
//	maximum depth, ties broken by FIFO order. Generators use it to place
//	the goal.
//
// Complexity (N = rows·cols)
//
//   - Time:   O(N)  (each cell enqueued at most once, four neighbour checks per cell)
//   - Memory: O(N)  (queue, seen set, Depth and Parent maps)
//
// Errors
//
//   - ErrGridNil          if the grid pointer is nil.
//   - ErrStartOutOfBounds if the start lies outside the walk bounds.
//   - ErrOptionViolation  if an Option is invalid (e.g. negative MaxDepth).
//   - ErrUnreachable      from Result.PathTo when the destination was never reached.
//   - ctx.Err()           if the supplied context is cancelled mid-walk.
package bfs

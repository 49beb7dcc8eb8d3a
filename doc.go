// Package labyrinth generates perfect mazes on a rectangular grid and
// solves them, from the wall bitmask up to a small terminal front end.
//
// 🚀 What is in the box?
//
//   - Grid model: per-cell wall flags, paired wall removal, one CanMove rule
//   - Generators: randomized DFS backtracker, Kruskal, Prim
//   - Goal placement: the cell furthest from the start by BFS layers
//   - Solvers: breadth-first search and A* (Manhattan heuristic)
//   - Levels: square grids growing by two cells per level
//
// ✨ Why labyrinth?
//
//   - Deterministic - inject a seed or *rand.Rand and get the same maze back
//   - One topology - generation, goal search and solving all ask core.CanMove
//   - Hooks - OnCarve, OnEnqueue/OnDequeue, OnDiscover for animation
//
// Packages:
//
//	core/       - Cell, Direction, WallState, Grid, Maze, CanMove, ASCII render
//	bfs/        - breadth-first walk over a grid and the furthest-cell finder
//	generator/  - Generate with DFS, Kruskal or Prim; LevelSize
//	pathfinder/ - Solve with BFS or A*, returning a Traversal
//	config/     - MAZE_* settings from the environment and .env files
//	cmd/maze/   - command-line front end
//
// Quick ASCII example (3×3, S start, G goal):
//
//	+---+---+---+
//	| S         |
//	+---+---+   +
//	|       |   |
//	+   +---+   +
//	|         G |
//	+---+---+---+
//
//	go install github.com/katalvlaran/labyrinth/cmd/maze@latest
package labyrinth

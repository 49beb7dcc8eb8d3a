package pathfinder

import (
	"fmt"

	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/labyrinth/core"
)

// node is a heap entry: a cell with its path cost g, priority f = g + h,
// and insertion sequence for stable tie-breaking.
type node struct {
	cell core.Cell
	g, f int
	seq  int
}

func less(a, b node) bool {
	if a.f != b.f {
		return a.f < b.f
	}
	return a.seq < b.seq
}

// solveAStar runs A* with the Manhattan heuristic. Entries are never
// decreased in place; stale ones are skipped when popped.
func solveAStar(m *core.Maze, rows, cols int, start core.Cell, o Options) (*Traversal, error) {
	goal := m.Goal
	n := rows * cols

	open := heap.New[node](less)
	closed := mapset.New[core.Cell]()
	gScore := make(map[core.Cell]int, n)
	parent := make(map[core.Cell]core.Cell, n)
	seen := make([]core.Cell, 0, n)
	seq := 0

	discover := func(c core.Cell) {
		seen = append(seen, c)
		o.OnDiscover(c)
	}

	gScore[start] = 0
	discover(start)
	open.Push(node{cell: start, g: 0, f: start.Manhattan(goal), seq: seq})

	found := false
	for open.Size() > 0 {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		cur, _ := open.Pop()
		if closed.Has(cur.cell) || cur.g > gScore[cur.cell] {
			continue // stale entry
		}
		if cur.cell == goal {
			found = true
			break
		}
		closed.Put(cur.cell)

		for _, d := range core.Directions {
			nbr := cur.cell.Neighbor(d)
			if closed.Has(nbr) || !core.CanMove(m.Grid, rows, cols, cur.cell, nbr) {
				continue
			}
			ng := cur.g + 1
			old, known := gScore[nbr]
			if known && ng >= old {
				continue
			}
			if !known {
				discover(nbr)
			}
			gScore[nbr] = ng
			parent[nbr] = cur.cell
			seq++
			open.Push(node{cell: nbr, g: ng, f: ng + nbr.Manhattan(goal), seq: seq})
		}
	}

	if !found {
		return nil, fmt.Errorf("%w: %v from %v", ErrUnreachableGoal, goal, start)
	}

	path, err := backtrack(parent, start, goal)
	if err != nil {
		return nil, err
	}

	return &Traversal{
		Seen:     seen,
		Shortest: path,
	}, nil
}

// backtrack follows parent links from goal to start and returns the path
// in start → goal order. A link missing before start is reached, or a chain
// longer than the parent map, is reported as ErrUnreachableGoal.
func backtrack(parent map[core.Cell]core.Cell, start, goal core.Cell) ([]core.Cell, error) {
	path := []core.Cell{goal}
	for cur := goal; cur != start; {
		prev, ok := parent[cur]
		if !ok || len(path) > len(parent) {
			return nil, fmt.Errorf("%w: parent chain broken at %v", ErrUnreachableGoal, cur)
		}
		cur = prev
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/config"
	"github.com/katalvlaran/labyrinth/core"
	"github.com/katalvlaran/labyrinth/generator"
	"github.com/katalvlaran/labyrinth/pathfinder"
)

func corridor(t *testing.T) *core.Maze {
	t.Helper()
	g, err := core.New(1, 3)
	require.NoError(t, err)
	require.NoError(t, g.RemoveWalls(core.Cell{Col: 0}, core.Cell{Col: 1}))
	require.NoError(t, g.RemoveWalls(core.Cell{Col: 1}, core.Cell{Col: 2}))
	m, err := core.NewMaze(g, core.Cell{Col: 0}, core.Cell{Col: 2})
	require.NoError(t, err)
	return m
}

func TestFitCols(t *testing.T) {
	cases := []struct {
		cols, width, want int
	}{
		{20, 80, 19},
		{10, 80, 10},
		{5, 0, 1},
		{19, 77, 19},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, fitCols(tc.cols, tc.width), "cols=%d width=%d", tc.cols, tc.width)
	}
}

func TestReplay(t *testing.T) {
	m := corridor(t)

	pos, blocked, err := replay(m, "rr")
	require.NoError(t, err)
	assert.Equal(t, m.Goal, pos)
	assert.Zero(t, blocked)

	pos, blocked, err = replay(m, "UlRdR")
	require.NoError(t, err)
	assert.Equal(t, m.Goal, pos)
	assert.Equal(t, 3, blocked)

	_, _, err = replay(m, "rx")
	assert.Error(t, err)
}

func TestRenderOverlay(t *testing.T) {
	m := corridor(t)
	assert.Equal(t, "+---+---+---+\n| S       G |\n+---+---+---+\n", renderOverlay(m, nil, false))

	tr := &pathfinder.Traversal{
		Seen:     []core.Cell{{Col: 0}, {Col: 1}, {Col: 2}},
		Shortest: []core.Cell{{Col: 0}, {Col: 1}, {Col: 2}},
	}
	assert.Equal(t, "+---+---+---+\n| S   *   G |\n+---+---+---+\n", renderOverlay(m, tr, false))

	tr.Shortest = nil
	assert.Equal(t, "+---+---+---+\n| S   .   G |\n+---+---+---+\n", renderOverlay(m, tr, false))
}

func TestParseArgs(t *testing.T) {
	opts, err := parseArgs([]string{"-rows", "4", "-gen", "kruskal", "-solve", "astar", "-seed", "9", "-solution"}, config.Default())
	require.NoError(t, err)
	assert.Equal(t, 4, opts.cfg.Rows)
	assert.Equal(t, generator.RandomizedKruskal, opts.cfg.Generator)
	assert.Equal(t, pathfinder.AStar, opts.cfg.Solver)
	assert.True(t, opts.cfg.HasSeed)
	assert.Equal(t, int64(9), opts.cfg.Seed)
	assert.True(t, opts.solution)

	opts, err = parseArgs([]string{"-level", "2"}, config.Default())
	require.NoError(t, err)
	assert.False(t, opts.fitWidth)
	assert.False(t, opts.cfg.HasSeed)

	_, err = parseArgs([]string{"-gen", "eller"}, config.Default())
	assert.ErrorIs(t, err, generator.ErrUnknownAlgorithm)

	_, err = parseArgs([]string{"-rows", "0"}, config.Default())
	assert.ErrorIs(t, err, config.ErrInvalidValue)
}

func TestRun_Solution(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{"-rows", "3", "-cols", "4", "-seed", "1", "-solution", "-color=false"}, &out)
	require.NoError(t, err)

	m, err := generator.Generate(3, 4, generator.WithSeed(1))
	require.NoError(t, err)
	tr, err := pathfinder.Solve(m, 3, 4, m.Start)
	require.NoError(t, err)

	text := out.String()
	assert.Equal(t, renderOverlay(m, tr, false), text)
	assert.Len(t, strings.Split(strings.TrimRight(text, "\n"), "\n"), 7)
	if m.Start != m.Goal {
		assert.Equal(t, tr.Len()-1, strings.Count(text, " * "))
	}
}

func TestRun_Moves(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{"-rows", "1", "-cols", "1", "-seed", "1", "-moves", "ur"}, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "position (0,0) after 2 moves (2 blocked)")
	assert.Contains(t, out.String(), "goal reached")

	err = run([]string{"-rows", "2", "-cols", "2", "-moves", "q"}, &out)
	assert.Error(t, err)
}

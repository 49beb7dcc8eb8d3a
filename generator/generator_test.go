package generator_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/bfs"
	"github.com/katalvlaran/labyrinth/core"
	"github.com/katalvlaran/labyrinth/generator"
)

var sizes = []struct{ rows, cols int }{
	{1, 1}, {1, 6}, {6, 1}, {2, 2}, {3, 3}, {4, 9}, {13, 7}, {20, 20},
}

// assertPerfect checks the spanning-tree property: rows·cols-1 passages
// and every cell reachable from (0,0).
func assertPerfect(t *testing.T, m *core.Maze) {
	t.Helper()
	g := m.Grid
	assert.Equal(t, g.Len()-1, g.Passages(), "passage count")

	res, err := bfs.Walk(g, core.Cell{})
	require.NoError(t, err)
	assert.Len(t, res.Order, g.Len(), "connected")

	for i := 0; i < g.Len(); i++ {
		c := g.CellAt(i)
		assert.True(t, g.IsVisited(c), "cell %v never carved into", c)
		for _, d := range core.Directions {
			n := c.Neighbor(d)
			assert.Equal(t, g.CanMove(c, n), g.CanMove(n, c), "asymmetric %v↔%v", c, n)
		}
	}
}

func TestGenerate_SpanningTree(t *testing.T) {
	for _, alg := range generator.Algorithms {
		for _, sz := range sizes {
			for seed := int64(0); seed < 5; seed++ {
				m, err := generator.Generate(sz.rows, sz.cols,
					generator.WithAlgorithm(alg), generator.WithSeed(seed))
				require.NoError(t, err, "%v %dx%d", alg, sz.rows, sz.cols)
				assert.Equal(t, sz.rows, m.Rows())
				assert.Equal(t, sz.cols, m.Cols())
				assertPerfect(t, m)
			}
		}
	}
}

func TestGenerate_SingleCell(t *testing.T) {
	for _, alg := range generator.Algorithms {
		t.Run(alg.String(), func(t *testing.T) {
			m, err := generator.Generate(1, 1, generator.WithAlgorithm(alg), generator.WithSeed(1))
			require.NoError(t, err)
			assert.Equal(t, core.Cell{}, m.Start)
			assert.Equal(t, m.Start, m.Goal)

			s := m.Grid.At(core.Cell{})
			for _, w := range []core.WallState{core.Up, core.Right, core.Down, core.Left} {
				assert.True(t, core.HasState(s, w), "wall %v", w)
			}
			assert.Zero(t, m.Grid.Passages())
		})
	}
}

// TestGenerate_SeedDeterminism: seed 0 on 3×3 reproduces the same layout,
// start and goal on every run.
func TestGenerate_SeedDeterminism(t *testing.T) {
	for _, alg := range generator.Algorithms {
		t.Run(alg.String(), func(t *testing.T) {
			a, err := generator.Generate(3, 3, generator.WithAlgorithm(alg), generator.WithSeed(0))
			require.NoError(t, err)
			b, err := generator.Generate(3, 3, generator.WithAlgorithm(alg), generator.WithRand(rand.New(rand.NewSource(0))))
			require.NoError(t, err)

			assert.Equal(t, a.Grid.String(), b.Grid.String())
			assert.Equal(t, a.Start, b.Start)
			assert.Equal(t, a.Goal, b.Goal)
		})
	}
}

// TestGenerate_SeedZeroLayout pins the exact 3×3 maze each algorithm
// carves from seed 0.
func TestGenerate_SeedZeroLayout(t *testing.T) {
	cases := []struct {
		alg         generator.Algorithm
		start, goal core.Cell
		layout      string
	}{
		{
			alg:   generator.DepthFirstSearch,
			start: core.Cell{Row: 0, Col: 0},
			goal:  core.Cell{Row: 0, Col: 1},
			layout: `+---+---+---+
|   |       |
+   +---+   +
|       |   |
+---+   +   +
|           |
+---+---+---+
`,
		},
		{
			alg:   generator.RandomizedKruskal,
			start: core.Cell{Row: 0, Col: 0},
			goal:  core.Cell{Row: 0, Col: 1},
			layout: `+---+---+---+
|   |       |
+   +---+   +
|   |   |   |
+   +   +   +
|           |
+---+---+---+
`,
		},
		{
			alg:   generator.RandomizedPrim,
			start: core.Cell{Row: 0, Col: 0},
			goal:  core.Cell{Row: 2, Col: 2},
			layout: `+---+---+---+
|           |
+   +---+   +
|       |   |
+   +   +---+
|   |       |
+---+---+---+
`,
		},
	}
	for _, tc := range cases {
		t.Run(tc.alg.String(), func(t *testing.T) {
			m, err := generator.Generate(3, 3, generator.WithAlgorithm(tc.alg), generator.WithSeed(0))
			require.NoError(t, err)
			assert.Equal(t, tc.layout, m.Grid.String())
			assert.Equal(t, tc.start, m.Start)
			assert.Equal(t, tc.goal, m.Goal)
		})
	}
}

func TestGenerate_SeedsVary(t *testing.T) {
	layouts := map[string]struct{}{}
	for seed := int64(0); seed < 8; seed++ {
		m, err := generator.Generate(10, 10, generator.WithSeed(seed))
		require.NoError(t, err)
		layouts[m.Grid.String()] = struct{}{}
	}
	assert.Greater(t, len(layouts), 1)
}

func TestGenerate_DefaultSource(t *testing.T) {
	m, err := generator.Generate(6, 8)
	require.NoError(t, err)
	assertPerfect(t, m)
}

// TestGenerate_GoalIsFurthest checks the goal sits at maximum BFS depth
// from the start.
func TestGenerate_GoalIsFurthest(t *testing.T) {
	for _, alg := range generator.Algorithms {
		for seed := int64(0); seed < 10; seed++ {
			m, err := generator.Generate(9, 11, generator.WithAlgorithm(alg), generator.WithSeed(seed))
			require.NoError(t, err)

			res, err := bfs.Walk(m.Grid, m.Start)
			require.NoError(t, err)
			maxDepth := 0
			for _, d := range res.Depth {
				if d > maxDepth {
					maxDepth = d
				}
			}
			assert.Equal(t, maxDepth, res.Depth[m.Goal], "%v seed %d", alg, seed)
			assert.Equal(t, bfs.Furthest(m.Grid, 9, 11, m.Start), m.Goal)
		}
	}
}

func TestGenerate_OnCarve(t *testing.T) {
	for _, alg := range generator.Algorithms {
		t.Run(alg.String(), func(t *testing.T) {
			var carved [][2]core.Cell
			m, err := generator.Generate(5, 6,
				generator.WithAlgorithm(alg),
				generator.WithSeed(42),
				generator.WithOnCarve(func(a, b core.Cell) { carved = append(carved, [2]core.Cell{a, b}) }),
			)
			require.NoError(t, err)
			assert.Len(t, carved, 29)
			for _, p := range carved {
				assert.True(t, m.CanMove(p[0], p[1]), "%v→%v", p[0], p[1])
			}
		})
	}
}

func TestGenerate_Errors(t *testing.T) {
	_, err := generator.Generate(0, 3)
	assert.ErrorIs(t, err, core.ErrInvalidDimension)

	_, err = generator.Generate(3, -2)
	assert.ErrorIs(t, err, core.ErrInvalidDimension)

	_, err = generator.Generate(3, 3, generator.WithAlgorithm(generator.Algorithm(99)))
	assert.ErrorIs(t, err, generator.ErrUnknownAlgorithm)

	_, err = generator.Generate(3, 3, generator.WithRand(nil))
	assert.ErrorIs(t, err, generator.ErrOptionViolation)
}

func TestParseAlgorithm(t *testing.T) {
	cases := []struct {
		in   string
		want generator.Algorithm
	}{
		{"dfs", generator.DepthFirstSearch},
		{"Kruskal", generator.RandomizedKruskal},
		{"PRIM", generator.RandomizedPrim},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := generator.ParseAlgorithm(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := generator.ParseAlgorithm("eller")
	assert.ErrorIs(t, err, generator.ErrUnknownAlgorithm)
	assert.Equal(t, "Algorithm(7)", generator.Algorithm(7).String())
}

func TestLevelSize(t *testing.T) {
	cases := []struct {
		level, size int
	}{
		{1, 5}, {2, 7}, {5, 13}, {generator.MaxLevel, 23},
	}
	for _, tc := range cases {
		rows, cols, err := generator.LevelSize(tc.level)
		require.NoError(t, err)
		assert.Equal(t, tc.size, rows)
		assert.Equal(t, tc.size, cols)
	}

	for _, bad := range []int{0, -1, generator.MaxLevel + 1} {
		_, _, err := generator.LevelSize(bad)
		assert.ErrorIs(t, err, generator.ErrInvalidLevel, "level %d", bad)
	}
}

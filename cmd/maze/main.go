// Command maze generates a perfect maze, prints it as ASCII art and can
// overlay a solution or replay a sequence of player moves.
//
// Usage:
//
//	maze [-rows N] [-cols N] [-level L] [-seed S] [-gen dfs|kruskal|prim]
//	     [-solve bfs|astar] [-solution] [-color] [-moves urdl...]
//
// Settings come from MAZE_* environment variables (optionally via .env)
// and are overridden by flags.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/katalvlaran/labyrinth/config"
	"github.com/katalvlaran/labyrinth/core"
	"github.com/katalvlaran/labyrinth/generator"
	"github.com/katalvlaran/labyrinth/pathfinder"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Printf("[APP] [ERROR] %v", err)
		os.Exit(1)
	}
}

// options is the fully resolved command line.
type options struct {
	cfg      config.Config
	solution bool
	moves    string
	fitWidth bool
}

func parseArgs(args []string, cfg config.Config) (options, error) {
	fs := flag.NewFlagSet("maze", flag.ContinueOnError)
	rows := fs.Int("rows", cfg.Rows, "grid rows (ignored with -level)")
	cols := fs.Int("cols", cfg.Cols, "grid columns (ignored with -level)")
	level := fs.Int("level", cfg.Level, fmt.Sprintf("level 1..%d, 0 to use -rows/-cols", generator.MaxLevel))
	seed := fs.Int64("seed", cfg.Seed, "random seed (time-based when unset)")
	gen := fs.String("gen", cfg.Generator.String(), "generator: dfs, kruskal or prim")
	solve := fs.String("solve", cfg.Solver.String(), "solver: bfs or astar")
	solution := fs.Bool("solution", false, "overlay seen cells and the shortest path")
	colored := fs.Bool("color", cfg.Color, "colourise the overlay")
	moves := fs.String("moves", "", "player moves from the start: u, r, d, l")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	var err error
	cfg.Rows, cfg.Cols, cfg.Level, cfg.Color = *rows, *cols, *level, *colored
	if set["seed"] {
		cfg.Seed, cfg.HasSeed = *seed, true
	}
	if cfg.Generator, err = generator.ParseAlgorithm(*gen); err != nil {
		return options{}, err
	}
	if cfg.Solver, err = pathfinder.ParseAlgorithm(*solve); err != nil {
		return options{}, err
	}
	if err = cfg.Validate(); err != nil {
		return options{}, err
	}

	_, colsFromEnv := os.LookupEnv(config.EnvCols)
	return options{
		cfg:      cfg,
		solution: *solution,
		moves:    *moves,
		fitWidth: cfg.Level == 0 && !set["cols"] && !colsFromEnv,
	}, nil
}

func run(args []string, out io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	opts, err := parseArgs(args, cfg)
	if err != nil {
		return err
	}
	cfg = opts.cfg

	rows, cols, err := cfg.Dimensions()
	if err != nil {
		return err
	}
	if opts.fitWidth {
		if fit := fitCols(cols, terminalWidth()); fit != cols {
			log.Printf("[APP] [INFO] Narrowing maze from %d to %d columns to fit the terminal", cols, fit)
			cols = fit
		}
	}

	genOpts := []generator.Option{generator.WithAlgorithm(cfg.Generator)}
	if cfg.HasSeed {
		genOpts = append(genOpts, generator.WithSeed(cfg.Seed))
	}
	m, err := generator.Generate(rows, cols, genOpts...)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	log.Printf("[APP] [INFO] Generated %d×%d maze with %s: start %v, goal %v",
		rows, cols, cfg.Generator, m.Start, m.Goal)

	var tr *pathfinder.Traversal
	if opts.solution {
		tr, err = pathfinder.Solve(m, rows, cols, m.Start, pathfinder.WithAlgorithm(cfg.Solver))
		if err != nil {
			return fmt.Errorf("solve: %w", err)
		}
		log.Printf("[APP] [INFO] Solved with %s: %d cells seen, %d steps",
			cfg.Solver, len(tr.Seen), tr.Len())
	}

	fmt.Fprint(out, renderOverlay(m, tr, cfg.Color))

	if opts.moves != "" {
		pos, blocked, err := replay(m, opts.moves)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "position %v after %d moves (%d blocked)\n", pos, len(opts.moves), blocked)
		if pos == m.Goal {
			fmt.Fprintln(out, "goal reached")
		}
	}
	return nil
}

// replay applies moves from the maze start, ignoring moves a wall blocks.
// It returns the final position and the number of blocked moves.
func replay(m *core.Maze, moves string) (pos core.Cell, blocked int, err error) {
	pos = m.Start
	for _, r := range moves {
		var d core.Direction
		switch r {
		case 'u', 'U':
			d = core.DirUp
		case 'r', 'R':
			d = core.DirRight
		case 'd', 'D':
			d = core.DirDown
		case 'l', 'L':
			d = core.DirLeft
		default:
			return pos, blocked, fmt.Errorf("unknown move %q", r)
		}
		var ok bool
		if pos, ok = m.Grid.Step(pos, d); !ok {
			blocked++
		}
	}
	return pos, blocked, nil
}

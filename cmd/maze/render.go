package main

import (
	"os"

	"github.com/gookit/color"
	"golang.org/x/term"

	"github.com/katalvlaran/labyrinth/core"
	"github.com/katalvlaran/labyrinth/pathfinder"
)

const defaultWidth = 80

var (
	colorEnd  = color.Style{color.FgRed, color.OpBold}
	colorPath = color.Style{color.FgGreen, color.OpBold}
	colorSeen = color.Style{color.FgGray}
)

// terminalWidth returns the stdout terminal width, or defaultWidth when
// stdout is not a terminal.
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}

// fitCols caps cols so that a rendered row, four runes per cell plus the
// closing wall, fits in width.
func fitCols(cols, width int) int {
	limit := (width - 1) / 4
	if limit < 1 {
		limit = 1
	}
	if cols > limit {
		return limit
	}
	return cols
}

// renderOverlay draws m with S and G at the ends. With a traversal, path
// cells are drawn as " * " and other seen cells as " . ".
func renderOverlay(m *core.Maze, tr *pathfinder.Traversal, colored bool) string {
	paint := func(s color.Style, body string) string {
		if !colored {
			return body
		}
		return s.Sprint(body)
	}

	onPath := map[core.Cell]bool{}
	seen := map[core.Cell]bool{}
	if tr != nil {
		for _, c := range tr.Shortest {
			onPath[c] = true
		}
		for _, c := range tr.Seen {
			seen[c] = true
		}
	}

	return m.Grid.Render(func(c core.Cell) string {
		switch {
		case c == m.Start:
			return paint(colorEnd, " S ")
		case c == m.Goal:
			return paint(colorEnd, " G ")
		case onPath[c]:
			return paint(colorPath, " * ")
		case seen[c]:
			return paint(colorSeen, " . ")
		}
		return ""
	})
}

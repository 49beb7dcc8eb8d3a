package core

import "strings"

// Render draws the grid as ASCII art. label, if non-nil, may return a
// three-rune body for a cell; an empty string leaves the body blank.
//
//	+---+---+
//	| S     |
//	+---+   +
//	| G     |
//	+---+---+
func (g *Grid) Render(label func(Cell) string) string {
	var b strings.Builder

	b.WriteString("+")
	for c := 0; c < g.cols; c++ {
		if HasState(g.At(Cell{Row: 0, Col: c}), Up) {
			b.WriteString("---+")
		} else {
			b.WriteString("   +")
		}
	}
	b.WriteString("\n")

	for r := 0; r < g.rows; r++ {
		if HasState(g.At(Cell{Row: r, Col: 0}), Left) {
			b.WriteString("|")
		} else {
			b.WriteString(" ")
		}
		for c := 0; c < g.cols; c++ {
			cell := Cell{Row: r, Col: c}
			body := "   "
			if label != nil {
				if s := label(cell); s != "" {
					body = s
				}
			}
			b.WriteString(body)
			if HasState(g.At(cell), Right) {
				b.WriteString("|")
			} else {
				b.WriteString(" ")
			}
		}
		b.WriteString("\n+")
		for c := 0; c < g.cols; c++ {
			if HasState(g.At(Cell{Row: r, Col: c}), Down) {
				b.WriteString("---+")
			} else {
				b.WriteString("   +")
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}

// String renders the grid without labels.
func (g *Grid) String() string {
	return g.Render(nil)
}

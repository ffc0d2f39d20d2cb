package confetti

import (
	"strings"
	"time"

	"charm.land/lipgloss/v2"
)

type cell struct {
	glyph string
	cont  bool // right half of a wide glyph
}

// Grid is one rendered frame of falling confetti.
type Grid struct {
	width  int
	height int
	cells  [][]cell
}

// Frame places every visible particle on a width x height grid.
// Particles start one row above the top edge and fall linearly.
func Frame(ps []Particle, elapsed time.Duration, width, height int) Grid {
	g := Grid{width: max(width, 0), height: max(height, 0)}
	g.cells = make([][]cell, g.height)
	for r := range g.cells {
		g.cells[r] = make([]cell, g.width)
	}

	for _, p := range ps {
		progress, ok := p.Progress(elapsed)
		if !ok {
			continue
		}
		row := int(progress*float64(g.height+1)) - 1
		if row < 0 || row >= g.height {
			continue
		}
		w := lipgloss.Width(p.Glyph)
		col := int(p.Left / 100 * float64(g.width))
		if col > g.width-w {
			col = g.width - w
		}
		if col < 0 {
			continue
		}
		g.place(row, col, p.Glyph, w)
	}
	return g
}

func (g Grid) place(row, col int, glyph string, w int) {
	for i := col; i < col+w; i++ {
		if g.cells[row][i] != (cell{}) {
			return
		}
	}
	g.cells[row][col] = cell{glyph: glyph}
	for i := col + 1; i < col+w; i++ {
		g.cells[row][i] = cell{cont: true}
	}
}

// Visible returns the number of glyphs on the grid.
func (g Grid) Visible() int {
	n := 0
	for _, row := range g.cells {
		for _, c := range row {
			if c.glyph != "" {
				n++
			}
		}
	}
	return n
}

// String renders the grid without any foreground block.
func (g Grid) String() string {
	rows := make([]string, g.height)
	for r := range rows {
		rows[r] = g.span(r, 0, g.width)
	}
	return strings.Join(rows, "\n")
}

// Overlay renders the grid with block drawn on top at column x, row y.
// Glyphs that would be split by the block's edges are blanked.
func (g Grid) Overlay(block string, x, y int) string {
	lines := strings.Split(block, "\n")
	bw := lipgloss.Width(block)
	x = max(x, 0)
	y = max(y, 0)

	total := max(g.height, y+len(lines))
	rows := make([]string, total)
	for r := 0; r < total; r++ {
		if r < y || r >= y+len(lines) {
			rows[r] = g.span(r, 0, g.width)
			continue
		}
		line := lines[r-y]
		if pad := bw - lipgloss.Width(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		rows[r] = g.span(r, 0, x) + line + g.span(r, x+bw, g.width)
	}
	return strings.Join(rows, "\n")
}

func (g Grid) span(row, from, to int) string {
	if to > g.width {
		to = g.width
	}
	if from >= to {
		return ""
	}
	var b strings.Builder
	for i := from; i < to; {
		var c cell
		if row >= 0 && row < g.height {
			c = g.cells[row][i]
		}
		if c.glyph == "" {
			b.WriteByte(' ')
			i++
			continue
		}
		w := lipgloss.Width(c.glyph)
		if i+w > to {
			b.WriteString(strings.Repeat(" ", to-i))
			break
		}
		b.WriteString(c.glyph)
		i += w
	}
	return b.String()
}

package img2ascii

import (
	"strings"

	"github.com/wbrown/img2ascii/imageutil"
)

// Cell is one character of output. FG is only meaningful when Colored
// is set.
type Cell struct {
	Rune    rune
	FG      imageutil.RGB
	Colored bool
}

// Grid is the rendered output: Height rows of exactly Width cells.
type Grid struct {
	Width  int
	Height int
	Rows   [][]Cell
}

// newGrid allocates a width x height grid backed by a single slice.
func newGrid(width, height int) *Grid {
	g := &Grid{Width: width, Height: height, Rows: make([][]Cell, height)}
	if height == 0 {
		return g
	}
	cells := make([]Cell, width*height)
	for y := range g.Rows {
		g.Rows[y] = cells[y*width : (y+1)*width : (y+1)*width]
	}
	return g
}

// String returns the grid as plain text, one line per row, each line
// terminated by a newline.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.Height * (g.Width + 1))
	for _, row := range g.Rows {
		for _, cell := range row {
			sb.WriteRune(cell.Rune)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

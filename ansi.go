package img2ascii

import (
	"bufio"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/wbrown/img2ascii/imageutil"
)

// WriteANSI streams a grid to w. Under termenv.Ascii, or for cells
// without color, runes are written bare. Otherwise each run of
// consecutive cells sharing a color is written as one
// set-foreground / text / reset sequence, with the color degraded to
// what the profile supports. Every row ends with a newline.
func WriteANSI(w io.Writer, g *Grid, profile termenv.Profile) error {
	bw := bufio.NewWriter(w)
	var run strings.Builder

	for _, row := range g.Rows {
		for start := 0; start < len(row); {
			end := start + 1
			for end < len(row) && sameStyle(row[start], row[end]) {
				end++
			}

			run.Reset()
			for _, cell := range row[start:end] {
				run.WriteRune(cell.Rune)
			}
			if _, err := bw.WriteString(styleRun(run.String(), row[start], profile)); err != nil {
				return writeError(err)
			}
			start = end
		}
		if err := bw.WriteByte('\n'); err != nil {
			return writeError(err)
		}
	}

	if err := bw.Flush(); err != nil {
		return writeError(err)
	}
	return nil
}

// sameStyle reports whether two cells can share one escape sequence.
func sameStyle(a, b Cell) bool {
	return a.Colored == b.Colored && (!a.Colored || a.FG == b.FG)
}

// styleRun wraps text in the foreground color of cell.
func styleRun(text string, cell Cell, profile termenv.Profile) string {
	if !cell.Colored || profile == termenv.Ascii {
		return text
	}
	return profile.String(text).Foreground(profileColor(profile, cell.FG)).String()
}

// profileColor converts an RGB value to the closest color the profile
// can display.
func profileColor(profile termenv.Profile, c imageutil.RGB) termenv.Color {
	return profile.Color(c.Hex())
}

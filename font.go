package img2ascii

import (
	"fmt"
	"os"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// DefaultFontSize is the point size TrueType fonts are rasterised at.
const DefaultFontSize = 12

// LoadFontFace returns the face used to draw snapshots. An empty path
// selects the built-in 7x13 bitmap font; anything else is parsed as a
// TrueType file and rendered at size points, 72 DPI.
func LoadFontFace(path string, size float64) (font.Face, error) {
	if path == "" {
		return basicfont.Face7x13, nil
	}
	if size <= 0 {
		size = DefaultFontSize
	}

	fontBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font: %w", err)
	}

	ttf, err := freetype.ParseFont(fontBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font %s: %w", path, err)
	}

	return truetype.NewFace(ttf, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

// cellSize returns the pixel size of one character cell for face. The
// advance of 'M' is used as the cell width, so proportional fonts are
// laid out on a fixed grid.
func cellSize(face font.Face) (width, height, ascent int) {
	metrics := face.Metrics()
	height = metrics.Height.Ceil()
	ascent = metrics.Ascent.Ceil()

	advance, ok := face.GlyphAdvance('M')
	width = advance.Ceil()
	if !ok || width <= 0 {
		width = (height + 1) / 2
	}
	if height <= 0 {
		height = 1
	}
	return width, height, ascent
}

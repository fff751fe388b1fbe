package img2ascii

import (
	"image"
	"image/color"
	"path/filepath"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/wbrown/img2ascii/imageutil"
)

// uncoloredInk is the glyph color for cells rendered without color.
var uncoloredInk = imageutil.RGB{R: 0xC8, G: 0xC8, B: 0xC8}

// Load reads and decodes the image at path. Open and read failures wrap
// ErrInputNotFound, decode failures wrap ErrUnsupportedImage.
func Load(path string) (*imageutil.RGBAImage, error) {
	img, _, err := imageutil.LoadImage(path)
	if err != nil {
		return nil, classifyLoadError(path, err)
	}
	return img, nil
}

// RenderImage draws a grid onto a black canvas using face, one fixed-size
// cell per character. Colored cells use their own color; the rest are
// drawn light grey.
func RenderImage(g *Grid, face font.Face) *imageutil.RGBAImage {
	cellW, cellH, ascent := cellSize(face)
	img := imageutil.NewRGBAImage(g.Width*cellW, g.Height*cellH)
	draw.Draw(img.RGBA, img.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)

	d := &font.Drawer{Dst: img.RGBA, Face: face}
	for y, row := range g.Rows {
		for x, cell := range row {
			if cell.Rune == ' ' {
				continue
			}
			ink := uncoloredInk
			if cell.Colored {
				ink = cell.FG
			}
			d.Src = image.NewUniform(ink.ToColor())
			d.Dot = fixed.P(x*cellW, y*cellH+ascent)
			d.DrawString(string(cell.Rune))
		}
	}
	return img
}

// SaveImage renders g with face and writes it to path, encoded according
// to the file extension. Failures wrap ErrOutputWrite.
func SaveImage(g *Grid, path string, face font.Face) error {
	img := RenderImage(g, face)
	if err := imageutil.SaveImage(img.RGBA, path); err != nil {
		return writeError(err)
	}
	return nil
}

// IsImageOutput reports whether path should receive a rendered image
// rather than text.
func IsImageOutput(path string) bool {
	return path != "" && imageutil.IsImagePath(filepath.Clean(path))
}

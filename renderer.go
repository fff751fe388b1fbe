// Package img2ascii renders raster images as character grids for the
// terminal: nearest-neighbour sampling, BT.709 luminance and a glyph ramp.
package img2ascii

import (
	"math"
	"sync"

	"github.com/wbrown/img2ascii/imageutil"
)

// Output limits. maxRows bounds the height a huge aspect factor can
// produce; maxCells bounds the whole grid, so a huge width is caught too.
const (
	maxRows  = 1 << 16
	maxCells = 1 << 24
)

// Renderer converts decoded images into character grids. A Renderer is
// immutable once built and may be shared between goroutines.
type Renderer struct {
	cfg Config
}

// RendererOption is a functional option for configuring a Renderer.
type RendererOption func(*Renderer)

// NewRenderer creates a new Renderer with the given options.
// Default values: Width=120, AspectRatio=0.50, Charset=DefaultCharset,
// Color=true, Resample=nearest, Workers=1.
func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{cfg: DefaultConfig()}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) RendererOption {
	return func(r *Renderer) {
		r.cfg = cfg
	}
}

// WithTargetWidth sets the output width in characters.
func WithTargetWidth(width int) RendererOption {
	return func(r *Renderer) {
		r.cfg.Width = width
	}
}

// WithAspectRatio sets the vertical compensation factor for terminal
// character cells.
func WithAspectRatio(factor float64) RendererOption {
	return func(r *Renderer) {
		r.cfg.AspectRatio = factor
	}
}

// WithCharset sets the glyph ramp, darkest luminance first.
func WithCharset(charset string) RendererOption {
	return func(r *Renderer) {
		r.cfg.Charset = charset
	}
}

// WithColor enables or disables per-cell color.
func WithColor(enabled bool) RendererOption {
	return func(r *Renderer) {
		r.cfg.Color = enabled
	}
}

// WithResample selects how source pixels are picked for each cell.
func WithResample(interp imageutil.Interpolation) RendererOption {
	return func(r *Renderer) {
		r.cfg.Resample = interp
	}
}

// WithWorkers splits rows across n goroutines. Values below 1 mean 1.
func WithWorkers(n int) RendererOption {
	return func(r *Renderer) {
		r.cfg.Workers = n
	}
}

// Config returns a copy of the renderer configuration.
func (r *Renderer) Config() Config {
	return r.cfg
}

// OutputSize returns the grid dimensions Render produces for img:
// the configured width, and round(width * h/w * aspect) rows.
func (r *Renderer) OutputSize(img *imageutil.RGBAImage) (width, height int, err error) {
	if _, err := r.cfg.Validate(); err != nil {
		return 0, 0, err
	}
	return r.outputSize(img)
}

func (r *Renderer) outputSize(img *imageutil.RGBAImage) (int, int, error) {
	if img == nil || img.RGBA == nil {
		return 0, 0, configError("no image")
	}
	iw, ih := img.Width(), img.Height()
	if iw <= 0 || ih <= 0 {
		return 0, 0, configError("image has a zero dimension (%dx%d)", iw, ih)
	}

	width := r.cfg.Width
	height := math.Round(float64(width) * (float64(ih) / float64(iw)) * r.cfg.AspectRatio)
	if height > maxRows {
		return 0, 0, configError("output height %.0f exceeds %d rows", height, maxRows)
	}
	if float64(width)*height > maxCells {
		return 0, 0, configError("output of %dx%.0f exceeds %d cells", width, height, maxCells)
	}
	return width, int(height), nil
}

// Render samples img into a grid. The configuration and the image are
// validated before any pixel is read; failures wrap
// ErrInvalidConfiguration. An output height of zero yields an empty grid.
func (r *Renderer) Render(img *imageutil.RGBAImage) (*Grid, error) {
	ramp, err := r.cfg.Validate()
	if err != nil {
		return nil, err
	}
	width, height, err := r.outputSize(img)
	if err != nil {
		return nil, err
	}

	grid := newGrid(width, height)
	if height == 0 {
		return grid, nil
	}

	src := img
	if r.cfg.Resample != imageutil.InterpolationNearest {
		src = imageutil.Resize(img, width, height, r.cfg.Resample)
	}

	workers := min(max(r.cfg.Workers, 1), height)
	if workers == 1 {
		for y := 0; y < height; y++ {
			r.renderRow(src, ramp, grid.Rows[y], y, height)
		}
		return grid, nil
	}

	// Rows are independent; worker w owns rows w, w+workers, ...
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(start int) {
			defer wg.Done()
			for y := start; y < height; y += workers {
				r.renderRow(src, ramp, grid.Rows[y], y, height)
			}
		}(w)
	}
	wg.Wait()

	return grid, nil
}

// renderRow fills row y of a grid that is height rows tall. Source
// coordinates are floor(x/width*srcW) and floor(y/height*srcH), computed
// in integers so a 1:1 scale maps every cell to its own pixel.
func (r *Renderer) renderRow(
	src *imageutil.RGBAImage,
	ramp Ramp,
	row []Cell,
	y, height int,
) {
	bounds := src.Bounds()
	sw, sh := bounds.Dx(), bounds.Dy()
	width := len(row)

	sy := min(y*sh/height, sh-1)
	for x := range row {
		sx := min(x*sw/width, sw-1)
		c := src.GetRGB(bounds.Min.X+sx, bounds.Min.Y+sy)

		cell := Cell{Rune: ramp.Glyph(imageutil.Luminance(c))}
		if r.cfg.Color {
			cell.FG = c
			cell.Colored = true
		}
		row[x] = cell
	}
}

package img2ascii

import (
	"math"

	"github.com/wbrown/img2ascii/imageutil"
)

// Default configuration values.
const (
	DefaultWidth       = 120
	DefaultAspectRatio = 0.50
)

// Config holds everything a Renderer needs. It is built once from user
// input and not modified afterwards.
type Config struct {
	// Width is the number of output columns.
	Width int

	// AspectRatio scales the output height to compensate for terminal
	// cells being taller than they are wide.
	AspectRatio float64

	// Charset is the glyph ramp, darkest luminance first.
	Charset string

	// Color attaches the sampled pixel color to every cell.
	Color bool

	// Resample selects how source pixels are picked for each cell.
	Resample imageutil.Interpolation

	// Workers is the number of goroutines rows are split across.
	Workers int
}

// DefaultConfig returns the configuration used when no option overrides it.
func DefaultConfig() Config {
	return Config{
		Width:       DefaultWidth,
		AspectRatio: DefaultAspectRatio,
		Charset:     DefaultCharset,
		Color:       true,
		Resample:    imageutil.InterpolationNearest,
		Workers:     1,
	}
}

// Validate checks the configuration and returns the ramp built from
// Charset. Failures wrap ErrInvalidConfiguration.
func (c Config) Validate() (Ramp, error) {
	if c.Width <= 0 {
		return nil, configError("width must be positive, got %d", c.Width)
	}
	if c.AspectRatio <= 0 || math.IsNaN(c.AspectRatio) || math.IsInf(c.AspectRatio, 0) {
		return nil, configError("aspect ratio compensation must be a positive number, got %v", c.AspectRatio)
	}
	switch c.Resample {
	case imageutil.InterpolationNearest, imageutil.InterpolationLinear, imageutil.InterpolationArea:
	default:
		return nil, configError("unknown resample mode %d", int(c.Resample))
	}
	return NewRamp(c.Charset)
}

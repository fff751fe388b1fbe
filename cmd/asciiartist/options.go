package main

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/wbrown/img2ascii"
	"github.com/wbrown/img2ascii/imageutil"
)

const longDescription = `Converts an image into ASCII art printed to the terminal.

Each output character samples one source pixel (nearest neighbour), takes
its BT.709 luminance and picks the matching glyph from the charset: the
first glyph for black, the last for white. With color enabled every glyph
is drawn in its pixel's color, degraded to what the terminal supports.

Decrease --aspect-ratio-compensation (e.g. 0.45) if the result looks
squashed vertically, increase it (e.g. 0.65) if it looks stretched.

Examples:
  asciiartist -i photo.jpg
  asciiartist -i photo.png -w 80 --no-color
  asciiartist -i portrait.jpeg -w 100 -c " .-+=%#" -A 0.5
  asciiartist -i photo.png -o art.png`

type options struct {
	Input       string  `short:"i" long:"input" description:"Path to the input image (png, jpeg, gif, bmp, tiff, webp)" value-name:"PATH" required:"true"`
	Width       uint    `short:"w" long:"width" description:"Output width in characters" value-name:"WIDTH" default:"120"`
	Charset     string  `short:"c" long:"charset" description:"Glyph ramp, first glyph for dark pixels, last for bright ones" value-name:"CHARSET" default:" .:-=+*#%@"`
	Color       string  `short:"C" long:"color" description:"Draw glyphs in the source pixel color; give the value attached (--color=false, -Cfalse)" optional:"yes" optional-value:"true" default:"true" choice:"true" choice:"false"`
	NoColor     bool    `long:"no-color" description:"Disable colored output (same as --color=false)"`
	AspectRatio float64 `short:"A" long:"aspect-ratio-compensation" description:"Vertical scale correction for non-square terminal cells" value-name:"FACTOR" default:"0.50"`
	Fit         bool    `short:"F" long:"fit" description:"Use the terminal width instead of --width when stdout is a terminal"`
	Output      string  `short:"o" long:"output" description:"Write to a file instead of stdout: .png/.jpg/.gif render an image, .ans keeps colors, anything else is plain text" value-name:"PATH"`
	Font        string  `long:"font" description:"TrueType font for image output (default: built-in 7x13 bitmap font)" value-name:"TTF"`
	FontSize    float64 `long:"font-size" description:"Point size for --font" default:"12"`
	Resample    string  `short:"r" long:"resample" description:"Pixel sampling method" default:"nearest" choice:"nearest" choice:"bilinear" choice:"area"`
	Workers     int     `short:"j" long:"workers" description:"Number of goroutines to render rows with" default:"1"`
	Verbose     bool    `short:"v" long:"verbose" description:"Enable debug logging"`
}

// colorEnabled resolves --color and --no-color.
func (o *options) colorEnabled() bool {
	return !o.NoColor && o.Color != "false"
}

// config converts parsed flags into a renderer configuration. When --fit
// is set and stdout is a terminal, its width replaces --width.
func (o *options) config(stdout io.Writer) (img2ascii.Config, error) {
	resample, err := imageutil.ParseInterpolation(o.Resample)
	if err != nil {
		return img2ascii.Config{}, fmt.Errorf("%w: %w", img2ascii.ErrInvalidConfiguration, err)
	}

	cfg := img2ascii.Config{
		Width:       int(o.Width),
		AspectRatio: o.AspectRatio,
		Charset:     o.Charset,
		Color:       o.colorEnabled(),
		Resample:    resample,
		Workers:     o.Workers,
	}
	if o.Fit {
		if w, ok := terminalWidth(stdout); ok {
			cfg.Width = w
		}
	}

	if _, err := cfg.Validate(); err != nil {
		return img2ascii.Config{}, err
	}
	return cfg, nil
}

// terminalWidth returns the column count of w if it is a terminal.
func terminalWidth(w io.Writer) (int, bool) {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0, false
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return 0, false
	}
	return width, true
}

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/muesli/termenv"

	"github.com/wbrown/img2ascii"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one conversion and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	start := time.Now()

	var opts options
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "asciiartist"
	parser.LongDescription = longDescription
	rest, err := parser.ParseArgs(args)
	if err != nil {
		if flags.WroteHelp(err) {
			fmt.Fprintln(stdout, err)
			return 0
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		fmt.Fprintln(stderr, "Run with --help for usage.")
		return 1
	}
	// Optional values must be attached (--color=false, -Cfalse), so a
	// detached one is left over here.
	if len(rest) > 0 {
		fmt.Fprintf(stderr, "Error: unexpected argument %q\n", rest[0])
		fmt.Fprintln(stderr, "Run with --help for usage.")
		return 1
	}

	logger := newLogger(stderr, opts.Verbose)

	cfg, err := opts.config(stdout)
	if err != nil {
		return fail(stderr, err)
	}
	logger.Debug("configuration",
		slog.Int("width", cfg.Width),
		slog.Float64("aspect", cfg.AspectRatio),
		slog.String("charset", cfg.Charset),
		slog.Bool("color", cfg.Color),
		slog.String("resample", cfg.Resample.String()),
		slog.Int("workers", cfg.Workers))

	logger.Info("loading image", slog.String("path", opts.Input))
	img, err := img2ascii.Load(opts.Input)
	if err != nil {
		return fail(stderr, err)
	}
	logger.Info("image dimensions", slog.Int("width", img.Width()), slog.Int("height", img.Height()))

	grid, err := img2ascii.NewRenderer(img2ascii.WithConfig(cfg)).Render(img)
	if err != nil {
		return fail(stderr, err)
	}
	logger.Debug("rendered", slog.Int("columns", grid.Width), slog.Int("rows", grid.Height))

	if err := emit(grid, &opts, cfg, stdout, logger); err != nil {
		return fail(stderr, err)
	}

	if _, err := fmt.Fprintf(stdout, "\nConversion complete! Time taken: %v\n",
		time.Since(start).Round(10*time.Microsecond)); err != nil {
		return fail(stderr, err)
	}
	return 0
}

// emit sends the grid to stdout or to the --output file.
func emit(
	grid *img2ascii.Grid,
	opts *options,
	cfg img2ascii.Config,
	stdout io.Writer,
	logger *slog.Logger,
) error {
	switch {
	case opts.Output == "":
		return img2ascii.WriteANSI(stdout, grid, colorProfile(stdout, cfg.Color))

	case img2ascii.IsImageOutput(opts.Output):
		face, err := img2ascii.LoadFontFace(opts.Font, opts.FontSize)
		if err != nil {
			return fmt.Errorf("%w: %w", img2ascii.ErrInvalidConfiguration, err)
		}
		defer face.Close()
		if err := img2ascii.SaveImage(grid, opts.Output, face); err != nil {
			return err
		}

	default:
		profile := termenv.Ascii
		if cfg.Color && strings.EqualFold(filepath.Ext(opts.Output), ".ans") {
			profile = termenv.TrueColor
		}
		if err := writeFile(opts.Output, grid, profile); err != nil {
			return err
		}
	}

	logger.Info("output written", slog.String("path", opts.Output))
	return nil
}

// writeFile writes the grid as text to path.
func writeFile(path string, grid *img2ascii.Grid, profile termenv.Profile) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", img2ascii.ErrOutputWrite, err)
	}
	if err := img2ascii.WriteANSI(f, grid, profile); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %w", img2ascii.ErrOutputWrite, err)
	}
	return nil
}

// colorProfile picks the color profile for w. Disabled color, and writers
// that are not color-capable terminals, get plain text.
func colorProfile(w io.Writer, enabled bool) termenv.Profile {
	if !enabled {
		return termenv.Ascii
	}
	return termenv.NewOutput(w).EnvColorProfile()
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func fail(stderr io.Writer, err error) int {
	fmt.Fprintf(stderr, "Error: %v\n", err)
	return 1
}

package img2ascii

import (
	"errors"
	"fmt"
	"io/fs"
)

// Error kinds. Every error returned by this package wraps exactly one of
// these, alongside the underlying cause, so callers can branch with
// errors.Is.
var (
	// ErrInputNotFound reports that the source image could not be opened
	// or read.
	ErrInputNotFound = errors.New("input not found or unreadable")

	// ErrUnsupportedImage reports that the source bytes are not an image
	// in any registered format.
	ErrUnsupportedImage = errors.New("unsupported or corrupt image")

	// ErrInvalidConfiguration reports a zero width, an empty charset, a
	// non-positive aspect factor or a degenerate source image.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrOutputWrite reports a failure writing rendered output.
	ErrOutputWrite = errors.New("output write failure")
)

// configError builds an ErrInvalidConfiguration with a reason.
func configError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfiguration, fmt.Sprintf(format, args...))
}

// classifyLoadError maps a failure from imageutil.LoadImage onto the
// input or decode kind. Filesystem failures surface as *fs.PathError,
// everything else came from the decoder.
func classifyLoadError(path string, err error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return fmt.Errorf("%w: %w", ErrInputNotFound, err)
	}
	return fmt.Errorf("%w: %s: %w", ErrUnsupportedImage, path, err)
}

// writeError wraps an output failure.
func writeError(err error) error {
	return fmt.Errorf("%w: %w", ErrOutputWrite, err)
}

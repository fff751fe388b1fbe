package img2ascii

import "math"

// DefaultCharset is the ramp used when none is configured. Index 0 is
// drawn for black pixels, the last rune for white ones.
const DefaultCharset = " .:-=+*#%@"

// Ramp is an ordered set of glyphs indexed by quantized luminance.
// Index 0 corresponds to luminance 0 and the last index to 255.
type Ramp []rune

// NewRamp splits charset into runes. An empty charset is rejected.
func NewRamp(charset string) (Ramp, error) {
	ramp := Ramp([]rune(charset))
	if len(ramp) == 0 {
		return nil, configError("charset must not be empty")
	}
	return ramp, nil
}

// Index returns the ramp position for a luminance value:
// round(lum / 255 * (len-1)).
func (r Ramp) Index(lum uint8) int {
	if len(r) == 0 {
		return -1
	}
	return int(math.Round(float64(lum) / 255 * float64(len(r)-1)))
}

// Glyph returns the rune drawn for lum. A position outside the ramp
// yields a space.
func (r Ramp) Glyph(lum uint8) rune {
	idx := r.Index(lum)
	if idx < 0 || idx >= len(r) {
		return ' '
	}
	return r[idx]
}

// String returns the ramp as the charset it was built from.
func (r Ramp) String() string {
	return string(r)
}

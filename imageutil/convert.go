package imageutil

import "math"

// BT.709 luma coefficients.
const (
	lumaR = 0.2126
	lumaG = 0.7152
	lumaB = 0.0722
)

// Luminance returns the BT.709 luma of c, rounded to the nearest integer
// and clamped to [0, 255].
func Luminance(c RGB) uint8 {
	lum := math.Round(lumaR*float64(c.R) + lumaG*float64(c.G) + lumaB*float64(c.B))
	if lum < 0 {
		return 0
	}
	if lum > 255 {
		return 255
	}
	return uint8(lum)
}

package imageutil

import (
	"fmt"
	"image"
	"strings"

	"golang.org/x/image/draw"
)

// Interpolation specifies the interpolation method for resizing.
type Interpolation int

const (
	// InterpolationNearest picks the source pixel under each destination
	// pixel center, no blending.
	InterpolationNearest Interpolation = iota

	// InterpolationLinear uses bilinear interpolation.
	InterpolationLinear

	// InterpolationArea uses Catmull-Rom, which averages the covered
	// source area well when downscaling.
	InterpolationArea
)

// String returns the name used on the command line.
func (i Interpolation) String() string {
	switch i {
	case InterpolationNearest:
		return "nearest"
	case InterpolationLinear:
		return "bilinear"
	case InterpolationArea:
		return "area"
	}
	return "unknown"
}

// scaler maps an Interpolation to the x/image/draw kernel implementing it.
func (i Interpolation) scaler() draw.Scaler {
	switch i {
	case InterpolationNearest:
		return draw.NearestNeighbor
	case InterpolationLinear:
		return draw.BiLinear
	default:
		return draw.CatmullRom
	}
}

// Resize resizes an RGBA image to the specified dimensions using the
// given interpolation method.
func Resize(img *RGBAImage, width, height int, interp Interpolation) *RGBAImage {
	dst := NewRGBAImage(width, height)
	dstRect := image.Rect(0, 0, width, height)

	interp.scaler().Scale(dst.RGBA, dstRect, img.RGBA, img.Bounds(), draw.Src, nil)
	return dst
}

// ParseInterpolation maps a command-line name back to an Interpolation.
func ParseInterpolation(name string) (Interpolation, error) {
	switch strings.ToLower(name) {
	case "", "nearest":
		return InterpolationNearest, nil
	case "bilinear", "linear":
		return InterpolationLinear, nil
	case "area", "catmullrom":
		return InterpolationArea, nil
	}
	return InterpolationNearest, fmt.Errorf("unknown interpolation %q", name)
}

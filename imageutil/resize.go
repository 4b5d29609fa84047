package imageutil

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// Interpolation specifies the interpolation method for resizing.
type Interpolation int

const (
	// InterpolationNearest uses nearest-neighbor interpolation.
	// Preserves hard pixel edges, which suits block rendering.
	InterpolationNearest Interpolation = iota

	// InterpolationLinear uses bilinear interpolation.
	InterpolationLinear

	// InterpolationArea uses Catmull-Rom for high-quality downscaling.
	InterpolationArea
)

// Resize resizes an RGBA image to the specified dimensions using the
// given interpolation method. Non-positive dimensions are an error.
func Resize(img *RGBAImage, width, height int, interp Interpolation) (*RGBAImage, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid resize target %dx%d", width, height)
	}

	dst := NewRGBAImage(width, height)
	dstRect := image.Rect(0, 0, width, height)

	var scaler draw.Scaler
	switch interp {
	case InterpolationLinear:
		scaler = draw.BiLinear
	case InterpolationArea:
		scaler = draw.CatmullRom
	default:
		scaler = draw.NearestNeighbor
	}

	scaler.Scale(dst.NRGBA, dstRect, img.NRGBA, img.Bounds(), draw.Src, nil)
	return dst, nil
}

// ResizeToWidth resizes an image to the specified width while maintaining
// aspect ratio.
func ResizeToWidth(img *RGBAImage, width int, interp Interpolation) (*RGBAImage, error) {
	aspectRatio := float64(img.Width()) / float64(img.Height())
	height := int(float64(width) / aspectRatio)
	if height < 1 {
		height = 1
	}
	return Resize(img, width, height, interp)
}

// ResizeToHeight resizes an image to the specified height while maintaining
// aspect ratio.
func ResizeToHeight(img *RGBAImage, height int, interp Interpolation) (*RGBAImage, error) {
	aspectRatio := float64(img.Width()) / float64(img.Height())
	width := int(float64(height) * aspectRatio)
	if width < 1 {
		width = 1
	}
	return Resize(img, width, height, interp)
}

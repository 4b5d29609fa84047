// Package imageutil provides the pure Go image plumbing used by the
// renderer: pixel buffers, decoding, and resizing.
package imageutil

import (
	"image"
	"image/color"
)

// RGB represents a color in the RGB color space with 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// ToColor converts RGB to color.NRGBA for use with standard library.
func (rgb RGB) ToColor() color.NRGBA {
	return color.NRGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}
}

// RGBFromColor converts a color.Color to RGB.
func RGBFromColor(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	return RGB{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
	}
}

// RGBAImage wraps image.NRGBA with convenience methods for pixel access.
// The backing store is non-alpha-premultiplied, so transparent and
// semi-transparent pixels keep their authored color channels.
type RGBAImage struct {
	*image.NRGBA
}

// NewRGBAImage creates a new RGBAImage with the specified dimensions.
// All pixels start fully transparent.
func NewRGBAImage(width, height int) *RGBAImage {
	return &RGBAImage{
		NRGBA: image.NewNRGBA(image.Rect(0, 0, width, height)),
	}
}

// RGBAImageFromImage converts any image.Image to RGBAImage.
func RGBAImageFromImage(img image.Image) *RGBAImage {
	if src, ok := img.(*RGBAImage); ok {
		return src
	}
	bounds := img.Bounds()
	rgba := NewRGBAImage(bounds.Dx(), bounds.Dy())

	if src, ok := img.(*image.NRGBA); ok {
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			srcOff := src.PixOffset(bounds.Min.X, y)
			dstOff := rgba.PixOffset(0, y-bounds.Min.Y)
			copy(rgba.Pix[dstOff:dstOff+bounds.Dx()*4], src.Pix[srcOff:])
		}
		return rgba
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			rgba.Set(x-bounds.Min.X, y-bounds.Min.Y, img.At(x, y))
		}
	}
	return rgba
}

// Width returns the image width.
func (img *RGBAImage) Width() int {
	return img.Bounds().Dx()
}

// Height returns the image height.
func (img *RGBAImage) Height() int {
	return img.Bounds().Dy()
}

// GetRGB returns the RGB value at (x, y), ignoring alpha.
func (img *RGBAImage) GetRGB(x, y int) RGB {
	c := img.NRGBAAt(x, y)
	return RGB{R: c.R, G: c.G, B: c.B}
}

// SetRGB sets the RGB value at (x, y) with full opacity.
func (img *RGBAImage) SetRGB(x, y int, c RGB) {
	img.SetNRGBA(x, y, color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255})
}

// Clone creates a deep copy of the image.
func (img *RGBAImage) Clone() *RGBAImage {
	clone := NewRGBAImage(img.Width(), img.Height())
	copy(clone.Pix, img.Pix)
	return clone
}

// PadToHeight returns a copy of the image extended to the given height.
// Added rows are fully transparent. Heights at or below the current
// height return the image unchanged.
func (img *RGBAImage) PadToHeight(height int) *RGBAImage {
	if height <= img.Height() {
		return img
	}
	padded := NewRGBAImage(img.Width(), height)
	copy(padded.Pix, img.Pix)
	return padded
}

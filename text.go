package termpix

import (
	"fmt"
	"image"
	"strings"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/wbrown/termpix/imageutil"
)

const fontDPI = 72

// TextOption is a functional option for configuring text rasterization.
type TextOption func(*textConfig)

type textConfig struct {
	fontBytes []byte
	size      float64
	color     Color
}

// WithFont rasterizes with the given TTF font data instead of the
// embedded default face.
func WithFont(ttf []byte) TextOption {
	return func(c *textConfig) {
		c.fontBytes = ttf
	}
}

// WithFontSize sets the font size in points.
func WithFontSize(size float64) TextOption {
	return func(c *textConfig) {
		c.size = size
	}
}

// WithTextColor sets the pixel color of rendered glyphs.
func WithTextColor(c Color) TextOption {
	return func(tc *textConfig) {
		tc.color = c
	}
}

// FromText rasterizes a string, newlines included, and renders the
// resulting pixel grid with the default halfcell renderer. Glyph
// pixels carry the text color and everything else stays transparent,
// so the terminal background shows through. For other geometries,
// rasterize with RasterizeText and render via FromImage.
func FromText(text string, opts ...TextOption) (*Pixels, error) {
	img, err := RasterizeText(text, opts...)
	if err != nil {
		return nil, err
	}
	return FromImage(img)
}

// RasterizeText renders a string to a pixel grid using an embedded
// regular face by default. The grid is tightly sized to the text's
// line metrics.
func RasterizeText(text string, opts ...TextOption) (*imageutil.RGBAImage, error) {
	cfg := textConfig{
		fontBytes: goregular.TTF,
		size:      16,
		color:     ColorWhite,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	ttf, err := freetype.ParseFont(cfg.fontBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}

	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    cfg.size,
		DPI:     fontDPI,
		Hinting: font.HintingFull,
	})
	defer face.Close()

	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	descent := metrics.Descent.Ceil()
	lineHeight := metrics.Height.Ceil()

	lines := strings.Split(text, "\n")
	width := 0
	for _, line := range lines {
		if w := font.MeasureString(face, line).Ceil(); w > width {
			width = w
		}
	}
	height := ascent + descent + (len(lines)-1)*lineHeight

	// Glyph coverage lands in an alpha mask first; anti-aliased edge
	// pixels below 25% coverage are treated as background.
	mask := image.NewAlpha(image.Rect(0, 0, width, height))

	ctx := freetype.NewContext()
	ctx.SetDPI(fontDPI)
	ctx.SetFont(ttf)
	ctx.SetFontSize(cfg.size)
	ctx.SetClip(mask.Bounds())
	ctx.SetDst(mask)
	ctx.SetSrc(image.White)
	ctx.SetHinting(font.HintingFull)

	for i, line := range lines {
		pt := freetype.Pt(0, ascent+i*lineHeight)
		if _, err := ctx.DrawString(line, pt); err != nil {
			return nil, fmt.Errorf("failed to draw text: %w", err)
		}
	}

	img := imageutil.NewRGBAImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if mask.AlphaAt(x, y).A > 64 {
				img.SetRGB(x, y, imageutil.RGB{R: cfg.color.R, G: cfg.color.G, B: cfg.color.B})
			}
		}
	}
	return img, nil
}

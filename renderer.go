package termpix

import (
	"image"

	"github.com/wbrown/termpix/imageutil"
)

// upperHalfBlock fills the top half of a cell with the foreground
// color, leaving the bottom half to the background color.
const upperHalfBlock = "▀"

// Geometry selects how pixels map onto terminal cells.
type Geometry int

const (
	// Halfcell packs two vertically stacked pixels into one cell by
	// drawing the upper half block with the top pixel as foreground
	// and the bottom pixel as background.
	Halfcell Geometry = iota

	// Fullcell maps one pixel to a two-space cell whose background
	// carries the pixel color, approximating square pixels.
	Fullcell
)

// Size is a target width and height in pixels. The zero value means
// "use the source dimensions".
type Size struct {
	Width  int
	Height int
}

// IsZero reports whether no resize was requested.
func (s Size) IsZero() bool {
	return s.Width == 0 && s.Height == 0
}

// Renderer converts pixel grids into styled segments under a fixed
// geometry and transparency configuration. A Renderer holds no state
// between calls: the same source and configuration always produce the
// same segments, and independent goroutines may share one freely.
type Renderer struct {
	geometry           Geometry
	defaultColor       Color
	blankOnTransparent bool
}

// RendererOption is a functional option for configuring a Renderer.
type RendererOption func(*Renderer)

// NewRenderer creates a new Renderer with the given options.
// Defaults: Halfcell geometry, no substitute color for transparent
// pixels, half blocks emitted regardless of transparency.
func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{
		defaultColor: ColorDefault,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// WithGeometry selects the pixel-to-cell geometry.
func WithGeometry(g Geometry) RendererOption {
	return func(r *Renderer) {
		r.geometry = g
	}
}

// WithDefaultColor sets the color substituted for fully transparent
// pixels.
func WithDefaultColor(c Color) RendererOption {
	return func(r *Renderer) {
		r.defaultColor = c
	}
}

// WithBlankOnTransparent makes the halfcell geometry emit a space
// instead of the half block when the lower pixel of a pair is fully
// transparent and no default color is configured. Without this option
// the glyph is always emitted, so the upper pixel's color survives
// even over transparency.
func WithBlankOnTransparent() RendererOption {
	return func(r *Renderer) {
		r.blankOnTransparent = true
	}
}

// nullStyle is the style for cells with no color of their own:
// "on defaultColor" when a substitute is configured, the default
// style otherwise.
func (r *Renderer) nullStyle() Style {
	if r.defaultColor.IsDefault() {
		return DefaultStyle()
	}
	return OnColor(r.defaultColor)
}

// Render converts an image to styled segments, one row of cells per
// line, each line closed by a "\n" segment. A non-zero target
// resamples the source first using nearest-neighbor interpolation,
// preserving hard pixel edges.
//
// The halfcell geometry needs an even pixel height: odd resize targets
// are rounded up by one, and an odd-height source used as-is gains one
// synthetic fully transparent row.
func (r *Renderer) Render(img image.Image, target Size) ([]Segment, error) {
	src := imageutil.RGBAImageFromImage(img)

	if !target.IsZero() {
		width, height := target.Width, target.Height
		if r.geometry == Halfcell && height%2 != 0 {
			height++
		}
		resized, err := imageutil.Resize(src, width, height, imageutil.InterpolationNearest)
		if err != nil {
			return nil, err
		}
		src = resized
	}
	if r.geometry == Halfcell && src.Height()%2 != 0 {
		src = src.PadToHeight(src.Height() + 1)
	}

	width, height := src.Width(), src.Height()
	nullStyle := r.nullStyle()

	step := 1
	if r.geometry == Halfcell {
		step = 2
	}

	var segments []Segment
	for y := 0; y < height; y += step {
		row := r.renderLine(src, y, width)
		if degenerateRow(row) {
			continue
		}
		segments = append(segments, row...)
		segments = append(segments, Segment{Text: "\n", Style: nullStyle})
	}
	return segments, nil
}

// renderLine renders one logical row of cells.
func (r *Renderer) renderLine(src *imageutil.RGBAImage, y, width int) []Segment {
	switch r.geometry {
	case Fullcell:
		return r.fullcellLine(src, y, width)
	default:
		return r.halfcellLine(src, y, width)
	}
}

func (r *Renderer) fullcellLine(src *imageutil.RGBAImage, y, width int) []Segment {
	nullStyle := r.nullStyle()

	row := make([]Segment, 0, width)
	for x := 0; x < width; x++ {
		c := src.NRGBAAt(x, y)
		if c.A > 0 {
			row = append(row, Segment{Text: "  ", Style: OnColor(RGB(c.R, c.G, c.B))})
		} else {
			row = append(row, Segment{Text: "  ", Style: nullStyle})
		}
	}
	return row
}

func (r *Renderer) halfcellLine(src *imageutil.RGBAImage, y, width int) []Segment {
	row := make([]Segment, 0, width)
	for x := 0; x < width; x++ {
		upper := r.pixelColor(src, x, y)
		lower := r.pixelColor(src, x, y+1)

		text := upperHalfBlock
		if r.blankOnTransparent && src.NRGBAAt(x, y+1).A == 0 && r.defaultColor.IsDefault() {
			text = " "
		}
		row = append(row, Segment{
			Text:  text,
			Style: Style{Foreground: upper, Background: lower},
		})
	}
	return row
}

// pixelColor resolves one pixel to its cell color: the pixel's own RGB
// when it has any opacity, the configured substitute otherwise.
func (r *Renderer) pixelColor(src *imageutil.RGBAImage, x, y int) Color {
	c := src.NRGBAAt(x, y)
	if c.A > 0 {
		return RGB(c.R, c.G, c.B)
	}
	return r.defaultColor
}

// degenerateRow reports whether every segment in the row has empty
// text. Such rows are dropped rather than emitted as bare newlines.
func degenerateRow(row []Segment) bool {
	for _, seg := range row {
		if seg.Text != "" {
			return false
		}
	}
	return true
}

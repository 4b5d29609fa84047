// Package termpix converts pixel data into styled terminal segments.
//
// Images (or hand-authored ASCII grids) become sequences of colored
// character cells that reproduce the source as blocks of text. The
// default geometry packs two vertically stacked pixels into every
// terminal cell using the upper half block glyph; a full-cell geometry
// maps one pixel to a two-space cell instead.
package termpix

import (
	"encoding/base64"
	"fmt"
	"image"

	"github.com/wbrown/termpix/imageutil"
)

// Pixels is a finalized rendering: a flat segment sequence ready for a
// terminal sink. A Pixels is immutable after construction; the zero
// value renders nothing.
type Pixels struct {
	segments []Segment
}

// Segments returns the rendered segment sequence. Callers must not
// modify the returned slice.
func (p *Pixels) Segments() []Segment {
	if p == nil {
		return nil
	}
	return p.segments
}

// Option configures how an adapter renders its source.
type Option func(*adapterConfig)

type adapterConfig struct {
	target   Size
	renderer *Renderer
}

// WithResize requests resampling to the given pixel dimensions before
// rendering.
func WithResize(width, height int) Option {
	return func(c *adapterConfig) {
		c.target = Size{Width: width, Height: height}
	}
}

// WithRenderer renders with the given renderer instead of the default
// halfcell one.
func WithRenderer(r *Renderer) Option {
	return func(c *adapterConfig) {
		c.renderer = r
	}
}

// FromImage renders a decoded image.
func FromImage(img image.Image, opts ...Option) (*Pixels, error) {
	cfg := adapterConfig{renderer: NewRenderer()}
	for _, opt := range opts {
		opt(&cfg)
	}

	segments, err := cfg.renderer.Render(img, cfg.target)
	if err != nil {
		return nil, err
	}
	return &Pixels{segments: segments}, nil
}

// FromImagePath loads and renders the image file at path.
func FromImagePath(path string, opts ...Option) (*Pixels, error) {
	img, err := imageutil.LoadImage(path)
	if err != nil {
		return nil, err
	}
	return FromImage(img, opts...)
}

// FromBase64Image decodes a base64-encoded image payload and renders it.
func FromBase64Image(data string, opts ...Option) (*Pixels, error) {
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64 image: %w", err)
	}

	img, err := imageutil.DecodeImageBytes(raw)
	if err != nil {
		return nil, err
	}
	return FromImage(img, opts...)
}

// FromSegments wraps a pre-built segment sequence directly, bypassing
// pixel rendering entirely.
func FromSegments(segments []Segment) *Pixels {
	return &Pixels{segments: append([]Segment(nil), segments...)}
}

// FromASCII builds a renderable from a text grid. Every rune of the
// grid, newlines included, becomes one segment: the mapped segment
// when the rune has an entry in mapping, an unstyled single-rune
// segment otherwise. An empty grid renders nothing.
func FromASCII(grid string, mapping map[rune]Segment) *Pixels {
	segments := make([]Segment, 0, len(grid))
	for _, r := range grid {
		if seg, ok := mapping[r]; ok {
			segments = append(segments, seg)
			continue
		}
		segments = append(segments, Unstyled(string(r)))
	}
	return &Pixels{segments: segments}
}

package termpix

import (
	"fmt"
	"io"
	"strings"
)

const esc = "\x1b"

// WriteANSI writes segments to w as 24-bit ANSI-styled text. Escape
// sequences are elided while consecutive segments share a style, and
// every "\n" segment resets the style before the line break so partial
// output never bleeds color into surrounding text.
func WriteANSI(w io.Writer, segments []Segment) error {
	var sb strings.Builder

	current := DefaultStyle()
	for _, seg := range segments {
		if seg.Text == "\n" {
			sb.WriteString(esc + "[0m\n")
			current = DefaultStyle()
			continue
		}
		if !seg.Style.Equals(current) {
			sb.WriteString(sgr(seg.Style))
			current = seg.Style
		}
		sb.WriteString(seg.Text)
	}
	if !current.IsDefault() {
		sb.WriteString(esc + "[0m")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// ANSIString renders segments to a string of ANSI-styled text.
func ANSIString(segments []Segment) string {
	var sb strings.Builder
	WriteANSI(&sb, segments)
	return sb.String()
}

// String renders the Pixels as ANSI-styled text, so a Pixels can be
// handed directly to fmt.Print.
func (p *Pixels) String() string {
	return ANSIString(p.Segments())
}

// sgr builds the single escape sequence that switches the terminal to
// the given style. The sequence starts from a reset so no attribute or
// color of the previous style survives.
func sgr(s Style) string {
	var code strings.Builder
	code.WriteString(esc + "[0")

	attrs := []struct {
		attr Attribute
		code string
	}{
		{AttrBold, "1"},
		{AttrDim, "2"},
		{AttrItalic, "3"},
		{AttrUnderline, "4"},
		{AttrBlink, "5"},
		{AttrReverse, "7"},
		{AttrStrikethrough, "9"},
	}
	for _, a := range attrs {
		if s.Attributes.Has(a.attr) {
			code.WriteByte(';')
			code.WriteString(a.code)
		}
	}

	if !s.Foreground.IsDefault() {
		fg := s.Foreground
		fmt.Fprintf(&code, ";38;2;%d;%d;%d", fg.R, fg.G, fg.B)
	}
	if !s.Background.IsDefault() {
		bg := s.Background
		fmt.Fprintf(&code, ";48;2;%d;%d;%d", bg.R, bg.G, bg.B)
	}

	code.WriteByte('m')
	return code.String()
}

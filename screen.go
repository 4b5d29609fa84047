package termpix

import (
	"github.com/gdamore/tcell/v2"
)

// Draw paints the rendered segments onto a tcell screen with the
// top-left cell at (x, y). Each "\n" segment moves to the next row.
// The caller owns the screen lifecycle and flushes with Show.
func (p *Pixels) Draw(screen tcell.Screen, x, y int) {
	cx, cy := x, y
	for _, seg := range p.Segments() {
		if seg.Text == "\n" {
			cx = x
			cy++
			continue
		}
		style := tcellStyle(seg.Style)
		for _, r := range seg.Text {
			screen.SetContent(cx, cy, r, nil, style)
			cx++
		}
	}
}

// tcellStyle converts a segment style to a tcell style. Default colors
// stay unset so the terminal's own colors show through.
func tcellStyle(s Style) tcell.Style {
	style := tcell.StyleDefault

	if !s.Foreground.IsDefault() {
		fg := s.Foreground
		style = style.Foreground(tcell.NewRGBColor(int32(fg.R), int32(fg.G), int32(fg.B)))
	}
	if !s.Background.IsDefault() {
		bg := s.Background
		style = style.Background(tcell.NewRGBColor(int32(bg.R), int32(bg.G), int32(bg.B)))
	}

	if s.Attributes != AttrNone {
		style = style.
			Bold(s.Attributes.Has(AttrBold)).
			Dim(s.Attributes.Has(AttrDim)).
			Italic(s.Attributes.Has(AttrItalic)).
			Underline(s.Attributes.Has(AttrUnderline)).
			Blink(s.Attributes.Has(AttrBlink)).
			Reverse(s.Attributes.Has(AttrReverse)).
			StrikeThrough(s.Attributes.Has(AttrStrikethrough))
	}
	return style
}

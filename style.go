package termpix

import (
	"fmt"
	"strings"
)

// Attribute represents text attributes (bold, italic, etc.).
type Attribute uint16

// Text attribute flags.
const (
	AttrNone          Attribute = 0
	AttrBold          Attribute = 1 << iota
	AttrDim                     // Faint/dim text
	AttrItalic                  // Italic text
	AttrUnderline               // Underlined text
	AttrBlink                   // Blinking text (rarely supported)
	AttrReverse                 // Reverse video (swap fg/bg)
	AttrStrikethrough           // Strikethrough text
)

// Has returns true if the attribute set contains the given attribute.
func (a Attribute) Has(attr Attribute) bool {
	return a&attr != 0
}

// With returns a new attribute set with the given attribute added.
func (a Attribute) With(attr Attribute) Attribute {
	return a | attr
}

// Without returns a new attribute set with the given attribute removed.
func (a Attribute) Without(attr Attribute) Attribute {
	return a &^ attr
}

// Style represents the visual style of a segment's text.
type Style struct {
	Foreground Color
	Background Color
	Attributes Attribute
}

// DefaultStyle returns the style that inherits the terminal's own
// colors. Transparent cells with no substitute color render with it.
func DefaultStyle() Style {
	return Style{
		Foreground: ColorDefault,
		Background: ColorDefault,
		Attributes: AttrNone,
	}
}

// NewStyle creates a style with the given foreground color.
func NewStyle(fg Color) Style {
	return Style{
		Foreground: fg,
		Background: ColorDefault,
		Attributes: AttrNone,
	}
}

// OnColor creates a style with the given background color, the form
// pixel cells use for opaque colors.
func OnColor(bg Color) Style {
	return Style{
		Foreground: ColorDefault,
		Background: bg,
		Attributes: AttrNone,
	}
}

// WithForeground returns a new style with the given foreground color.
func (s Style) WithForeground(fg Color) Style {
	s.Foreground = fg
	return s
}

// WithBackground returns a new style with the given background color.
func (s Style) WithBackground(bg Color) Style {
	s.Background = bg
	return s
}

// WithAttributes returns a new style with the given attributes.
func (s Style) WithAttributes(attrs Attribute) Style {
	s.Attributes = attrs
	return s
}

// Bold returns a new style with bold attribute added.
func (s Style) Bold() Style {
	s.Attributes |= AttrBold
	return s
}

// Italic returns a new style with italic attribute added.
func (s Style) Italic() Style {
	s.Attributes |= AttrItalic
	return s
}

// Underline returns a new style with underline attribute added.
func (s Style) Underline() Style {
	s.Attributes |= AttrUnderline
	return s
}

// Reverse returns a new style with reverse video attribute added.
func (s Style) Reverse() Style {
	s.Attributes |= AttrReverse
	return s
}

// Equals returns true if two styles are identical.
func (s Style) Equals(other Style) bool {
	return s.Foreground.Equals(other.Foreground) &&
		s.Background.Equals(other.Background) &&
		s.Attributes == other.Attributes
}

// IsDefault returns true if this is the default style.
func (s Style) IsDefault() bool {
	return s.Foreground.IsDefault() &&
		s.Background.IsDefault() &&
		s.Attributes == AttrNone
}

// attributeWords maps style-spec words to attribute flags, in the
// order String emits them.
var attributeWords = []struct {
	word string
	attr Attribute
}{
	{"bold", AttrBold},
	{"dim", AttrDim},
	{"italic", AttrItalic},
	{"underline", AttrUnderline},
	{"blink", AttrBlink},
	{"reverse", AttrReverse},
	{"strike", AttrStrikethrough},
}

// ParseStyle parses a style from its string form: zero or more
// attribute words, an optional foreground color, and an optional
// "on <color>" background, e.g. "bold red on rgb(0,0,64)".
// An empty string or "none" is the default style.
func ParseStyle(spec string) (Style, error) {
	style := DefaultStyle()

	spec = strings.TrimSpace(spec)
	if spec == "" || strings.EqualFold(spec, "none") {
		return style, nil
	}

	background := false
	for _, token := range strings.Fields(spec) {
		if strings.EqualFold(token, "on") {
			if background {
				return Style{}, fmt.Errorf("invalid style %q: repeated %q", spec, "on")
			}
			background = true
			continue
		}

		if attr, ok := attributeWord(token); ok {
			style.Attributes |= attr
			continue
		}

		c, err := ParseColor(token)
		if err != nil {
			return Style{}, fmt.Errorf("invalid style %q: unknown token %q", spec, token)
		}
		if background {
			if !style.Background.IsDefault() {
				return Style{}, fmt.Errorf("invalid style %q: multiple background colors", spec)
			}
			style.Background = c
		} else {
			if !style.Foreground.IsDefault() {
				return Style{}, fmt.Errorf("invalid style %q: multiple foreground colors", spec)
			}
			style.Foreground = c
		}
	}

	return style, nil
}

func attributeWord(token string) (Attribute, bool) {
	for _, aw := range attributeWords {
		if strings.EqualFold(token, aw.word) {
			return aw.attr, true
		}
	}
	return AttrNone, false
}

// String returns the style in the same syntax ParseStyle accepts.
// The default style renders as "none".
func (s Style) String() string {
	if s.IsDefault() {
		return "none"
	}

	var parts []string
	for _, aw := range attributeWords {
		if s.Attributes.Has(aw.attr) {
			parts = append(parts, aw.word)
		}
	}
	if !s.Foreground.IsDefault() {
		parts = append(parts, s.Foreground.String())
	}
	if !s.Background.IsDefault() {
		parts = append(parts, "on", s.Background.String())
	}
	return strings.Join(parts, " ")
}

package termpix

// Segment is an immutable pair of text and the style it is drawn with.
// A rendered image is a flat sequence of segments, one row per line,
// each row terminated by a single "\n" segment.
type Segment struct {
	Text  string
	Style Style
}

// NewSegment creates a segment with the given text and style.
func NewSegment(text string, style Style) Segment {
	return Segment{Text: text, Style: style}
}

// Unstyled creates a segment drawn with the default style.
func Unstyled(text string) Segment {
	return Segment{Text: text, Style: DefaultStyle()}
}

// Equals returns true if two segments have the same text and style.
func (s Segment) Equals(other Segment) bool {
	return s.Text == other.Text && s.Style.Equals(other.Style)
}

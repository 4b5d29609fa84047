package termpix

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Color represents a true color RGB value for a terminal cell.
type Color struct {
	R, G, B uint8
	// Default indicates this is the terminal's default color.
	// R, G, and B are ignored when set.
	Default bool
}

// ColorDefault represents the terminal's default color.
// Transparent pixels resolve to it when no substitute is configured.
var ColorDefault = Color{Default: true}

// Common colors.
var (
	ColorBlack   = Color{R: 0, G: 0, B: 0}
	ColorWhite   = Color{R: 255, G: 255, B: 255}
	ColorRed     = Color{R: 255, G: 0, B: 0}
	ColorGreen   = Color{R: 0, G: 255, B: 0}
	ColorBlue    = Color{R: 0, G: 0, B: 255}
	ColorYellow  = Color{R: 255, G: 255, B: 0}
	ColorCyan    = Color{R: 0, G: 255, B: 255}
	ColorMagenta = Color{R: 255, G: 0, B: 255}
	ColorGray    = Color{R: 128, G: 128, B: 128}
)

// RGB creates a true color from RGB components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// ParseColor parses a color from its string form.
// Accepted forms: "default", "rgb(r,g,b)", "#RGB", "#RRGGBB", bare hex,
// and any W3C color name known to the terminal layer ("red", "skyblue").
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Color{}, fmt.Errorf("empty color")
	}
	if strings.EqualFold(s, "default") {
		return ColorDefault, nil
	}

	if strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")") {
		return parseRGBFunc(s)
	}

	if tc, ok := tcell.ColorNames[strings.ToLower(s)]; ok {
		hex := tc.Hex()
		return RGB(uint8(hex>>16), uint8(hex>>8), uint8(hex)), nil
	}

	return parseHex(s)
}

// parseRGBFunc parses the "rgb(r,g,b)" form with each channel 0-255.
func parseRGBFunc(s string) (Color, error) {
	inner := s[len("rgb(") : len(s)-1]
	parts := strings.Split(inner, ",")
	if len(parts) != 3 {
		return Color{}, fmt.Errorf("invalid rgb color %q", s)
	}

	var channels [3]uint8
	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || v < 0 || v > 255 {
			return Color{}, fmt.Errorf("invalid rgb color %q", s)
		}
		channels[i] = uint8(v)
	}
	return RGB(channels[0], channels[1], channels[2]), nil
}

// parseHex parses "#RGB", "#RRGGBB", or the same without the leading #.
func parseHex(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")

	var r, g, b uint64
	var err error

	switch len(hex) {
	case 3:
		// Short form: RGB -> RRGGBB
		r, err = strconv.ParseUint(string(hex[0])+string(hex[0]), 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("invalid hex color: %s", s)
		}
		g, err = strconv.ParseUint(string(hex[1])+string(hex[1]), 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("invalid hex color: %s", s)
		}
		b, err = strconv.ParseUint(string(hex[2])+string(hex[2]), 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("invalid hex color: %s", s)
		}

	case 6:
		// Full form: RRGGBB
		r, err = strconv.ParseUint(hex[0:2], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("invalid hex color: %s", s)
		}
		g, err = strconv.ParseUint(hex[2:4], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("invalid hex color: %s", s)
		}
		b, err = strconv.ParseUint(hex[4:6], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("invalid hex color: %s", s)
		}

	default:
		return Color{}, fmt.Errorf("unknown color %q", s)
	}

	return RGB(uint8(r), uint8(g), uint8(b)), nil
}

// IsDefault returns true if this is the terminal's default color.
func (c Color) IsDefault() bool {
	return c.Default
}

// Equals returns true if two colors are equal.
func (c Color) Equals(other Color) bool {
	if c.Default != other.Default {
		return false
	}
	if c.Default {
		return true
	}
	return c.R == other.R && c.G == other.G && c.B == other.B
}

// String returns the color in the same syntax ParseColor accepts.
func (c Color) String() string {
	if c.IsDefault() {
		return "default"
	}
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

// Hex returns the hex representation of the color, or an empty string
// for the terminal default.
func (c Color) Hex() string {
	if c.IsDefault() {
		return ""
	}
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

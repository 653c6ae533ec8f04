package chromatui

import "fmt"

// RGBA is a color as reported by a syntax highlighter.
type RGBA struct {
	R, G, B, A uint8
}

// RGB is a terminal color.
//
// Terminal colors are optional: a nil *RGB means "colorless",
// and the terminal's default color should be used.
type RGB struct {
	R, G, B uint8
}

// Hex returns the color in #rrggbb form.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// TranslateColor converts a highlighter color into a terminal color.
//
// The red, green, and blue channels are copied as-is
// if the color is at all opaque.
// Alpha is not blended into the other channels.
// If the color is fully transparent, TranslateColor returns nil.
func TranslateColor(c RGBA) *RGB {
	if c.A == 0 {
		return nil
	}
	return &RGB{R: c.R, G: c.G, B: c.B}
}

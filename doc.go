// Package chromatui converts text styled by a syntax highlighter
// into styled text that terminal UIs can render.
//
// The source model describes colors as RGBA values
// and font emphasis as a [FontStyle] bitset.
// The target model describes colors as optional [RGB] values
// and emphasis as additive and subtractive [Modifier] sets.
//
// Highlighter colors carry an alpha channel but terminal colors don't,
// so color conversion is lossy.
// A fully transparent color (alpha == 0) is preserved to some degree:
// it translates to no color at all (nil),
// which lets the terminal's default color show through.
//
// The usual entry point is [BuildSpan],
// called once for every (style, text) segment of a highlighted line.
// See the highlight package for a Chroma-backed source of segments.
package chromatui

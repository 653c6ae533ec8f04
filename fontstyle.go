package chromatui

import (
	"fmt"
	"strings"
)

// FontStyle is a set of font emphasis flags reported by a syntax highlighter.
//
// Only combinations of FontBold, FontItalic, and FontUnderline are valid.
// Use [ParseFontStyle] to build a FontStyle from raw bits.
type FontStyle uint8

// Font styles supported by the highlighter.
const (
	FontBold FontStyle = 1 << iota
	FontItalic
	FontUnderline
)

const _fontStyleMask = FontBold | FontItalic | FontUnderline

var _fontStyleNames = []struct {
	flag FontStyle
	name string
}{
	{FontBold, "bold"},
	{FontItalic, "italic"},
	{FontUnderline, "underline"},
}

// ParseFontStyle builds a FontStyle from its bit representation.
// It fails with [*UnknownFontStyleError]
// if any bits outside the known flags are set.
func ParseFontStyle(bits uint8) (FontStyle, error) {
	if fs := FontStyle(bits); fs&^_fontStyleMask == 0 {
		return fs, nil
	}
	return 0, &UnknownFontStyleError{Bits: bits}
}

// String returns the flags in this font style separated by '|',
// or "none" for an empty set.
func (fs FontStyle) String() string {
	if fs&^_fontStyleMask != 0 {
		return fmt.Sprintf("FontStyle(%d)", uint8(fs))
	}
	if fs == 0 {
		return "none"
	}

	var names []string
	for _, n := range _fontStyleNames {
		if fs&n.flag != 0 {
			names = append(names, n.name)
		}
	}
	return strings.Join(names, "|")
}

// Modifier is a set of text modifiers understood by terminals.
type Modifier uint16

// Terminal text modifiers.
const (
	Bold Modifier = 1 << iota
	Dim
	Italic
	Underlined
	SlowBlink
	RapidBlink
	Reversed
	Hidden
	CrossedOut
)

const _modifierMask = Bold | Dim | Italic | Underlined | SlowBlink |
	RapidBlink | Reversed | Hidden | CrossedOut

var _modifierNames = []struct {
	flag Modifier
	name string
}{
	{Bold, "bold"},
	{Dim, "dim"},
	{Italic, "italic"},
	{Underlined, "underlined"},
	{SlowBlink, "slow_blink"},
	{RapidBlink, "rapid_blink"},
	{Reversed, "reversed"},
	{Hidden, "hidden"},
	{CrossedOut, "crossed_out"},
}

// Contains reports whether all modifiers in o are also set in m.
func (m Modifier) Contains(o Modifier) bool {
	return m&o == o
}

// String returns the modifiers in this set separated by '|',
// or "none" for an empty set.
func (m Modifier) String() string {
	if m&^_modifierMask != 0 {
		return fmt.Sprintf("Modifier(%d)", uint16(m))
	}
	if m == 0 {
		return "none"
	}

	var names []string
	for _, n := range _modifierNames {
		if m&n.flag != 0 {
			names = append(names, n.name)
		}
	}
	return strings.Join(names, "|")
}

// TranslateFontStyle converts a highlighter font style
// into a set of terminal modifiers.
//
// Every explicit combination of FontBold, FontItalic, and FontUnderline
// is supported.
// Any other bit pattern is rejected with [*UnknownFontStyleError]
// instead of being masked down to the nearest known value.
func TranslateFontStyle(fs FontStyle) (Modifier, error) {
	switch fs {
	case 0:
		return 0, nil
	case FontBold:
		return Bold, nil
	case FontItalic:
		return Italic, nil
	case FontUnderline:
		return Underlined, nil
	case FontBold | FontItalic:
		return Bold | Italic, nil
	case FontBold | FontUnderline:
		return Bold | Underlined, nil
	case FontItalic | FontUnderline:
		return Italic | Underlined, nil
	case FontBold | FontItalic | FontUnderline:
		return Bold | Italic | Underlined, nil
	default:
		return 0, &UnknownFontStyleError{Bits: uint8(fs)}
	}
}

package screen

import (
	"github.com/gdamore/tcell/v2"
	"go.abhg.dev/chromatui"
)

// Apply patches base with the given terminal style.
//
// Colors set in s replace those of base;
// colorless fields leave base untouched.
// Modifiers in s.AddModifier are switched on,
// and then those in s.SubModifier are switched off.
func Apply(base tcell.Style, s chromatui.Style) tcell.Style {
	if s.Fg != nil {
		base = base.Foreground(color(*s.Fg))
	}
	if s.Bg != nil {
		base = base.Background(color(*s.Bg))
	}
	base = setModifiers(base, s.AddModifier, true)
	base = setModifiers(base, s.SubModifier, false)
	return base
}

func color(c chromatui.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func setModifiers(st tcell.Style, m chromatui.Modifier, on bool) tcell.Style {
	if m.Contains(chromatui.Bold) {
		st = st.Bold(on)
	}
	if m.Contains(chromatui.Dim) {
		st = st.Dim(on)
	}
	if m.Contains(chromatui.Italic) {
		st = st.Italic(on)
	}
	if m.Contains(chromatui.Underlined) {
		st = st.Underline(on)
	}
	// tcell has a single blink attribute.
	if m.Contains(chromatui.SlowBlink) || m.Contains(chromatui.RapidBlink) {
		st = st.Blink(on)
	}
	if m.Contains(chromatui.Reversed) {
		st = st.Reverse(on)
	}
	if m.Contains(chromatui.CrossedOut) {
		st = st.StrikeThrough(on)
	}
	// Hidden has no tcell equivalent.
	return st
}

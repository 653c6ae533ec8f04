package chromatui

import "braces.dev/errtrace"

// TextStyle is the style a syntax highlighter assigns to a run of text.
type TextStyle struct {
	Foreground RGBA
	Background RGBA
	FontStyle  FontStyle
}

// Style is a terminal text style.
type Style struct {
	// Fg and Bg are the foreground and background colors.
	// nil means the terminal default.
	Fg, Bg *RGB

	// AddModifier holds modifiers to switch on.
	AddModifier Modifier

	// SubModifier holds modifiers to switch off.
	// Styles produced by this package never remove modifiers.
	SubModifier Modifier
}

// TranslateStyle converts a highlighter style into a terminal style.
//
// It fails only if the font style can't be translated;
// see [TranslateFontStyle].
func TranslateStyle(ts TextStyle) (Style, error) {
	mod, err := TranslateFontStyle(ts.FontStyle)
	if err != nil {
		return Style{}, errtrace.Wrap(err)
	}

	return Style{
		Fg:          TranslateColor(ts.Foreground),
		Bg:          TranslateColor(ts.Background),
		AddModifier: mod,
	}, nil
}

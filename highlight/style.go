package highlight

import (
	"slices"

	"braces.dev/errtrace"
	chroma "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
	"go.abhg.dev/chromatui"
)

// PlainStyle is a minimal syntax highlighting style for terminals.
// It leaves most text in the terminal's default colors,
// and fades comments ever so slightly.
var PlainStyle = chroma.MustNewStyle("plain", map[chroma.TokenType]string{
	chroma.Comment:         "italic #666666",
	chroma.GenericDeleted:  "#aa0000",
	chroma.GenericInserted: "#00aa00",
	chroma.GenericStrong:   "bold",
	chroma.GenericEmph:     "italic",
})

func init() {
	styles.Register(PlainStyle)
}

// StyleFor looks up a registered Chroma style by name.
func StyleFor(name string) (*chroma.Style, error) {
	if !slices.Contains(styles.Names(), name) {
		return nil, errtrace.Errorf("unknown style %q", name)
	}
	return styles.Get(name), nil
}

// StyleNames returns the names of all registered Chroma styles.
func StyleNames() []string {
	return styles.Names()
}

// TextStyle converts a Chroma style entry into a [chromatui.TextStyle].
//
// Chroma colors don't have an alpha channel.
// Colors that are set become fully opaque,
// and colors that aren't set become fully transparent
// so that they translate to the terminal's default color.
func TextStyle(e chroma.StyleEntry) chromatui.TextStyle {
	var fs chromatui.FontStyle
	if e.Bold == chroma.Yes {
		fs |= chromatui.FontBold
	}
	if e.Italic == chroma.Yes {
		fs |= chromatui.FontItalic
	}
	if e.Underline == chroma.Yes {
		fs |= chromatui.FontUnderline
	}

	return chromatui.TextStyle{
		Foreground: colour(e.Colour),
		Background: colour(e.Background),
		FontStyle:  fs,
	}
}

func colour(c chroma.Colour) chromatui.RGBA {
	if !c.IsSet() {
		return chromatui.RGBA{}
	}
	return chromatui.RGBA{R: c.Red(), G: c.Green(), B: c.Blue(), A: 0xff}
}

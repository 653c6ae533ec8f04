package screen

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"go.abhg.dev/chromatui"
)

// TabWidth is the number of columns between tab stops.
const TabWidth = 4

// Setter places a single cell on a screen.
// [tcell.Screen] satisfies this interface.
type Setter interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

var _ Setter = (tcell.Screen)(nil)

// DrawLine draws a line of spans onto the screen
// starting at column x of row y, patching base with each span's style.
//
// At most width columns are drawn.
// Wide characters that don't fit are left out entirely.
// Tabs advance to the next tab stop relative to x.
// Combining marks are attached to the cell before them;
// other zero-width characters are dropped.
//
// DrawLine returns the number of columns drawn.
func DrawLine(s Setter, x, y, width int, base tcell.Style, spans []chromatui.Span) int {
	var (
		col  int
		last *drawnCell // nil if there's nothing to combine with
	)
	for _, span := range spans {
		style := Apply(base, span.Style)
		for _, r := range span.Text {
			if r == '\t' {
				last = nil
				stop := min((col/TabWidth+1)*TabWidth, width)
				for ; col < stop; col++ {
					s.SetContent(x+col, y, ' ', nil, style)
				}
				if col >= width {
					return col
				}
				continue
			}

			w := runewidth.RuneWidth(r)
			if w == 0 {
				if last != nil && !unicode.IsControl(r) {
					last.combining = append(last.combining, r)
					s.SetContent(last.x, y, last.primary, last.combining, last.style)
				}
				continue
			}
			if col+w > width {
				return col
			}
			s.SetContent(x+col, y, r, nil, style)
			last = &drawnCell{x: x + col, primary: r, style: style}
			col += w
		}
	}
	return col
}

// drawnCell is the most recent cell placed by DrawLine.
type drawnCell struct {
	x         int
	primary   rune
	combining []rune
	style     tcell.Style
}

// Width reports the number of columns a line of spans occupies,
// with tabs expanded as DrawLine would starting at column zero.
func Width(spans []chromatui.Span) int {
	col := 0
	for _, span := range spans {
		for _, r := range span.Text {
			if r == '\t' {
				col = (col/TabWidth + 1) * TabWidth
				continue
			}
			col += runewidth.RuneWidth(r)
		}
	}
	return col
}

package ansi

import (
	"io"
	"strings"

	"braces.dev/errtrace"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
	"go.abhg.dev/chromatui"
)

// Renderer renders spans for a specific terminal color profile.
type Renderer struct {
	w       io.Writer
	lg      *lipgloss.Renderer
	profile termenv.Profile
}

// NewRenderer builds a Renderer that writes to w
// using the given color profile.
// Colors are downsampled to what the profile supports,
// and [termenv.Ascii] drops styling entirely.
//
// Many 16- and 256-color terminals ignore the faint attribute,
// so under [termenv.ANSI] and [termenv.ANSI256]
// dimmed text also has its foreground blended halfway
// toward its background (or black, if it has none).
func NewRenderer(w io.Writer, p termenv.Profile) *Renderer {
	lg := lipgloss.NewRenderer(w, termenv.WithProfile(p))
	lg.SetColorProfile(p)
	return &Renderer{w: w, lg: lg, profile: p}
}

// Style converts a terminal style into a lipgloss style.
func (r *Renderer) Style(s chromatui.Style) lipgloss.Style {
	st := r.lg.NewStyle().TabWidth(lipgloss.NoTabConversion)
	if s.Fg != nil {
		fg := colorfulRGB(*s.Fg)
		if r.blendsDim() && s.AddModifier.Contains(chromatui.Dim) &&
			!s.SubModifier.Contains(chromatui.Dim) {
			var bg colorful.Color // black
			if s.Bg != nil {
				bg = colorfulRGB(*s.Bg)
			}
			fg = fg.BlendRgb(bg, _dimBlend).Clamped()
		}
		st = st.Foreground(lipgloss.Color(fg.Hex()))
	}
	if s.Bg != nil {
		st = st.Background(color(*s.Bg))
	}
	st = setModifiers(st, s.AddModifier, true)
	st = setModifiers(st, s.SubModifier, false)
	return st
}

// RenderLine renders a line of spans.
// The result doesn't end with a newline.
func (r *Renderer) RenderLine(spans []chromatui.Span) string {
	var sb strings.Builder
	for _, span := range spans {
		sb.WriteString(r.Style(span.Style).Render(span.Text))
	}
	return sb.String()
}

// WriteLines renders each line of spans
// and writes it to the Renderer's writer, followed by a newline.
func (r *Renderer) WriteLines(lines [][]chromatui.Span) error {
	for _, line := range lines {
		if _, err := io.WriteString(r.w, r.RenderLine(line)+"\n"); err != nil {
			return errtrace.Wrap(err)
		}
	}
	return nil
}

// _dimBlend is how far a dimmed foreground moves toward its background.
const _dimBlend = 0.5

func (r *Renderer) blendsDim() bool {
	return r.profile == termenv.ANSI || r.profile == termenv.ANSI256
}

func colorfulRGB(c chromatui.RGB) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

func color(c chromatui.RGB) lipgloss.Color {
	return lipgloss.Color(c.Hex())
}

func setModifiers(st lipgloss.Style, m chromatui.Modifier, on bool) lipgloss.Style {
	if m.Contains(chromatui.Bold) {
		st = st.Bold(on)
	}
	if m.Contains(chromatui.Dim) {
		st = st.Faint(on)
	}
	if m.Contains(chromatui.Italic) {
		st = st.Italic(on)
	}
	if m.Contains(chromatui.Underlined) {
		st = st.Underline(on)
	}
	if m.Contains(chromatui.SlowBlink) || m.Contains(chromatui.RapidBlink) {
		st = st.Blink(on)
	}
	if m.Contains(chromatui.Reversed) {
		st = st.Reverse(on)
	}
	if m.Contains(chromatui.CrossedOut) {
		st = st.Strikethrough(on)
	}
	return st
}

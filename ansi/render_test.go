package ansi

import (
	"bytes"
	"io"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.abhg.dev/chromatui"
)

func TestRenderer_RenderLine_ascii(t *testing.T) {
	t.Parallel()

	r := NewRenderer(io.Discard, termenv.Ascii)
	got := r.RenderLine([]chromatui.Span{
		{
			Text: "func",
			Style: chromatui.Style{
				Fg:          &chromatui.RGB{R: 255},
				AddModifier: chromatui.Bold,
			},
		},
		{Text: " main()\t{}"},
	})
	assert.Equal(t, "func main()\t{}", got)
}

func TestRenderer_RenderLine_trueColor(t *testing.T) {
	t.Parallel()

	r := NewRenderer(io.Discard, termenv.TrueColor)
	span := chromatui.Span{
		Text: "syntax",
		Style: chromatui.Style{
			Fg:          &chromatui.RGB{R: 12, G: 123, B: 234},
			Bg:          &chromatui.RGB{R: 123, G: 234, B: 12},
			AddModifier: chromatui.Underlined,
		},
	}

	got := r.RenderLine([]chromatui.Span{span})
	assert.Contains(t, got, "38;2;12;123;234")
	assert.Contains(t, got, "48;2;123;234;12")
	assert.Contains(t, got, "syntax")

	want := r.lg.NewStyle().
		Foreground(color(chromatui.RGB{R: 12, G: 123, B: 234})).
		Background(color(chromatui.RGB{R: 123, G: 234, B: 12})).
		Underline(true).
		Render("syntax")
	assert.Equal(t, want, got)
}

func TestRenderer_RenderLine_colorless(t *testing.T) {
	t.Parallel()

	r := NewRenderer(io.Discard, termenv.TrueColor)
	got := r.RenderLine([]chromatui.Span{{Text: "plain"}})
	assert.Equal(t, "plain", got)
}

func TestRenderer_Style(t *testing.T) {
	t.Parallel()

	r := NewRenderer(io.Discard, termenv.TrueColor)

	tests := []struct {
		desc string
		give chromatui.Style

		wantBold      bool
		wantItalic    bool
		wantUnderline bool
		wantFaint     bool
		wantStrike    bool
	}{
		{desc: "empty"},
		{
			desc:     "bold",
			give:     chromatui.Style{AddModifier: chromatui.Bold},
			wantBold: true,
		},
		{
			desc:          "bold italic underlined",
			give:          chromatui.Style{AddModifier: chromatui.Bold | chromatui.Italic | chromatui.Underlined},
			wantBold:      true,
			wantItalic:    true,
			wantUnderline: true,
		},
		{
			desc: "dim crossed out",
			give: chromatui.Style{
				AddModifier: chromatui.Dim | chromatui.CrossedOut,
			},
			wantFaint:  true,
			wantStrike: true,
		},
		{
			desc: "sub modifier wins",
			give: chromatui.Style{
				AddModifier: chromatui.Bold | chromatui.Italic,
				SubModifier: chromatui.Bold,
			},
			wantItalic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			st := r.Style(tt.give)
			assert.Equal(t, tt.wantBold, st.GetBold(), "bold")
			assert.Equal(t, tt.wantItalic, st.GetItalic(), "italic")
			assert.Equal(t, tt.wantUnderline, st.GetUnderline(), "underline")
			assert.Equal(t, tt.wantFaint, st.GetFaint(), "faint")
			assert.Equal(t, tt.wantStrike, st.GetStrikethrough(), "strikethrough")
		})
	}
}

func TestRenderer_Style_dimBlend(t *testing.T) {
	t.Parallel()

	white := &chromatui.RGB{R: 255, G: 255, B: 255}
	tests := []struct {
		desc    string
		profile termenv.Profile
		give    chromatui.Style
		wantFg  lipgloss.TerminalColor
	}{
		{
			desc:    "ansi toward black",
			profile: termenv.ANSI,
			give:    chromatui.Style{Fg: white, AddModifier: chromatui.Dim},
			wantFg:  lipgloss.Color("#808080"),
		},
		{
			desc:    "ansi256 toward background",
			profile: termenv.ANSI256,
			give: chromatui.Style{
				Fg:          &chromatui.RGB{R: 255},
				Bg:          &chromatui.RGB{B: 255},
				AddModifier: chromatui.Dim,
			},
			wantFg: lipgloss.Color("#800080"),
		},
		{
			desc:    "truecolor keeps foreground",
			profile: termenv.TrueColor,
			give:    chromatui.Style{Fg: white, AddModifier: chromatui.Dim},
			wantFg:  lipgloss.Color("#ffffff"),
		},
		{
			desc:    "not dimmed",
			profile: termenv.ANSI,
			give:    chromatui.Style{Fg: white, AddModifier: chromatui.Bold},
			wantFg:  lipgloss.Color("#ffffff"),
		},
		{
			desc:    "dim removed",
			profile: termenv.ANSI,
			give: chromatui.Style{
				Fg:          white,
				AddModifier: chromatui.Dim,
				SubModifier: chromatui.Dim,
			},
			wantFg: lipgloss.Color("#ffffff"),
		},
		{
			desc:    "no foreground",
			profile: termenv.ANSI,
			give:    chromatui.Style{AddModifier: chromatui.Dim},
			wantFg:  lipgloss.NoColor{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			st := NewRenderer(io.Discard, tt.profile).Style(tt.give)
			assert.Equal(t, tt.wantFg, st.GetForeground())
		})
	}
}

func TestRenderer_WriteLines(t *testing.T) {
	t.Parallel()

	var buff bytes.Buffer
	r := NewRenderer(&buff, termenv.Ascii)
	require.NoError(t, r.WriteLines([][]chromatui.Span{
		{{Text: "package"}, {Text: " main"}},
		nil,
		{{Text: "func main() {}"}},
	}))
	assert.Equal(t, "package main\n\nfunc main() {}\n", buff.String())
}

type errWriter struct{ err error }

func (w errWriter) Write([]byte) (int, error) { return 0, w.err }

func TestRenderer_WriteLines_error(t *testing.T) {
	t.Parallel()

	r := NewRenderer(errWriter{io.ErrShortWrite}, termenv.Ascii)
	err := r.WriteLines([][]chromatui.Span{{{Text: "x"}}})
	assert.ErrorIs(t, err, io.ErrShortWrite)
}

func TestColor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "#0c7bea", string(color(chromatui.RGB{R: 12, G: 123, B: 234})))
	assert.Equal(t, "#000000", string(color(chromatui.RGB{})))
	assert.Equal(t, "#ffffff", string(color(chromatui.RGB{R: 255, G: 255, B: 255})))
}

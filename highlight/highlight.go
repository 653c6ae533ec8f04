package highlight

import (
	"strings"

	"braces.dev/errtrace"
	chroma "github.com/alecthomas/chroma/v2"
	"go.abhg.dev/chromatui"
)

// Highlighter turns source code into styled segments.
type Highlighter struct {
	// Style used for syntax highlighting of code.
	// Defaults to PlainStyle.
	Style *chroma.Style

	// Lexer used to tokenize code.
	// Defaults to PlainLexer.
	Lexer Lexer

	// TransparentBackground drops the style's background colors
	// so that the terminal's own background shows through.
	TransparentBackground bool
}

// HighlightLines highlights the given source code
// and returns the segments for each line.
func (h *Highlighter) HighlightLines(src []byte) ([][]chromatui.Segment, error) {
	lexer := h.Lexer
	if lexer == nil {
		lexer = PlainLexer
	}

	tokens, err := lexer.Lex(src)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	lines := chroma.SplitTokensIntoLines(tokens)
	out := make([][]chromatui.Segment, len(lines))
	for i, line := range lines {
		out[i] = h.segments(line)
	}
	return out, nil
}

// Spans highlights the given source code
// and converts each line into terminal spans.
// It fails if any segment can't be converted.
func (h *Highlighter) Spans(src []byte) ([][]chromatui.Span, error) {
	lines, err := h.HighlightLines(src)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	out := make([][]chromatui.Span, len(lines))
	for i, segs := range lines {
		spans, err := chromatui.BuildSpans(segs)
		if err != nil {
			return nil, errtrace.Errorf("line %d: %w", i+1, err)
		}
		out[i] = spans
	}
	return out, nil
}

func (h *Highlighter) segments(tokens []chroma.Token) []chromatui.Segment {
	style := h.Style
	if style == nil {
		style = PlainStyle
	}

	segs := make([]chromatui.Segment, 0, len(tokens))
	for _, tok := range tokens {
		// Only the last token of a line holds the line ending.
		text := strings.TrimRight(tok.Value, "\r\n")
		if len(text) == 0 {
			continue
		}

		ts := TextStyle(style.Get(tok.Type))
		if h.TransparentBackground {
			ts.Background = chromatui.RGBA{}
		}
		segs = append(segs, chromatui.Segment{Style: ts, Text: text})
	}
	return segs
}

package main

import (
	"io"
	"log"
	"os"

	"braces.dev/errtrace"
	chroma "github.com/alecthomas/chroma/v2"
	"go.abhg.dev/chromatui"
	"go.abhg.dev/chromatui/highlight"
)

// Policy decides what happens to segments
// that can't be converted into spans.
type Policy int

const (
	// FilterPolicy drops segments that can't be converted.
	FilterPolicy Policy = iota

	// StrictPolicy fails on the first segment that can't be converted.
	StrictPolicy
)

// Printer highlights files and converts them into lines of spans.
type Printer struct {
	Log   *log.Logger
	Stdin io.Reader // used for the file "-"

	Style  *chroma.Style
	Lang   string // language name; guessed if empty
	NoBG   bool   // drop background colors
	Policy Policy
}

// Lines highlights the given files in order
// and returns their combined lines.
// If no files are given, Lines reads from Stdin.
func (p *Printer) Lines(files []string) ([][]chromatui.Span, error) {
	if len(files) == 0 {
		files = []string{"-"}
	}

	var lines [][]chromatui.Span
	for _, name := range files {
		fileLines, err := p.file(name)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		lines = append(lines, fileLines...)
	}
	return lines, nil
}

func (p *Printer) file(name string) ([][]chromatui.Span, error) {
	src, err := p.read(name)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	var filename string
	if name != "-" {
		filename = name
	}
	lexer, err := highlight.LexerFor(p.Lang, filename, src)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	p.Log.Printf("%v: highlighting with lexer %v", name, lexer)

	h := highlight.Highlighter{
		Style:                 p.Style,
		Lexer:                 lexer,
		TransparentBackground: p.NoBG,
	}
	segLines, err := h.HighlightLines(src)
	if err != nil {
		return nil, errtrace.Errorf("%v: %w", name, err)
	}

	lines := make([][]chromatui.Span, len(segLines))
	for i, segs := range segLines {
		switch p.Policy {
		case StrictPolicy:
			spans, err := chromatui.BuildSpans(segs)
			if err != nil {
				return nil, errtrace.Errorf("%v:%d: %w", name, i+1, err)
			}
			lines[i] = spans

		default:
			spans := chromatui.FilterSpans(segs)
			if dropped := len(segs) - len(spans); dropped > 0 {
				p.Log.Printf("%v:%d: dropped %d segment(s)", name, i+1, dropped)
			}
			lines[i] = spans
		}
	}
	return lines, nil
}

func (p *Printer) read(name string) ([]byte, error) {
	if name == "-" {
		return errtrace.Wrap2(io.ReadAll(p.Stdin))
	}
	return errtrace.Wrap2(os.ReadFile(name))
}

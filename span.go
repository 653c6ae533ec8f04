package chromatui

import (
	"strings"

	"braces.dev/errtrace"
)

// Segment is a run of text that a highlighter styled uniformly.
// A highlighted line is a sequence of segments
// that covers the line with no gaps or overlaps.
type Segment struct {
	Style TextStyle
	Text  string
}

// Span is a run of text with a terminal style.
type Span struct {
	Text  string
	Style Style
}

// BuildSpan converts a highlighted piece of text into a [Span].
//
// It fails with [*UnknownFontStyleError]
// if the font style can't be translated,
// in which case no span is produced.
func BuildSpan(ts TextStyle, text string) (Span, error) {
	style, err := TranslateStyle(ts)
	if err != nil {
		return Span{}, errtrace.Wrap(err)
	}

	return Span{
		Text:  strings.Clone(text),
		Style: style,
	}, nil
}

// IntoSpan converts a [Segment] into a [Span].
// See [BuildSpan].
func IntoSpan(seg Segment) (Span, error) {
	return errtrace.Wrap2(BuildSpan(seg.Style, seg.Text))
}

// BuildSpans converts a highlighted line into spans.
// It stops at the first segment that can't be converted,
// reporting its position in the line.
func BuildSpans(segs []Segment) ([]Span, error) {
	spans := make([]Span, 0, len(segs))
	for i, seg := range segs {
		span, err := IntoSpan(seg)
		if err != nil {
			return nil, errtrace.Errorf("segment %d: %w", i, err)
		}
		spans = append(spans, span)
	}
	return spans, nil
}

// FilterSpans converts a highlighted line into spans,
// dropping segments that can't be converted.
func FilterSpans(segs []Segment) []Span {
	spans := make([]Span, 0, len(segs))
	for _, seg := range segs {
		if span, err := IntoSpan(seg); err == nil {
			spans = append(spans, span)
		}
	}
	return spans
}

// Package highlight runs the Chroma syntax highlighter over source code
// and reports the result as [chromatui.Segment]s,
// ready to be converted into terminal spans.
//
// Source code is highlighted one line at a time.
// Each line is a sequence of segments
// that covers the line's text with no gaps or overlaps.
// Line endings are not included.
package highlight

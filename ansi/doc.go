// Package ansi renders [chromatui.Span]s as strings
// with ANSI escape sequences, using lipgloss.
package ansi

// Package screen draws [chromatui.Span]s onto tcell screens.
package screen

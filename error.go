package chromatui

import "fmt"

// UnknownFontStyleError is returned when a [FontStyle]
// holds bits that don't map to a terminal [Modifier].
type UnknownFontStyleError struct {
	// Bits is the raw, unsupported font style value.
	Bits uint8
}

func (e *UnknownFontStyleError) Error() string {
	return fmt.Sprintf("unable to convert font style into modifier: unsupported bits (%d) value", e.Bits)
}

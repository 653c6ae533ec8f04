package ansi

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// ColorMode controls whether output is colored.
// It may be used as a flag.Value.
type ColorMode int

// Supported color modes.
const (
	// ColorAuto colors output only when writing to a terminal.
	ColorAuto ColorMode = iota

	// ColorAlways colors output with 24-bit colors.
	ColorAlways

	// ColorNever never colors output.
	ColorNever
)

var _ flag.Getter = (*ColorMode)(nil)

// String returns the name of this mode.
func (m ColorMode) String() string {
	switch m {
	case ColorAuto:
		return "auto"
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return fmt.Sprintf("ColorMode(%d)", int(m))
	}
}

// Get returns the ColorMode.
// This is to comply with the [flag.Getter] interface.
func (m *ColorMode) Get() any { return *m }

// Set parses a color mode from its name.
func (m *ColorMode) Set(s string) error {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto", "":
		*m = ColorAuto
	case "always", "true":
		*m = ColorAlways
	case "never", "false":
		*m = ColorNever
	default:
		return fmt.Errorf("unknown color mode %q: expected auto, always, or never", s)
	}
	return nil
}

// Profile picks the color profile for output written to f.
func (m ColorMode) Profile(f *os.File) termenv.Profile {
	switch m {
	case ColorAlways:
		return termenv.TrueColor
	case ColorNever:
		return termenv.Ascii
	default:
		return DetectProfile(f)
	}
}

// DetectProfile determines the color profile supported by f.
//
// Output is not colored if the NO_COLOR environment variable is set,
// or if f is not a terminal.
func DetectProfile(f *os.File) termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}

	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return termenv.Ascii
	}

	return termenv.NewOutput(f).EnvColorProfile()
}

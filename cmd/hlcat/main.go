// hlcat prints source code with syntax highlighting to a terminal.
//
// Run 'hlcat -help' for usage.
package main

import (
	"errors"
	"io"
	"log"
	"os"

	"braces.dev/errtrace"
	"github.com/gdamore/tcell/v2"
	"github.com/muesli/termenv"
	"go.abhg.dev/chromatui"
	"go.abhg.dev/chromatui/ansi"
	"go.abhg.dev/chromatui/highlight"
	"go.abhg.dev/chromatui/internal/errdefer"
	"go.abhg.dev/chromatui/screen"
)

func main() {
	cmd := mainCmd{
		Stdin:     os.Stdin,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		NewScreen: tcell.NewScreen,
	}
	os.Exit(cmd.Run(os.Args[1:]))
}

// mainCmd is the actual entry point to the program.
type mainCmd struct {
	Stdin  io.Reader // == os.Stdin
	Stdout io.Writer // == os.Stdout
	Stderr io.Writer // == os.Stderr

	NewScreen func() (tcell.Screen, error) // == tcell.NewScreen

	log *log.Logger
}

func (cmd *mainCmd) Run(args []string) (exitCode int) {
	cmd.log = log.New(cmd.Stderr, "", 0)

	opts, err := (&cliParser{
		Stdout: cmd.Stdout,
		Stderr: cmd.Stderr,
	}).Parse(args)
	if err != nil {
		// '$cmd -h' should exit with zero.
		if errors.Is(err, errHelp) {
			return 0
		}
		cmd.log.Printf("hlcat: %v", err)
		return 1
	}

	if err := cmd.run(opts); err != nil {
		cmd.log.Printf("hlcat: %v", err)
		return 1
	}
	return 0
}

func (cmd *mainCmd) run(opts *params) (err error) {
	debug, closeDebug, err := opts.Debug.Logger(cmd.Stderr, "[debug] ")
	if err != nil {
		return errtrace.Wrap(err)
	}
	defer errdefer.Run(&err, closeDebug)

	style, err := highlight.StyleFor(opts.Style)
	if err != nil {
		return errtrace.Wrap(err)
	}

	printer := Printer{
		Log:   debug,
		Stdin: cmd.Stdin,
		Style: style,
		Lang:  opts.Lang,
		NoBG:  opts.NoBG,
	}
	if opts.Strict {
		printer.Policy = StrictPolicy
	}

	lines, err := printer.Lines(opts.Files)
	if err != nil {
		return errtrace.Wrap(err)
	}

	if opts.Pager {
		return errtrace.Wrap(cmd.page(lines, debug))
	}

	r := ansi.NewRenderer(cmd.Stdout, cmd.colorProfile(opts.Color))
	return errtrace.Wrap(r.WriteLines(lines))
}

func (cmd *mainCmd) colorProfile(mode ansi.ColorMode) termenv.Profile {
	if f, ok := cmd.Stdout.(*os.File); ok {
		return mode.Profile(f)
	}

	// Not a file so it can't be a terminal.
	if mode == ansi.ColorAlways {
		return termenv.TrueColor
	}
	return termenv.Ascii
}

func (cmd *mainCmd) page(lines [][]chromatui.Span, debug *log.Logger) error {
	scr, err := cmd.NewScreen()
	if err != nil {
		return errtrace.Wrap(err)
	}
	if err := scr.Init(); err != nil {
		return errtrace.Wrap(err)
	}
	defer scr.Fini()

	pager := screen.Pager{
		Screen: scr,
		Lines:  lines,
		Base:   tcell.StyleDefault,
		Log:    debug,
	}
	return errtrace.Wrap(pager.Run())
}

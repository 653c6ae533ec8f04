package main

import (
	"flag"
	"fmt"
	"io"

	"braces.dev/errtrace"
	"github.com/peterbourgon/ff/v3"
	"go.abhg.dev/chromatui/ansi"
	"go.abhg.dev/chromatui/internal/flagvalue"
)

var errHelp = flag.ErrHelp

// _envVarPrefix is the prefix for environment variables
// that may be used instead of flags: HLCAT_STYLE, HLCAT_NO_BG, etc.
const _envVarPrefix = "HLCAT"

// params holds all arguments for hlcat.
type params struct {
	version bool
	help    Help
	config  string

	Lang   string
	Style  string
	Color  ansi.ColorMode
	NoBG   bool
	Strict bool
	Pager  bool

	Debug flagvalue.LogSwitch

	Files []string
}

// cliParser parses the command line arguments for hlcat.
type cliParser struct {
	Stdout io.Writer
	Stderr io.Writer
}

func (cmd *cliParser) newFlagSet() (*params, *flag.FlagSet) {
	flag := flag.NewFlagSet("hlcat", flag.ContinueOnError)
	flag.SetOutput(cmd.Stderr)
	flag.Usage = func() {
		_ = DefaultHelp.Write(cmd.Stderr)
	}

	var p params

	// Highlighting:
	flag.StringVar(&p.Lang, "lang", "", "")
	flag.StringVar(&p.Style, "style", "monokai", "")

	// Output:
	flag.Var(&p.Color, "color", "")
	flag.BoolVar(&p.NoBG, "no-bg", false, "")
	flag.BoolVar(&p.Strict, "strict", false, "")
	flag.BoolVar(&p.Pager, "pager", false, "")

	// Program-level:
	flag.StringVar(&p.config, "config", "", "")
	flag.Var(&p.Debug, "debug", "")
	flag.BoolVar(&p.version, "version", false, "")
	flag.Var(&p.help, "help", "")
	flag.Var(&p.help, "h", "")

	return &p, flag
}

func (cmd *cliParser) Parse(args []string) (*params, error) {
	p, flag := cmd.newFlagSet()
	err := ff.Parse(flag, args,
		ff.WithEnvVarPrefix(_envVarPrefix),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.PlainParser),
	)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	args = flag.Args()

	if p.version {
		fmt.Fprintln(cmd.Stdout, "hlcat", _version)
		return nil, errHelp
	}

	if p.help == DefaultHelp && len(args) > 0 {
		// The user might have done "-h foo"
		// instead of "-h=foo".
		// If the argument is a known help topic,
		// take it.
		if h := Help(args[0]); h.Known() {
			p.help = h
		}
	}

	switch p.help {
	case NoHelp:
		// proceed as usual
	default:
		if err := p.help.Write(cmd.Stderr); err != nil {
			fmt.Fprintln(cmd.Stderr, err)
		}
		return nil, errHelp
	}

	if len(args) > 0 {
		p.Files = args
	}
	return p, nil
}

package flagvalue

import (
	"flag"
	"io"
	"log"
	"os"

	"braces.dev/errtrace"
)

// LogSwitch is a flag that accepts both "-x" and "-x=path".
// It controls where a log is written:
// nowhere if the flag is absent,
// a fallback writer if it's passed without a value,
// or the named file.
type LogSwitch string

var _ flag.Getter = (*LogSwitch)(nil)

// Get returns the path stored in the switch
// or '-' if no value was specified.
func (ls *LogSwitch) Get() any { return string(*ls) }

// String returns the path stored in the switch
// or '-' if no value was specified.
func (ls *LogSwitch) String() string {
	return string(*ls)
}

// IsBoolFlag marks this as a flag
// that doesn't require a value.
func (*LogSwitch) IsBoolFlag() bool {
	return true
}

// Set receives the value for this flag.
func (ls *LogSwitch) Set(v string) error {
	if v == "true" {
		v = "-"
	}
	if v == "false" {
		v = ""
	}
	*ls = LogSwitch(v)
	return nil
}

// Enabled reports whether this flag was set with any value.
func (ls *LogSwitch) Enabled() bool {
	return len(*ls) > 0
}

// Logger builds a logger for this switch
// and returns a function to close the log's destination.
//
//   - the flag wasn't passed in: the logger discards everything
//   - the flag was passed without a value: the logger writes to fallback
//   - the flag was passed with a value: the logger writes to that file
func (ls *LogSwitch) Logger(fallback io.Writer, prefix string) (_ *log.Logger, close func() error, err error) {
	var w io.Writer
	switch *ls {
	case "":
		w, close = io.Discard, nopClose
	case "-":
		w, close = fallback, nopClose
	default:
		f, err := os.Create(string(*ls))
		if err != nil {
			return nil, nil, errtrace.Wrap(err)
		}
		w, close = f, f.Close
	}
	return log.New(w, prefix, 0), close, nil
}

func nopClose() error { return nil }

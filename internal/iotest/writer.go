package iotest

import (
	"io"
	"strings"
	"testing"
)

// Writer builds an io.Writer that logs to the given testing.TB.
//
// Each line of a write is logged separately
// so that multi-line output from the CLI stays readable in test logs.
// A trailing newline does not produce an empty entry.
func Writer(t testing.TB) io.Writer {
	return &logWriter{t: t}
}

type logWriter struct{ t testing.TB }

func (w *logWriter) Write(b []byte) (int, error) {
	text := strings.TrimSuffix(string(b), "\n")
	for _, line := range strings.Split(text, "\n") {
		w.t.Logf("%s", line)
	}
	return len(b), nil
}

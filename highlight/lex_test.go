package highlight

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexerFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc     string
		name     string
		filename string
		src      string
		want     string
	}{
		{desc: "by name", name: "go", want: "Go"},
		{desc: "by alias", name: "golang", want: "Go"},
		{desc: "by filename", filename: "main.rs", want: "Rust"},
		{desc: "name wins over filename", name: "rust", filename: "main.go", want: "Rust"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			l, err := LexerFor(tt.name, tt.filename, []byte(tt.src))
			require.NoError(t, err)
			assert.Equal(t, tt.want, fmt.Sprint(l))
		})
	}
}

func TestLexerFor_plain(t *testing.T) {
	t.Parallel()

	l, err := LexerFor("", "", nil)
	require.NoError(t, err)
	assert.Same(t, PlainLexer, l)
}

func TestLexerFor_unknownName(t *testing.T) {
	t.Parallel()

	_, err := LexerFor("not-a-real-language", "", nil)
	assert.ErrorContains(t, err, `unknown language "not-a-real-language"`)
}

func TestLanguages(t *testing.T) {
	t.Parallel()

	assert.Contains(t, Languages(), "Go")
}

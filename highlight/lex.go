package highlight

import (
	"braces.dev/errtrace"
	chroma "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

var (
	// GoLexer is a [Lexer] that recognizes Go.
	GoLexer Lexer = &chromaLexer{l: chroma.Coalesce(lexers.Go)}

	// PlainLexer is a [Lexer] that treats everything as plain text.
	PlainLexer Lexer = &chromaLexer{l: chroma.Coalesce(lexers.Fallback)}
)

// Lexer analyzes source code and generates a stream of tokens.
type Lexer interface {
	Lex(src []byte) ([]chroma.Token, error)
}

// chromaLexer builds a [Lexer] from a Chroma lexer.
type chromaLexer struct{ l chroma.Lexer }

// Lex lexically analyzes the given source code using Chroma.
func (cl *chromaLexer) Lex(src []byte) ([]chroma.Token, error) {
	return errtrace.Wrap2(chroma.Tokenise(cl.l, nil, string(src)))
}

func (cl *chromaLexer) String() string {
	return cl.l.Config().Name
}

// LexerFor picks a lexer for a piece of source code.
//
// If name is non-empty, it must be the name or alias
// of a language known to Chroma.
// Otherwise, the lexer is chosen based on the filename,
// and failing that, by analyzing the source code.
// If nothing matches, LexerFor returns [PlainLexer].
func LexerFor(name, filename string, src []byte) (Lexer, error) {
	if name != "" {
		l := lexers.Get(name)
		if l == nil {
			return nil, errtrace.Errorf("unknown language %q", name)
		}
		return &chromaLexer{l: chroma.Coalesce(l)}, nil
	}

	var l chroma.Lexer
	if filename != "" {
		l = lexers.Match(filename)
	}
	if l == nil && len(src) > 0 {
		l = lexers.Analyse(string(src))
	}
	if l == nil {
		return PlainLexer, nil
	}
	return &chromaLexer{l: chroma.Coalesce(l)}, nil
}

// Languages returns the names of all languages known to Chroma.
func Languages() []string {
	return lexers.Names(false)
}

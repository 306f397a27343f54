// Package lexer turns source text into the dense token stream of the
// eight instructions. Lexing is a pure filter: every character that is
// not one of the eight instruction characters is discarded, so there
// are no error cases and empty input yields an empty stream.
package lexer

import "github.com/funvibe/funbf/internal/token"

type Lexer struct {
	input  string
	pos    int // current byte offset into input
	line   int // current line number
	column int // current column number
}

func New(input string) *Lexer {
	return &Lexer{input: input, line: 1, column: 0}
}

// Next returns the next instruction token. The second return value is
// false once the input is exhausted.
func (l *Lexer) Next() (token.Token, bool) {
	for l.pos < len(l.input) {
		c := l.input[l.pos]
		l.pos++
		if c == '\n' {
			l.line++
			l.column = 0
			continue
		}
		l.column++

		if t, ok := token.FromChar(c); ok {
			return token.Token{Type: t, Line: l.line, Column: l.column}, true
		}
		// Anything else is a comment character.
	}
	return token.Token{}, false
}

// Tokenize consumes the whole input and returns the token stream.
func Tokenize(input string) []token.Token {
	l := New(input)
	var tokens []token.Token
	for {
		tok, ok := l.Next()
		if !ok {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

package fgpath

import (
	"fmt"

	"github.com/smasher164/xid"
)

// tokenKind enumerates the lexical tokens of a path string.
type tokenKind uint8

const (
	tokEOF tokenKind = iota
	tokSlash
	tokDot
	tokDotDot
	tokStar
	tokHash
	tokIdent
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

// lexer scans a path string into tokens. Identifier runes follow the same
// xid.Start/xid.Continue convention the teacher's lexer uses for SQL/JSON
// path identifiers, plus '_' and '-' which fact identifiers allow.
type lexer struct {
	input string
	pos   int
}

func newLexer(input string) *lexer { return &lexer{input: input} }

func isIdentStart(ch rune) bool {
	return ch == '_' || xid.Start(ch)
}

func isIdentContinue(ch rune) bool {
	return ch == '_' || ch == '-' || xid.Continue(ch)
}

func (l *lexer) next() (token, error) {
	for l.pos < len(l.input) && l.input[l.pos] == ' ' {
		l.pos++
	}
	if l.pos >= len(l.input) {
		return token{kind: tokEOF, pos: l.pos}, nil
	}

	start := l.pos
	ch := rune(l.input[l.pos])

	switch ch {
	case '/':
		l.pos++
		return token{kind: tokSlash, text: "/", pos: start}, nil
	case '*':
		l.pos++
		return token{kind: tokStar, text: "*", pos: start}, nil
	case '#':
		l.pos++
		return token{kind: tokHash, text: "#", pos: start}, nil
	case '.':
		l.pos++
		if l.pos < len(l.input) && l.input[l.pos] == '.' {
			l.pos++
			return token{kind: tokDotDot, text: "..", pos: start}, nil
		}
		return token{kind: tokDot, text: ".", pos: start}, nil
	}

	if isIdentStart(ch) {
		l.pos++
		for l.pos < len(l.input) && isIdentContinue(rune(l.input[l.pos])) {
			l.pos++
		}
		return token{kind: tokIdent, text: l.input[start:l.pos], pos: start}, nil
	}

	return token{}, fmt.Errorf("%w: unexpected character %q at position %d", ErrInvalidPath, ch, start)
}

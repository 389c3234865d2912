// Package lexer implements the tokenizer for the minilisp dialect.
//
// The Lexer streams bytes into a sequence of token.Token values, skipping
// whitespace between tokens. It exposes the peek/advance pair the reader
// needs for one-token lookahead (see internal/reader).
package lexer

import (
	"strings"

	"github.com/minilisp/minilisp/internal/lerrors"
	"github.com/minilisp/minilisp/pkg/token"
)

// Lexer tokenizes minilisp source text.
//
// The dialect's surface syntax (§4.1 of the language spec) is drawn from a
// small fixed set of ASCII characters, so the Lexer scans byte-by-byte
// rather than rune-by-rune; there is no identifier syntax that requires
// multi-byte UTF-8 handling.
type Lexer struct {
	input        string
	position     int
	readPosition int
	ch           byte
	line         int
	column       int
	peeked       *token.Token
}

// New creates a Lexer over the given source text.
func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1, column: 0}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	if l.ch == '\n' {
		l.line++
		l.column = 0
	} else {
		l.column++
	}
	l.position = l.readPosition
	l.readPosition++
}

func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

// isInitial matches §4.1's "initial" character class for symbols.
func isInitial(ch byte) bool {
	return isLetter(ch) || strings.IndexByte("<>=*/#", ch) >= 0
}

// isSubsequent matches §4.1's "subsequent" character class for symbols.
func isSubsequent(ch byte) bool {
	return isLetter(ch) || isDigit(ch) || strings.IndexByte("<>=*/#?!-", ch) >= 0
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// Peek returns the next token without consuming it. Calling Peek multiple
// times in a row returns the same token.
func (l *Lexer) Peek() (token.Token, error) {
	if l.peeked != nil {
		return *l.peeked, nil
	}
	tok, err := l.scan()
	if err != nil {
		return token.Token{}, err
	}
	l.peeked = &tok
	return tok, nil
}

// Advance consumes and returns the next token.
func (l *Lexer) Advance() (token.Token, error) {
	if l.peeked != nil {
		tok := *l.peeked
		l.peeked = nil
		return tok, nil
	}
	return l.scan()
}

func (l *Lexer) scan() (token.Token, error) {
	l.skipWhitespace()
	pos := token.Position{Line: l.line, Column: l.column}

	switch {
	case l.ch == 0:
		return token.Token{Kind: token.EOF, Pos: pos}, nil
	case l.ch == '(':
		l.readChar()
		return token.Token{Kind: token.OPEN, Literal: "(", Pos: pos}, nil
	case l.ch == ')':
		l.readChar()
		return token.Token{Kind: token.CLOSE, Literal: ")", Pos: pos}, nil
	case l.ch == '\'':
		l.readChar()
		return token.Token{Kind: token.QUOTE, Literal: "'", Pos: pos}, nil
	case l.ch == '.':
		l.readChar()
		return token.Token{Kind: token.DOT, Literal: ".", Pos: pos}, nil
	case isDigit(l.ch):
		return l.scanInteger(pos, ""), nil
	case l.ch == '+' || l.ch == '-':
		sign := string(l.ch)
		if isDigit(l.peekChar()) {
			l.readChar()
			return l.scanInteger(pos, sign), nil
		}
		return l.scanSymbol(pos)
	case isInitial(l.ch):
		return l.scanSymbol(pos)
	default:
		return token.Token{}, lerrors.Syntax()
	}
}

func (l *Lexer) scanInteger(pos token.Position, sign string) token.Token {
	start := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	return token.Token{Kind: token.INTEGER, Literal: sign + l.input[start:l.position], Pos: pos}
}

// scanSymbol scans a maximal run of initial+subsequent characters starting
// at the current byte, then reclassifies it as BOOLEAN when it is exactly
// "#t" or "#f" (§4.1).
func (l *Lexer) scanSymbol(pos token.Position) (token.Token, error) {
	start := l.position
	l.readChar()
	for isSubsequent(l.ch) {
		l.readChar()
	}
	lit := l.input[start:l.position]
	if lit == "#t" || lit == "#f" {
		return token.Token{Kind: token.BOOLEAN, Literal: lit, Pos: pos}, nil
	}
	return token.Token{Kind: token.SYMBOL, Literal: lit, Pos: pos}, nil
}

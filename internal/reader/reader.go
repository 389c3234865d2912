// Package reader implements the top-down recursive-descent parser that
// turns a token stream into a tree of heap-allocated values.
package reader

import (
	"strconv"

	"github.com/minilisp/minilisp/internal/lerrors"
	"github.com/minilisp/minilisp/internal/value"
	"github.com/minilisp/minilisp/pkg/token"
)

// tokenSource is the subset of *lexer.Lexer the reader needs; satisfied by
// pkg/lexer.Lexer, kept as an interface here so reader can be unit-tested
// against a fake without constructing real source text.
type tokenSource interface {
	Peek() (token.Token, error)
	Advance() (token.Token, error)
}

// Reader parses one datum at a time from a token source, allocating every
// node it produces on the given Heap.
type Reader struct {
	lex  tokenSource
	heap *value.Heap
}

// New returns a Reader that pulls tokens from lex and allocates onto heap.
func New(lex tokenSource, heap *value.Heap) *Reader {
	return &Reader{lex: lex, heap: heap}
}

// AtEOF reports whether the next token is the end-of-stream marker,
// without consuming it.
func (r *Reader) AtEOF() (bool, error) {
	tok, err := r.lex.Peek()
	if err != nil {
		return false, err
	}
	return tok.Kind == token.EOF, nil
}

// Read parses and returns exactly one top-level datum, per the grammar:
//
//	datum  := INT | BOOL | SYMBOL
//	        | QUOTE datum              => (quote <datum>)
//	        | '(' list-tail
//	list-tail := ')'                   => null
//	           | datum DOT datum ')'   => Pair(d1, d2)
//	           | datum list-tail       => Pair(d, rest)
func (r *Reader) Read() (value.Value, error) {
	tok, err := r.lex.Advance()
	if err != nil {
		return nil, err
	}
	return r.readDatum(tok)
}

func (r *Reader) readDatum(tok token.Token) (value.Value, error) {
	switch tok.Kind {
	case token.INTEGER:
		n, err := strconv.ParseInt(tok.Literal, 10, 64)
		if err != nil {
			return nil, lerrors.Syntax()
		}
		return r.heap.NewInteger(n), nil
	case token.BOOLEAN:
		return r.heap.NewBoolean(tok.Literal == "#t"), nil
	case token.SYMBOL:
		return r.heap.NewSymbol(tok.Literal), nil
	case token.QUOTE:
		inner, err := r.Read()
		if err != nil {
			return nil, err
		}
		return r.heap.NewPair(
			r.heap.NewSymbol("quote"),
			r.heap.NewPair(inner, nil),
		), nil
	case token.OPEN:
		return r.readListTail()
	default:
		return nil, lerrors.Syntax()
	}
}

func (r *Reader) readListTail() (value.Value, error) {
	tok, err := r.lex.Peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind == token.CLOSE {
		r.lex.Advance()
		return nil, nil
	}

	first, err := r.Read()
	if err != nil {
		return nil, err
	}

	tok, err = r.lex.Peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind == token.DOT {
		r.lex.Advance()
		second, err := r.Read()
		if err != nil {
			return nil, err
		}
		closeTok, err := r.lex.Advance()
		if err != nil {
			return nil, err
		}
		if closeTok.Kind != token.CLOSE {
			return nil, lerrors.Syntax()
		}
		return r.heap.NewPair(first, second), nil
	}

	rest, err := r.readListTail()
	if err != nil {
		return nil, err
	}
	return r.heap.NewPair(first, rest), nil
}

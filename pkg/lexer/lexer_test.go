package lexer

import (
	"testing"

	"github.com/minilisp/minilisp/internal/lerrors"
	"github.com/minilisp/minilisp/pkg/token"
)

func collectKinds(t *testing.T, input string) []token.Kind {
	t.Helper()
	l := New(input)
	var kinds []token.Kind
	for {
		tok, err := l.Advance()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		kinds = append(kinds, tok.Kind)
		if tok.Kind == token.EOF {
			break
		}
	}
	return kinds
}

func TestLexerPunctuation(t *testing.T) {
	kinds := collectKinds(t, "('. )")
	want := []token.Kind{token.OPEN, token.QUOTE, token.DOT, token.CLOSE, token.EOF}
	if len(kinds) != len(want) {
		t.Fatalf("got %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("token %d: got %v, want %v", i, kinds[i], want[i])
		}
	}
}

func TestLexerIntegers(t *testing.T) {
	l := New("42 -7 +3")
	lits := []string{"42", "-7", "+3"}
	for _, want := range lits {
		tok, err := l.Advance()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tok.Kind != token.INTEGER || tok.Literal != want {
			t.Fatalf("got %v %q, want INTEGER %q", tok.Kind, tok.Literal, want)
		}
	}
}

func TestLexerSignAloneIsSymbol(t *testing.T) {
	l := New("+ -")
	for _, want := range []string{"+", "-"} {
		tok, err := l.Advance()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tok.Kind != token.SYMBOL || tok.Literal != want {
			t.Fatalf("got %v %q, want SYMBOL %q", tok.Kind, tok.Literal, want)
		}
	}
}

func TestLexerBooleans(t *testing.T) {
	l := New("#t #f")
	for _, want := range []string{"#t", "#f"} {
		tok, err := l.Advance()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tok.Kind != token.BOOLEAN || tok.Literal != want {
			t.Fatalf("got %v %q, want BOOLEAN %q", tok.Kind, tok.Literal, want)
		}
	}
}

func TestLexerBooleanPrefixBecomesSymbol(t *testing.T) {
	l := New("#tfoo")
	tok, err := l.Advance()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.Kind != token.SYMBOL || tok.Literal != "#tfoo" {
		t.Fatalf("got %v %q, want SYMBOL %q", tok.Kind, tok.Literal, "#tfoo")
	}
}

func TestLexerSymbols(t *testing.T) {
	l := New("foo? set! <=> list->vector")
	want := []string{"foo?", "set!", "<=>", "list->vector"}
	for _, lit := range want {
		tok, err := l.Advance()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tok.Kind != token.SYMBOL || tok.Literal != lit {
			t.Fatalf("got %v %q, want SYMBOL %q", tok.Kind, tok.Literal, lit)
		}
	}
}

func TestLexerPeekDoesNotConsume(t *testing.T) {
	l := New("(foo)")
	first, err := l.Peek()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := l.Peek()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Kind != second.Kind || first.Literal != second.Literal {
		t.Fatalf("peek is not idempotent: %v vs %v", first, second)
	}
	advanced, err := l.Advance()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if advanced.Kind != first.Kind {
		t.Fatalf("advance after peek returned %v, want %v", advanced.Kind, first.Kind)
	}
}

func TestLexerUnrecognizedCharIsSyntaxError(t *testing.T) {
	l := New("@")
	_, err := l.Advance()
	if !lerrors.IsKind(err, lerrors.SyntaxErrorKind) {
		t.Fatalf("got %v, want SyntaxError", err)
	}
}

func TestLexerSkipsWhitespace(t *testing.T) {
	kinds := collectKinds(t, "  (  \n\t )  ")
	want := []token.Kind{token.OPEN, token.CLOSE, token.EOF}
	if len(kinds) != len(want) {
		t.Fatalf("got %v, want %v", kinds, want)
	}
}

// Package lerrors defines the three typed, payload-less error kinds that
// minilisp evaluation can fail with.
package lerrors

import "errors"

// Kind identifies which of the three error categories an Error belongs to.
type Kind int

const (
	// SyntaxErrorKind signals malformed input at the tokenizer or reader,
	// or a special form given structurally ill-formed arguments.
	SyntaxErrorKind Kind = iota
	// NameErrorKind signals a reference to an unbound symbol.
	NameErrorKind
	// RuntimeErrorKind signals any other evaluation failure: wrong arity,
	// wrong argument type, applying a non-callable, and so on.
	RuntimeErrorKind
)

func (k Kind) String() string {
	switch k {
	case SyntaxErrorKind:
		return "SyntaxError"
	case NameErrorKind:
		return "NameError"
	case RuntimeErrorKind:
		return "RuntimeError"
	default:
		return "Error"
	}
}

// Error is a typed evaluation error. It carries no payload: no message, no
// position, no offending expression. Callers distinguish failures solely by
// Kind.
type Error struct {
	Kind Kind
}

func (e *Error) Error() string {
	return e.Kind.String()
}

// Syntax returns a new SyntaxError.
func Syntax() *Error {
	return &Error{Kind: SyntaxErrorKind}
}

// Name returns a new NameError.
func Name() *Error {
	return &Error{Kind: NameErrorKind}
}

// Runtime returns a new RuntimeError.
func Runtime() *Error {
	return &Error{Kind: RuntimeErrorKind}
}

// IsKind reports whether err is, or wraps, an *Error of the given kind, so
// callers can write lerrors.IsKind(err, lerrors.NameErrorKind) against
// wrapped errors.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

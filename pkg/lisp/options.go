package lisp

import "io"

// Option configures an Interpreter at construction time.
type Option func(*Interpreter)

// WithTrace makes the Interpreter write one line per top-level Run call to
// w: the source text it read and the serialized result it produced.
// Mirrors the teacher lexer's boolean tracing knob, generalized to an
// io.Writer since tracing an interpreter has output to put somewhere.
func WithTrace(w io.Writer) Option {
	return func(i *Interpreter) {
		i.trace = w
	}
}

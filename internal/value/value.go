// Package value implements the tagged value model shared by the reader,
// environment, and evaluator: Integer, Boolean, Symbol, Pair, Builtin, and
// Closure, plus the mark-and-sweep Heap that owns every allocation of them.
//
// The empty list is represented by the untyped nil Value, not by a
// dedicated struct; it is never itself a Pair.
package value

import "strconv"

// Value is any heap-allocated datum. Values are compared by identity, not
// structural equality, except where a primitive explicitly compares
// Integer contents.
type Value interface {
	Type() string
	String() string
}

// header is embedded in every concrete value to give the Heap a mark bit
// without exposing it outside this package.
type header struct {
	marked bool
}

func (h *header) mark() { h.marked = true }

func (h *header) unmark() { h.marked = false }

func (h *header) isMarked() bool { return h.marked }

// markable is implemented by every concrete Value via the embedded header.
type markable interface {
	mark()
	unmark()
	isMarked() bool
}

// Env is the environment interface a Closure closes over and a Builtin
// receives as its call-site environment. It is
// defined here, rather than imported from internal/env, so that value has
// no dependency on env; internal/env's *Environment implements this.
type Env interface {
	Lookup(name string) (Value, error)
	Define(name string, v Value)
	Assign(name string, v Value) error
	Parent() (Env, bool)
	Bindings() map[string]Value
	// NewChild returns a fresh child frame of this one, used by Closure
	// application to create the frame each call evaluates its body in.
	NewChild() Env
}

// Integer is a mutable signed 64-bit integer. Mutability matters only for
// set!'s in-place aliasing rule.
type Integer struct {
	header
	Value int64
}

func (*Integer) Type() string { return "Integer" }

func (n *Integer) String() string { return strconv.FormatInt(n.Value, 10) }

// Boolean is an immutable two-state value.
type Boolean struct {
	header
	Value bool
}

func (*Boolean) Type() string { return "Boolean" }

func (b *Boolean) String() string {
	if b.Value {
		return "#t"
	}
	return "#f"
}

// Symbol is an immutable identifier.
type Symbol struct {
	header
	Name string
}

func (*Symbol) Type() string { return "Symbol" }

func (s *Symbol) String() string { return s.Name }

// Pair has two mutable fields. A nil field denotes the empty list.
type Pair struct {
	header
	First  Value
	Second Value
}

func (*Pair) Type() string { return "Pair" }

func (p *Pair) String() string {
	s, err := Write(p)
	if err != nil {
		return "#<pair>"
	}
	return s
}

// BuiltinFunc is a host-provided procedure. It receives its arguments
// unevaluated, unlike a Closure, whose arguments are evaluated before its
// body runs; it is the builtin's own responsibility to evaluate whichever
// arguments it needs against env.
type BuiltinFunc func(args []Value, env Env) (Value, error)

// Builtin wraps a host procedure. Builtins are allocated once at
// construction and held by the global environment, so the collector keeps
// each one for as long as a binding reaches it; a Builtin whose global
// binding is redefined to another value is swept like any other.
type Builtin struct {
	header
	Name string
	Fn   BuiltinFunc
}

func (*Builtin) Type() string { return "Builtin" }

func (b *Builtin) String() string { return "#<builtin " + b.Name + ">" }

// Closure is a procedure closing over params, body, and the environment
// active at the point of its creation.
type Closure struct {
	header
	Params []string
	Body   []Value
	Env    Env
}

func (*Closure) Type() string { return "Closure" }

func (c *Closure) String() string { return "#<closure>" }

// IsTruthy reports whether v is truthy: every value except Boolean false,
// including the empty list and the integer zero.
func IsTruthy(v Value) bool {
	b, ok := v.(*Boolean)
	return !(ok && !b.Value)
}

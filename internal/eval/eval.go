// Package eval implements the tree-walking evaluator: dispatch-by-tag over
// the value model, procedure application, and the special forms and
// primitives bound into the global environment.
package eval

import (
	"github.com/minilisp/minilisp/internal/lerrors"
	"github.com/minilisp/minilisp/internal/value"
)

// Eval evaluates v in environment, allocating any new value it produces on
// heap.
//
// Integer, Boolean, Builtin, and Closure are self-evaluating. A Symbol
// resolves via environment.Lookup. The untyped nil Value (the empty list)
// is a RuntimeError in this position: it is a valid literal elsewhere, but
// never a valid form to evaluate directly. A Pair is a procedure
// application: its first field must evaluate to a Builtin or a Closure,
// and its second field, walked as a proper list, supplies the unevaluated
// argument forms.
func Eval(heap *value.Heap, v value.Value, environment value.Env) (value.Value, error) {
	switch t := v.(type) {
	case nil:
		return nil, lerrors.Runtime()
	case *value.Integer, *value.Boolean, *value.Builtin, *value.Closure:
		return v, nil
	case *value.Symbol:
		return environment.Lookup(t.Name)
	case *value.Pair:
		return evalApplication(heap, t, environment)
	default:
		return nil, lerrors.Runtime()
	}
}

func evalApplication(heap *value.Heap, p *value.Pair, environment value.Env) (value.Value, error) {
	callee, err := Eval(heap, p.First, environment)
	if err != nil {
		return nil, err
	}

	args, err := harvestArgs(p.Second)
	if err != nil {
		return nil, err
	}

	return Apply(heap, callee, args, environment)
}

// harvestArgs walks a Pair chain to nil, collecting each First field. Any
// cdr that is neither a Pair nor nil is a RuntimeError: the argument list
// itself must be a proper list.
func harvestArgs(v value.Value) ([]value.Value, error) {
	var args []value.Value
	for {
		switch t := v.(type) {
		case nil:
			return args, nil
		case *value.Pair:
			args = append(args, t.First)
			v = t.Second
		default:
			return nil, lerrors.Runtime()
		}
	}
}

// Apply invokes callee, which must be a Builtin or a Closure, on args.
//
// Builtins receive args exactly as harvested: unevaluated. It is the
// builtin's own responsibility to evaluate whichever of its arguments it
// needs. Closure application, by contrast, evaluates every argument eagerly
// and left-to-right in the caller's environment before binding params in a
// fresh child of the Closure's captured environment — this is the one
// place the unevaluated-argument convention is resolved on the callee's
// behalf, because ordinary lambda application is not itself a special
// form.
func Apply(heap *value.Heap, callee value.Value, args []value.Value, callerEnv value.Env) (value.Value, error) {
	switch fn := callee.(type) {
	case *value.Builtin:
		return fn.Fn(args, callerEnv)
	case *value.Closure:
		return applyClosure(heap, fn, args, callerEnv)
	default:
		return nil, lerrors.Runtime()
	}
}

func applyClosure(heap *value.Heap, fn *value.Closure, args []value.Value, callerEnv value.Env) (value.Value, error) {
	if len(args) != len(fn.Params) {
		return nil, lerrors.Runtime()
	}

	evaluated := make([]value.Value, len(args))
	for i, a := range args {
		v, err := Eval(heap, a, callerEnv)
		if err != nil {
			return nil, err
		}
		evaluated[i] = v
	}

	frame := fn.Env.NewChild()
	for i, name := range fn.Params {
		frame.Define(name, evaluated[i])
	}

	var result value.Value
	for _, form := range fn.Body {
		v, err := Eval(heap, form, frame)
		if err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}

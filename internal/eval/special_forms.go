package eval

import (
	"github.com/minilisp/minilisp/internal/lerrors"
	"github.com/minilisp/minilisp/internal/value"
)

// Special forms are bound as ordinary Builtins in the global environment
// (§4.3's "callee evaluates its own arguments" convention), so each one
// here has exactly the value.BuiltinFunc shape: it receives its arguments
// unevaluated and decides for itself which of them, if any, to evaluate.

func quoteForm(args []value.Value, env value.Env) (value.Value, error) {
	if len(args) != 1 {
		return nil, lerrors.Syntax()
	}
	return args[0], nil
}

func ifForm(heap *value.Heap) value.BuiltinFunc {
	return func(args []value.Value, env value.Env) (value.Value, error) {
		if len(args) != 2 && len(args) != 3 {
			return nil, lerrors.Syntax()
		}
		cond, err := Eval(heap, args[0], env)
		if err != nil {
			return nil, err
		}
		if value.IsTruthy(cond) {
			return Eval(heap, args[1], env)
		}
		if len(args) == 3 {
			return Eval(heap, args[2], env)
		}
		return nil, nil
	}
}

func lambdaForm(heap *value.Heap) value.BuiltinFunc {
	return func(args []value.Value, env value.Env) (value.Value, error) {
		if len(args) < 2 {
			return nil, lerrors.Syntax()
		}
		params, err := harvestParams(args[0])
		if err != nil {
			return nil, err
		}
		body := args[1:]
		return heap.NewClosure(params, body, env), nil
	}
}

// harvestParams walks formals, a proper list of Symbols, into their names.
// Any other shape - an improper list, or a non-Symbol element - is a
// SyntaxError.
func harvestParams(formals value.Value) ([]string, error) {
	var params []string
	for {
		switch t := formals.(type) {
		case nil:
			return params, nil
		case *value.Pair:
			sym, ok := t.First.(*value.Symbol)
			if !ok {
				return nil, lerrors.Syntax()
			}
			params = append(params, sym.Name)
			formals = t.Second
		default:
			return nil, lerrors.Syntax()
		}
	}
}

func defineForm(heap *value.Heap) value.BuiltinFunc {
	return func(args []value.Value, env value.Env) (value.Value, error) {
		if len(args) < 1 {
			return nil, lerrors.Syntax()
		}
		switch head := args[0].(type) {
		case *value.Symbol:
			return defineValueForm(heap, head, args, env)
		case *value.Pair:
			return defineFunctionForm(heap, head, args, env)
		default:
			return nil, lerrors.Syntax()
		}
	}
}

func defineValueForm(heap *value.Heap, name *value.Symbol, args []value.Value, env value.Env) (value.Value, error) {
	if len(args) != 2 {
		return nil, lerrors.Syntax()
	}
	v, err := Eval(heap, args[1], env)
	if err != nil {
		return nil, err
	}
	// A global binding to a fresh Integer is isolated from whatever
	// transient object produced its value, so a later set! on this name
	// never mutates an Integer some other binding still holds.
	if n, ok := v.(*value.Integer); ok {
		v = heap.NewInteger(n.Value)
	}
	env.Define(name.Name, v)
	return heap.NewBoolean(true), nil
}

func defineFunctionForm(heap *value.Heap, signature *value.Pair, args []value.Value, env value.Env) (value.Value, error) {
	name, ok := signature.First.(*value.Symbol)
	if !ok {
		return nil, lerrors.Syntax()
	}
	params, err := harvestParams(signature.Second)
	if err != nil {
		return nil, err
	}
	if len(args) < 2 {
		return nil, lerrors.Syntax()
	}
	body := args[1:]

	// The Closure captures its own private child frame, not env directly,
	// so its self-binding is visible to recursive calls without leaking
	// the name into env's own frame beyond the ordinary define below.
	closureEnv := env.NewChild()
	closure := heap.NewClosure(params, body, closureEnv)
	closureEnv.Define(name.Name, closure)
	env.Define(name.Name, closure)
	return heap.NewBoolean(true), nil
}

func setForm(heap *value.Heap) value.BuiltinFunc {
	return func(args []value.Value, env value.Env) (value.Value, error) {
		if len(args) != 2 {
			return nil, lerrors.Syntax()
		}
		name, ok := args[0].(*value.Symbol)
		if !ok {
			return nil, lerrors.Syntax()
		}
		newVal, err := Eval(heap, args[1], env)
		if err != nil {
			return nil, err
		}
		oldVal, err := env.Lookup(name.Name)
		if err != nil {
			return nil, err
		}
		if oldInt, ok := oldVal.(*value.Integer); ok {
			if newInt, ok := newVal.(*value.Integer); ok {
				oldInt.Value = newInt.Value
				return heap.NewBoolean(true), nil
			}
		}
		if err := env.Assign(name.Name, newVal); err != nil {
			return nil, err
		}
		return heap.NewBoolean(true), nil
	}
}

func setCarForm(heap *value.Heap) value.BuiltinFunc {
	return func(args []value.Value, env value.Env) (value.Value, error) {
		if len(args) != 2 {
			return nil, lerrors.Syntax()
		}
		target, err := Eval(heap, args[0], env)
		if err != nil {
			return nil, err
		}
		pair, ok := target.(*value.Pair)
		if !ok {
			return nil, lerrors.Runtime()
		}
		newVal, err := Eval(heap, args[1], env)
		if err != nil {
			return nil, err
		}
		pair.First = newVal
		return heap.NewBoolean(true), nil
	}
}

func setCdrForm(heap *value.Heap) value.BuiltinFunc {
	return func(args []value.Value, env value.Env) (value.Value, error) {
		if len(args) != 2 {
			return nil, lerrors.Syntax()
		}
		target, err := Eval(heap, args[0], env)
		if err != nil {
			return nil, err
		}
		pair, ok := target.(*value.Pair)
		if !ok {
			return nil, lerrors.Runtime()
		}
		newVal, err := Eval(heap, args[1], env)
		if err != nil {
			return nil, err
		}
		pair.Second = newVal
		return heap.NewBoolean(true), nil
	}
}

func andForm(heap *value.Heap) value.BuiltinFunc {
	return func(args []value.Value, env value.Env) (value.Value, error) {
		if len(args) == 0 {
			return heap.NewBoolean(true), nil
		}
		var last value.Value
		for _, a := range args {
			v, err := Eval(heap, a, env)
			if err != nil {
				return nil, err
			}
			if !value.IsTruthy(v) {
				return v, nil
			}
			last = v
		}
		return last, nil
	}
}

func orForm(heap *value.Heap) value.BuiltinFunc {
	return func(args []value.Value, env value.Env) (value.Value, error) {
		if len(args) == 0 {
			return heap.NewBoolean(false), nil
		}
		var last value.Value
		for _, a := range args {
			v, err := Eval(heap, a, env)
			if err != nil {
				return nil, err
			}
			if value.IsTruthy(v) {
				return v, nil
			}
			last = v
		}
		return last, nil
	}
}

func notForm(heap *value.Heap) value.BuiltinFunc {
	return func(args []value.Value, env value.Env) (value.Value, error) {
		if len(args) != 1 {
			return nil, lerrors.Runtime()
		}
		v, err := Eval(heap, args[0], env)
		if err != nil {
			return nil, err
		}
		return heap.NewBoolean(!value.IsTruthy(v)), nil
	}
}

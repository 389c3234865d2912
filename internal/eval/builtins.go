package eval

import (
	"github.com/minilisp/minilisp/internal/lerrors"
	"github.com/minilisp/minilisp/internal/value"
)

// Ordinary primitives are not special forms: §4.3 requires them to
// evaluate their own arguments before using them, since the evaluator
// never does this on a callee's behalf.

func evalArgs(heap *value.Heap, args []value.Value, env value.Env) ([]value.Value, error) {
	out := make([]value.Value, len(args))
	for i, a := range args {
		v, err := Eval(heap, a, env)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func asIntegers(args []value.Value) ([]int64, error) {
	out := make([]int64, len(args))
	for i, a := range args {
		n, ok := a.(*value.Integer)
		if !ok {
			return nil, lerrors.Runtime()
		}
		out[i] = n.Value
	}
	return out, nil
}

func plusBuiltin(heap *value.Heap) value.BuiltinFunc {
	return func(args []value.Value, env value.Env) (value.Value, error) {
		evaluated, err := evalArgs(heap, args, env)
		if err != nil {
			return nil, err
		}
		ints, err := asIntegers(evaluated)
		if err != nil {
			return nil, err
		}
		var sum int64
		for _, n := range ints {
			sum += n
		}
		return heap.NewInteger(sum), nil
	}
}

func mulBuiltin(heap *value.Heap) value.BuiltinFunc {
	return func(args []value.Value, env value.Env) (value.Value, error) {
		evaluated, err := evalArgs(heap, args, env)
		if err != nil {
			return nil, err
		}
		ints, err := asIntegers(evaluated)
		if err != nil {
			return nil, err
		}
		product := int64(1)
		for _, n := range ints {
			product *= n
		}
		return heap.NewInteger(product), nil
	}
}

func minusBuiltin(heap *value.Heap) value.BuiltinFunc {
	return func(args []value.Value, env value.Env) (value.Value, error) {
		evaluated, err := evalArgs(heap, args, env)
		if err != nil {
			return nil, err
		}
		ints, err := asIntegers(evaluated)
		if err != nil {
			return nil, err
		}
		if len(ints) == 0 {
			return nil, lerrors.Runtime()
		}
		if len(ints) == 1 {
			return heap.NewInteger(-ints[0]), nil
		}
		result := ints[0]
		for _, n := range ints[1:] {
			result -= n
		}
		return heap.NewInteger(result), nil
	}
}

func divBuiltin(heap *value.Heap) value.BuiltinFunc {
	return func(args []value.Value, env value.Env) (value.Value, error) {
		evaluated, err := evalArgs(heap, args, env)
		if err != nil {
			return nil, err
		}
		ints, err := asIntegers(evaluated)
		if err != nil {
			return nil, err
		}
		if len(ints) == 0 {
			return nil, lerrors.Runtime()
		}
		if len(ints) == 1 {
			if ints[0] == 0 {
				return nil, lerrors.Runtime()
			}
			return heap.NewInteger(1 / ints[0]), nil
		}
		result := ints[0]
		for _, n := range ints[1:] {
			if n == 0 {
				return nil, lerrors.Runtime()
			}
			result /= n
		}
		return heap.NewInteger(result), nil
	}
}

func maxBuiltin(heap *value.Heap) value.BuiltinFunc {
	return func(args []value.Value, env value.Env) (value.Value, error) {
		evaluated, err := evalArgs(heap, args, env)
		if err != nil {
			return nil, err
		}
		ints, err := asIntegers(evaluated)
		if err != nil {
			return nil, err
		}
		if len(ints) == 0 {
			return nil, lerrors.Runtime()
		}
		best := ints[0]
		for _, n := range ints[1:] {
			if n > best {
				best = n
			}
		}
		return heap.NewInteger(best), nil
	}
}

func minBuiltin(heap *value.Heap) value.BuiltinFunc {
	return func(args []value.Value, env value.Env) (value.Value, error) {
		evaluated, err := evalArgs(heap, args, env)
		if err != nil {
			return nil, err
		}
		ints, err := asIntegers(evaluated)
		if err != nil {
			return nil, err
		}
		if len(ints) == 0 {
			return nil, lerrors.Runtime()
		}
		best := ints[0]
		for _, n := range ints[1:] {
			if n < best {
				best = n
			}
		}
		return heap.NewInteger(best), nil
	}
}

func absBuiltin(heap *value.Heap) value.BuiltinFunc {
	return func(args []value.Value, env value.Env) (value.Value, error) {
		evaluated, err := evalArgs(heap, args, env)
		if err != nil {
			return nil, err
		}
		ints, err := asIntegers(evaluated)
		if err != nil {
			return nil, err
		}
		if len(ints) != 1 {
			return nil, lerrors.Runtime()
		}
		n := ints[0]
		if n < 0 {
			n = -n
		}
		return heap.NewInteger(n), nil
	}
}

func typePredicate(heap *value.Heap, check func(value.Value) bool) value.BuiltinFunc {
	return func(args []value.Value, env value.Env) (value.Value, error) {
		if len(args) != 1 {
			return nil, lerrors.Runtime()
		}
		v, err := Eval(heap, args[0], env)
		if err != nil {
			return nil, err
		}
		return heap.NewBoolean(check(v)), nil
	}
}

func isProperList(v value.Value) bool {
	for {
		switch t := v.(type) {
		case nil:
			return true
		case *value.Pair:
			v = t.Second
		default:
			return false
		}
	}
}

func comparison(heap *value.Heap, relates func(a, b int64) bool) value.BuiltinFunc {
	return func(args []value.Value, env value.Env) (value.Value, error) {
		evaluated, err := evalArgs(heap, args, env)
		if err != nil {
			return nil, err
		}
		ints, err := asIntegers(evaluated)
		if err != nil {
			return nil, err
		}
		for i := 1; i < len(ints); i++ {
			if !relates(ints[i-1], ints[i]) {
				return heap.NewBoolean(false), nil
			}
		}
		return heap.NewBoolean(true), nil
	}
}

func consBuiltin(heap *value.Heap) value.BuiltinFunc {
	return func(args []value.Value, env value.Env) (value.Value, error) {
		if len(args) != 2 {
			return nil, lerrors.Runtime()
		}
		evaluated, err := evalArgs(heap, args, env)
		if err != nil {
			return nil, err
		}
		return heap.NewPair(evaluated[0], evaluated[1]), nil
	}
}

func carBuiltin(heap *value.Heap) value.BuiltinFunc {
	return func(args []value.Value, env value.Env) (value.Value, error) {
		if len(args) != 1 {
			return nil, lerrors.Runtime()
		}
		v, err := Eval(heap, args[0], env)
		if err != nil {
			return nil, err
		}
		pair, ok := v.(*value.Pair)
		if !ok {
			return nil, lerrors.Runtime()
		}
		return pair.First, nil
	}
}

func cdrBuiltin(heap *value.Heap) value.BuiltinFunc {
	return func(args []value.Value, env value.Env) (value.Value, error) {
		if len(args) != 1 {
			return nil, lerrors.Runtime()
		}
		v, err := Eval(heap, args[0], env)
		if err != nil {
			return nil, err
		}
		pair, ok := v.(*value.Pair)
		if !ok {
			return nil, lerrors.Runtime()
		}
		return pair.Second, nil
	}
}

func listBuiltin(heap *value.Heap) value.BuiltinFunc {
	return func(args []value.Value, env value.Env) (value.Value, error) {
		evaluated, err := evalArgs(heap, args, env)
		if err != nil {
			return nil, err
		}
		var result value.Value
		for i := len(evaluated) - 1; i >= 0; i-- {
			result = heap.NewPair(evaluated[i], result)
		}
		return result, nil
	}
}

// nthCdr walks k Pair cells from v, failing with RuntimeError on a
// negative index or a chain that ends before k steps.
func nthCdr(v value.Value, k int64) (value.Value, error) {
	if k < 0 {
		return nil, lerrors.Runtime()
	}
	for ; k > 0; k-- {
		pair, ok := v.(*value.Pair)
		if !ok {
			return nil, lerrors.Runtime()
		}
		v = pair.Second
	}
	return v, nil
}

func listRefBuiltin(heap *value.Heap) value.BuiltinFunc {
	return func(args []value.Value, env value.Env) (value.Value, error) {
		if len(args) != 2 {
			return nil, lerrors.Runtime()
		}
		evaluated, err := evalArgs(heap, args, env)
		if err != nil {
			return nil, err
		}
		k, ok := evaluated[1].(*value.Integer)
		if !ok {
			return nil, lerrors.Runtime()
		}
		tail, err := nthCdr(evaluated[0], k.Value)
		if err != nil {
			return nil, err
		}
		pair, ok := tail.(*value.Pair)
		if !ok {
			return nil, lerrors.Runtime()
		}
		return pair.First, nil
	}
}

func listTailBuiltin(heap *value.Heap) value.BuiltinFunc {
	return func(args []value.Value, env value.Env) (value.Value, error) {
		if len(args) != 2 {
			return nil, lerrors.Runtime()
		}
		evaluated, err := evalArgs(heap, args, env)
		if err != nil {
			return nil, err
		}
		k, ok := evaluated[1].(*value.Integer)
		if !ok {
			return nil, lerrors.Runtime()
		}
		return nthCdr(evaluated[0], k.Value)
	}
}

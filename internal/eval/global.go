package eval

import (
	"github.com/minilisp/minilisp/internal/env"
	"github.com/minilisp/minilisp/internal/value"
)

// NewGlobalEnv returns the interpreter's root environment, pre-populated
// with every special form and primitive §6.2 names, each allocated as a
// Builtin on heap. It persists across Run calls on one interpreter
// instance and is the sole retention root for the heap's collector.
func NewGlobalEnv(heap *value.Heap) *env.Environment {
	root := env.New()

	forms := map[string]value.BuiltinFunc{
		"quote":    quoteForm,
		"if":       ifForm(heap),
		"lambda":   lambdaForm(heap),
		"define":   defineForm(heap),
		"set!":     setForm(heap),
		"set-car!": setCarForm(heap),
		"set-cdr!": setCdrForm(heap),
		"and":      andForm(heap),
		"or":       orForm(heap),
		"not":      notForm(heap),
	}

	primitives := map[string]value.BuiltinFunc{
		"+":   plusBuiltin(heap),
		"*":   mulBuiltin(heap),
		"-":   minusBuiltin(heap),
		"/":   divBuiltin(heap),
		"max": maxBuiltin(heap),
		"min": minBuiltin(heap),
		"abs": absBuiltin(heap),

		"number?":  typePredicate(heap, func(v value.Value) bool { _, ok := v.(*value.Integer); return ok }),
		"boolean?": typePredicate(heap, func(v value.Value) bool { _, ok := v.(*value.Boolean); return ok }),
		"symbol?":  typePredicate(heap, func(v value.Value) bool { _, ok := v.(*value.Symbol); return ok }),
		"null?":    typePredicate(heap, func(v value.Value) bool { return v == nil }),
		"pair?":    typePredicate(heap, func(v value.Value) bool { _, ok := v.(*value.Pair); return ok }),
		"list?":    typePredicate(heap, isProperList),

		"=":  comparison(heap, func(a, b int64) bool { return a == b }),
		"<":  comparison(heap, func(a, b int64) bool { return a < b }),
		">":  comparison(heap, func(a, b int64) bool { return a > b }),
		"<=": comparison(heap, func(a, b int64) bool { return a <= b }),
		">=": comparison(heap, func(a, b int64) bool { return a >= b }),

		"cons":      consBuiltin(heap),
		"car":       carBuiltin(heap),
		"cdr":       cdrBuiltin(heap),
		"list":      listBuiltin(heap),
		"list-ref":  listRefBuiltin(heap),
		"list-tail": listTailBuiltin(heap),
	}

	for name, fn := range forms {
		root.Define(name, heap.NewBuiltin(name, fn))
	}
	for name, fn := range primitives {
		root.Define(name, heap.NewBuiltin(name, fn))
	}

	return root
}

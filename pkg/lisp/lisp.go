// Package lisp is the embeddable interpreter for the minilisp dialect:
// construct an Interpreter once, then call Run repeatedly. State (global
// definitions, mutated pairs) persists across calls on one instance.
package lisp

import (
	"fmt"
	"io"

	"github.com/minilisp/minilisp/internal/env"
	"github.com/minilisp/minilisp/internal/eval"
	"github.com/minilisp/minilisp/internal/reader"
	"github.com/minilisp/minilisp/internal/value"
	"github.com/minilisp/minilisp/pkg/lexer"
)

// Interpreter holds one heap and one global environment, both of which
// persist for the life of the instance.
type Interpreter struct {
	heap   *value.Heap
	global *env.Environment
	trace  io.Writer
}

// New constructs an Interpreter with a fresh heap and a global environment
// pre-populated with every primitive and special form §6.2 names.
func New(opts ...Option) *Interpreter {
	heap := value.NewHeap()
	i := &Interpreter{
		heap:   heap,
		global: eval.NewGlobalEnv(heap),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Run reads exactly one top-level datum from text, evaluates it against
// the persistent global environment, serializes the result, sweeps the
// heap, and returns the serialized string. Trailing tokens after the first
// datum are ignored.
//
// The heap sweep runs on every exit path, including a returned error,
// mirroring the original implementation's RAII HeapGuard around Run.
func (i *Interpreter) Run(text string) (result string, err error) {
	defer func() {
		i.heap.Collect(i.global)
		if i.trace != nil {
			fmt.Fprintf(i.trace, "run %q -> %q (err=%v)\n", text, result, err)
		}
	}()

	l := lexer.New(text)
	r := reader.New(l, i.heap)

	datum, readErr := r.Read()
	if readErr != nil {
		return "", readErr
	}

	v, evalErr := eval.Eval(i.heap, datum, i.global)
	if evalErr != nil {
		return "", evalErr
	}

	s, writeErr := value.Write(v)
	if writeErr != nil {
		return "", writeErr
	}
	return s, nil
}

// Stats reports the heap's diagnostic counters as of the most recent Run.
func (i *Interpreter) Stats() value.Stats {
	return i.heap.Stats()
}

// RunAll reads every top-level datum out of text in turn, evaluating and
// serializing each one against the persistent global environment exactly
// as Run would, and sweeping the heap after each. It exists because Run
// itself commits to reading only one datum per call (§6.1); a script
// runner that wants "run this whole file" builds it from repeated Run
// semantics rather than a different evaluation contract.
func (i *Interpreter) RunAll(text string) ([]string, error) {
	l := lexer.New(text)
	r := reader.New(l, i.heap)

	var results []string
	for {
		atEOF, err := r.AtEOF()
		if err != nil {
			return results, err
		}
		if atEOF {
			return results, nil
		}

		result, err := i.runDatum(r)
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}
}

func (i *Interpreter) runDatum(r *reader.Reader) (result string, err error) {
	defer i.heap.Collect(i.global)

	datum, readErr := r.Read()
	if readErr != nil {
		return "", readErr
	}
	v, evalErr := eval.Eval(i.heap, datum, i.global)
	if evalErr != nil {
		return "", evalErr
	}
	return value.Write(v)
}

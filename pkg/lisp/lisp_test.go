package lisp

import (
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/minilisp/minilisp/internal/lerrors"
)

// scenario mirrors the end-to-end table: a sequence of top-level programs
// run on one Interpreter instance, each producing one serialized result.
type scenario struct {
	name        string
	programs    []string
	expectError bool
}

var scenarios = []scenario{
	{name: "sum", programs: []string{"(+ 1 2 3)"}},
	{name: "counter", programs: []string{"(define x 10)", "(set! x (+ x 5))", "x"}},
	{
		name: "factorial",
		programs: []string{
			"(define (fact n) (if (<= n 1) 1 (* n (fact (- n 1)))))",
			"(fact 5)",
		},
	},
	{name: "dotted-quote", programs: []string{"'(1 2 . 3)"}},
	{name: "lambda-application", programs: []string{"((lambda (x) (* x x)) 7)"}},
	{
		name: "set-car",
		programs: []string{
			"(define p (cons 1 2))",
			"(set-car! p 9)",
			"p",
		},
	},
}

func TestEndToEndScenarios(t *testing.T) {
	for _, sc := range scenarios {
		t.Run(sc.name, func(t *testing.T) {
			interp := New()
			var results []string
			for _, program := range sc.programs {
				result, err := interp.Run(program)
				if err != nil {
					t.Fatalf("Run(%q): %v", program, err)
				}
				results = append(results, result)
			}
			snaps.MatchSnapshot(t, strings.Join(results, ", "))
		})
	}
}

func TestRunIgnoresTrailingTokens(t *testing.T) {
	interp := New()
	result, err := interp.Run("1 2 3")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result != "1" {
		t.Fatalf("got %q, want %q", result, "1")
	}
}

func TestRunPersistsStateAcrossCalls(t *testing.T) {
	interp := New()
	if _, err := interp.Run("(define x 1)"); err != nil {
		t.Fatalf("Run: %v", err)
	}
	result, err := interp.Run("x")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result != "1" {
		t.Fatalf("got %q, want %q", result, "1")
	}
}

func TestGlobalMutationsSurviveAFailedRun(t *testing.T) {
	interp := New()
	if _, err := interp.Run("(define x 1)"); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if _, err := interp.Run("(car 5)"); err == nil {
		t.Fatal("expected an error")
	}
	result, err := interp.Run("x")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result != "1" {
		t.Fatalf("a failed Run must not roll back prior global definitions, got %q", result)
	}
}

func TestRunErrorKindUndefinedSymbol(t *testing.T) {
	interp := New()
	_, err := interp.Run("undefined-name")
	if !lerrors.IsKind(err, lerrors.NameErrorKind) {
		t.Fatalf("got %v, want NameError", err)
	}
}

func TestRunCollectsUnreachableAllocationsBetweenCalls(t *testing.T) {
	interp := New()
	if _, err := interp.Run("(list 1 2 3)"); err != nil {
		t.Fatalf("Run: %v", err)
	}
	// the list built above is a local temporary never bound to a global
	// name, so it must not survive the sweep that follows Run.
	stats := interp.Stats()
	if stats.FreedLastSweep == 0 {
		t.Fatalf("expected the unreferenced list to be freed, got stats %+v", stats)
	}
}

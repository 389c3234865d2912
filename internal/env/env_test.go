package env

import (
	"testing"

	"github.com/minilisp/minilisp/internal/lerrors"
	"github.com/minilisp/minilisp/internal/value"
)

func TestDefineAndLookup(t *testing.T) {
	h := value.NewHeap()
	e := New()
	e.Define("x", h.NewInteger(10))

	v, err := e.Lookup("x")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if v.(*value.Integer).Value != 10 {
		t.Fatalf("got %v, want 10", v)
	}
}

func TestLookupMissingIsNameError(t *testing.T) {
	e := New()
	_, err := e.Lookup("missing")
	if !lerrors.IsKind(err, lerrors.NameErrorKind) {
		t.Fatalf("got %v, want NameError", err)
	}
}

func TestChildSeesParentBindingUnlessShadowed(t *testing.T) {
	h := value.NewHeap()
	parent := New()
	parent.Define("x", h.NewInteger(1))
	child := NewEnclosed(parent)

	v, err := child.Lookup("x")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if v.(*value.Integer).Value != 1 {
		t.Fatalf("got %v, want parent's binding 1", v)
	}

	child.Define("x", h.NewInteger(2))
	v, err = child.Lookup("x")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if v.(*value.Integer).Value != 2 {
		t.Fatalf("got %v, want shadowed binding 2", v)
	}

	pv, err := parent.Lookup("x")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if pv.(*value.Integer).Value != 1 {
		t.Fatalf("shadowing a child binding must not affect the parent frame, got %v", pv)
	}
}

func TestAssignWalksChain(t *testing.T) {
	h := value.NewHeap()
	parent := New()
	parent.Define("counter", h.NewInteger(0))
	child := NewEnclosed(parent)

	if err := child.Assign("counter", h.NewInteger(5)); err != nil {
		t.Fatalf("Assign: %v", err)
	}

	v, err := parent.Lookup("counter")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if v.(*value.Integer).Value != 5 {
		t.Fatalf("Assign did not reach the parent frame, got %v", v)
	}

	if _, ok := child.store["counter"]; ok {
		t.Fatal("Assign must not create a local binding in the child frame")
	}
}

func TestAssignMissingIsNameError(t *testing.T) {
	e := New()
	err := e.Assign("missing", nil)
	if !lerrors.IsKind(err, lerrors.NameErrorKind) {
		t.Fatalf("got %v, want NameError", err)
	}
}

func TestDefineShadowsPrimitiveInNonRootScope(t *testing.T) {
	h := value.NewHeap()
	global := New()
	global.Define("+", h.NewBuiltin("+", nil))
	local := NewEnclosed(global)
	local.Define("+", h.NewInteger(42))

	v, err := local.Lookup("+")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if _, ok := v.(*value.Integer); !ok {
		t.Fatalf("shadowed binding should win, got %T", v)
	}
}

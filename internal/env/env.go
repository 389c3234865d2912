// Package env implements the lexically scoped environment chain: a
// mapping from symbol name to value reference, plus an optional parent.
package env

import (
	"github.com/minilisp/minilisp/internal/lerrors"
	"github.com/minilisp/minilisp/internal/value"
)

// Environment is a single binding frame, case-sensitive, with an optional
// parent frame to search when a name is not found locally.
type Environment struct {
	store  map[string]value.Value
	parent *Environment
}

// New returns a fresh environment with no parent; used for the
// interpreter's global frame.
func New() *Environment {
	return &Environment{store: make(map[string]value.Value)}
}

// NewEnclosed returns a fresh environment whose parent is outer; used for
// closure application and any other scope that should see outer's
// bindings unless it shadows them.
func NewEnclosed(outer *Environment) *Environment {
	return &Environment{store: make(map[string]value.Value), parent: outer}
}

// Lookup walks the chain from this frame outward until name is found,
// failing with NameError if the root frame has no binding for it either.
func (e *Environment) Lookup(name string) (value.Value, error) {
	for frame := e; frame != nil; frame = frame.parent {
		if v, ok := frame.store[name]; ok {
			return v, nil
		}
	}
	return nil, lerrors.Name()
}

// Define inserts or overwrites name in this frame only, never consulting
// or affecting any ancestor.
func (e *Environment) Define(name string, v value.Value) {
	e.store[name] = v
}

// Assign walks the chain and overwrites the first frame that already
// binds name, failing with NameError if no frame does.
func (e *Environment) Assign(name string, v value.Value) error {
	for frame := e; frame != nil; frame = frame.parent {
		if _, ok := frame.store[name]; ok {
			frame.store[name] = v
			return nil
		}
	}
	return lerrors.Name()
}

// Parent returns this frame's parent, if any. It satisfies value.Env so
// the heap's mark phase can walk a Closure's captured environment chain.
func (e *Environment) Parent() (value.Env, bool) {
	if e.parent == nil {
		return nil, false
	}
	return e.parent, true
}

// Bindings returns this frame's own bindings, not those of any ancestor.
// It satisfies value.Env for the heap's mark phase.
func (e *Environment) Bindings() map[string]value.Value {
	return e.store
}

// NewChild returns a fresh child frame of e. It satisfies value.Env so
// Closure application can create a call frame without importing env.
func (e *Environment) NewChild() value.Env {
	return NewEnclosed(e)
}

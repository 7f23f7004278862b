/*
File    : lim/env/environment.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package env implements Lim's chained lexical environment: a frame of
// name->value bindings with an optional parent frame.
package env

import (
	"fmt"

	"github.com/akashmaji946/lim/value"
)

// Environment is one scope frame. A function closure holds a pointer to
// the frame that was current when its literal was evaluated and shares
// it — never copies it — so that later mutations through the closure's
// own chain stay visible, per the language's closure-over-mutable-frame
// requirement.
type Environment struct {
	bindings map[string]value.Value
	parent   *Environment
}

// NewRoot creates a fresh top-level environment with no parent.
func NewRoot() *Environment {
	return &Environment{bindings: make(map[string]value.Value)}
}

// ChildOf creates a new frame whose parent is the given environment.
func ChildOf(parent *Environment) *Environment {
	return &Environment{bindings: make(map[string]value.Value), parent: parent}
}

// Define introduces name into this frame only. It fails if name already
// exists in this frame (redefinition in the same frame is a runtime
// error); it never consults the parent chain.
func (e *Environment) Define(name string, v value.Value) error {
	if _, exists := e.bindings[name]; exists {
		return fmt.Errorf("variable %q already defined in this scope", name)
	}
	e.bindings[name] = v
	return nil
}

// Set updates the nearest frame in the chain (starting at e) in which
// name already exists. It fails if name is bound nowhere in the chain.
func (e *Environment) Set(name string, v value.Value) error {
	for f := e; f != nil; f = f.parent {
		if _, exists := f.bindings[name]; exists {
			f.bindings[name] = v
			return nil
		}
	}
	return fmt.Errorf("variable %q not declared", name)
}

// Get resolves name by walking the chain from e outward, returning the
// value from the nearest frame that holds it.
func (e *Environment) Get(name string) (value.Value, error) {
	for f := e; f != nil; f = f.parent {
		if v, exists := f.bindings[name]; exists {
			return v, nil
		}
	}
	return nil, fmt.Errorf("undefined variable: %s", name)
}

// Parent exposes the frame's parent, or nil at the root.
func (e *Environment) Parent() *Environment {
	return e.parent
}

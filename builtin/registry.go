/*
File    : lim/builtin/registry.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package builtin implements Lim's host builtin extension point: the
// interpreter core never knows what printf or timestamp actually do, only
// that a value.Hole carries an integer id it can route through a small
// static table.
package builtin

import (
	"fmt"

	"github.com/akashmaji946/lim/env"
	"github.com/akashmaji946/lim/value"
)

// Func is the signature every host builtin implements: a slice of already-
// evaluated arguments in, a Value or an error out.
type Func func(args []value.Value) (value.Value, error)

// Registry holds the (id -> name, id -> callable) pairs the host
// registered at interpreter construction time.
type Registry struct {
	names map[uint32]string
	funcs map[uint32]Func
}

// NewRegistry returns an empty registry with no builtins bound.
func NewRegistry() *Registry {
	return &Registry{names: make(map[uint32]string), funcs: make(map[uint32]Func)}
}

// Register adds one (name, id) pair to the table, dispatched by id.
// Registering the same id twice overwrites the previous entry.
func (r *Registry) Register(id uint32, name string, fn Func) {
	r.names[id] = name
	r.funcs[id] = fn
}

// Unregister removes id from the table entirely, so BindAll no longer
// defines a name for it and Call reports it unknown.
func (r *Registry) Unregister(id uint32) {
	delete(r.names, id)
	delete(r.funcs, id)
}

// BindAll defines a value.Hole for every registered builtin in env e,
// named the way the host registered it, so ordinary identifier lookup
// (and FunctionCall-by-name resolution) finds it.
func (r *Registry) BindAll(e *env.Environment) {
	for id, name := range r.names {
		_ = e.Define(name, &value.Hole{ID: id, Name: name})
	}
}

// Call dispatches to the builtin registered under id, failing if no
// builtin is registered there.
func (r *Registry) Call(id uint32, args []value.Value) (value.Value, error) {
	fn, ok := r.funcs[id]
	if !ok {
		return nil, fmt.Errorf("no builtin registered for id %d", id)
	}
	return fn(args)
}

// Baseline ids the driver relies on.
const (
	TimestampID uint32 = 1
	PrintfID    uint32 = 12
)

// Default returns a Registry seeded with the two baseline builtins the CLI
// driver depends on: timestamp at id 1 and printf at id 12.
func Default() *Registry {
	r := NewRegistry()
	r.Register(TimestampID, "timestamp", timestampBuiltin)
	r.Register(PrintfID, "printf", printfBuiltin)
	return r
}

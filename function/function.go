/*
File    : lim/function/function.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package function defines the Function closure type. It is kept out of
// package value (which stays a dependency-free leaf) because a closure
// needs to reference both an AST body and a captured Environment; value
// cannot import ast/env without those packages importing value in turn
// and creating a cycle.
package function

import (
	"fmt"

	"github.com/akashmaji946/lim/ast"
	"github.com/akashmaji946/lim/env"
	"github.com/akashmaji946/lim/value"
)

// Function is a closure: parameters, a body, and the environment frame
// that was current when the function literal was evaluated. That frame
// is shared by pointer, never copied, so mutations visible through the
// closure's own chain are observed on every subsequent call.
type Function struct {
	Params      []string
	Body        ast.Node
	CapturedEnv *env.Environment
}

func (*Function) Type() value.Type     { return value.FunctionType }
func (*Function) ToString() string     { return "Function" }
func (f *Function) Inspect() string {
	return fmt.Sprintf("fn(%d params)", len(f.Params))
}

var _ value.Value = (*Function)(nil)

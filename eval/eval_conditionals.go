/*
File    : lim/eval/eval_conditionals.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/lim/ast"
	"github.com/akashmaji946/lim/value"
)

// evalConditional covers both an `if/else` statement and the `? :`
// ternary — the parser builds the same node for either surface form. A
// non-boolean condition is a runtime error; a false condition with no
// Else branch yields Null.
func (e *Evaluator) evalConditional(n *ast.Conditional) (ControlFlow, error) {
	cond, err := e.evalExpr(n.Cond)
	if err != nil {
		return ControlFlow{}, err
	}
	b, ok := cond.(value.Boolean)
	if !ok {
		return ControlFlow{}, runtimeErr(n, "condition must be a boolean, got %s", cond.Type())
	}
	if bool(b) {
		return e.Evaluate(n.Then)
	}
	if n.Else != nil {
		return e.Evaluate(n.Else)
	}
	return Continue(nullValue), nil
}

/*
File    : lim/eval/eval_loops.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/lim/ast"
	"github.com/akashmaji946/lim/value"
)

// evalLoop implements the `while`-style loop: repeatedly evaluate Cond
// while it is Boolean(true), evaluating Body each iteration. A Return from
// the body propagates out of the loop (and the enclosing call); a Break
// terminates the loop with Null; a plain Continue just feeds back into the
// next condition check.
func (e *Evaluator) evalLoop(n *ast.Loop) (ControlFlow, error) {
	for {
		cond, err := e.evalExpr(n.Cond)
		if err != nil {
			return ControlFlow{}, err
		}
		b, ok := cond.(value.Boolean)
		if !ok {
			return ControlFlow{}, runtimeErr(n, "loop condition must be a boolean, got %s", cond.Type())
		}
		if !bool(b) {
			return Continue(nullValue), nil
		}

		cf, err := e.Evaluate(n.Body)
		if err != nil {
			return ControlFlow{}, err
		}
		switch cf.Kind {
		case ReturnKind:
			return cf, nil
		case BreakKind:
			return Continue(nullValue), nil
		}
	}
}

/*
File    : lim/eval/eval_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import "github.com/akashmaji946/lim/ast"

// evalLiteral yields the primitive value the parser embedded directly.
func (e *Evaluator) evalLiteral(n *ast.Literal) (ControlFlow, error) {
	return Continue(n.Value), nil
}

// evalIdentifier resolves a variable reference by walking the environment
// chain outward from the current frame.
func (e *Evaluator) evalIdentifier(n *ast.Identifier) (ControlFlow, error) {
	v, err := e.Env.Get(n.Name)
	if err != nil {
		return ControlFlow{}, runtimeErr(n, "Undefined variable: %s", n.Name)
	}
	return Continue(v), nil
}

// evalBlock evaluates each statement in order. A Return or Break from any
// statement stops the block immediately and propagates unchanged; an empty
// block (or one whose statements all ran to completion) yields the last
// statement's Continue value, or Null if the block has no statements.
func (e *Evaluator) evalBlock(n *ast.Block) (ControlFlow, error) {
	result := Continue(nullValue)
	for _, stmt := range n.Stmts {
		cf, err := e.Evaluate(stmt)
		if err != nil {
			return ControlFlow{}, err
		}
		if !cf.IsContinue() {
			return cf, nil
		}
		result = cf
	}
	return result, nil
}

// evalLet introduces a new name into the current (innermost) frame only.
// A bare Identifier binding defines the name to Null; an Assignment
// binding evaluates the right-hand side first and defines the name to
// that value. Define fails — a runtime error — if the name already exists
// in this exact frame.
func (e *Evaluator) evalLet(n *ast.Let) (ControlFlow, error) {
	switch b := n.Binding.(type) {
	case *ast.Identifier:
		if err := e.Env.Define(b.Name, nullValue); err != nil {
			return ControlFlow{}, runtimeErr(n, "%s", err)
		}
		return Continue(nullValue), nil
	case *ast.Assignment:
		v, err := e.evalExpr(b.Value)
		if err != nil {
			return ControlFlow{}, err
		}
		if err := e.Env.Define(b.Name, v); err != nil {
			return ControlFlow{}, runtimeErr(n, "%s", err)
		}
		return Continue(v), nil
	default:
		return ControlFlow{}, runtimeErr(n, "invalid let binding")
	}
}

// evalAssignment mutates an existing binding, resolved by walking the
// environment chain; it fails if the name is bound nowhere in scope.
func (e *Evaluator) evalAssignment(n *ast.Assignment) (ControlFlow, error) {
	v, err := e.evalExpr(n.Value)
	if err != nil {
		return ControlFlow{}, err
	}
	if err := e.Env.Set(n.Name, v); err != nil {
		return ControlFlow{}, runtimeErr(n, "%s", err)
	}
	return Continue(v), nil
}

/*
File    : lim/eval/eval_controls.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/lim/ast"
	"github.com/akashmaji946/lim/env"
	"github.com/akashmaji946/lim/function"
	"github.com/akashmaji946/lim/value"
)

// evalReturn evaluates its expression and wraps it as a Return unwind,
// propagated by every enclosing Block/Loop until a FunctionCall catches it.
func (e *Evaluator) evalReturn(n *ast.Return) (ControlFlow, error) {
	v, err := e.evalExpr(n.Expr)
	if err != nil {
		return ControlFlow{}, err
	}
	return ReturnSignal(v), nil
}

// evalFunctionDefinition captures the environment frame that is current at
// the moment the literal is evaluated — by reference, never by copy — so
// that later mutations through the closure's own chain stay visible on
// every subsequent call.
func (e *Evaluator) evalFunctionDefinition(n *ast.FunctionDefinition) (ControlFlow, error) {
	fn := &function.Function{
		Params:      n.Params,
		Body:        n.Body,
		CapturedEnv: e.Env,
	}
	return Continue(fn), nil
}

// evalFunctionCall resolves callee from the environment chain — calls are
// always by name, never a computed callee expression — and dispatches
// either to a user-defined closure or a host builtin reached through a
// value.Hole.
func (e *Evaluator) evalFunctionCall(n *ast.FunctionCall) (ControlFlow, error) {
	callee, err := e.Env.Get(n.Callee)
	if err != nil {
		return ControlFlow{}, runtimeErr(n, "Undefined variable: %s", n.Callee)
	}

	switch fn := callee.(type) {
	case *function.Function:
		return e.callFunction(n, fn)
	case *value.Hole:
		return e.callBuiltin(n, fn)
	default:
		return ControlFlow{}, runtimeErr(n, "attempt to call non-function value: %s", n.Callee)
	}
}

func (e *Evaluator) callFunction(n *ast.FunctionCall, fn *function.Function) (ControlFlow, error) {
	if len(n.Args) != len(fn.Params) {
		return ControlFlow{}, runtimeErr(n, "arity mismatch: %s expects %d argument(s), got %d", n.Callee, len(fn.Params), len(n.Args))
	}
	args, err := e.evalNodeList(n.Args)
	if err != nil {
		return ControlFlow{}, err
	}

	callFrame := env.ChildOf(fn.CapturedEnv)
	for i, param := range fn.Params {
		// A call frame is fresh every invocation. If Params repeats a
		// name, the later Define fails and is ignored, so the first
		// argument bound to that name wins.
		_ = callFrame.Define(param, args[i])
	}
	// Bind `self` to the function value itself, giving anonymous function
	// literals a stable recursion handle ("Recursive anonymous
	// functions") without needing a name in the enclosing scope.
	_ = callFrame.Define("self", fn)

	prevEnv := e.Env
	e.Env = callFrame
	cf, err := e.Evaluate(fn.Body)
	e.Env = prevEnv
	if err != nil {
		return ControlFlow{}, err
	}

	switch cf.Kind {
	case ContinueKind, ReturnKind:
		return Continue(cf.Value), nil
	default:
		// Break escaping a function body with no enclosing loop is an
		// error, not a silent no-op.
		return ControlFlow{}, runtimeErr(n, "break outside of an enclosing loop")
	}
}

func (e *Evaluator) callBuiltin(n *ast.FunctionCall, hole *value.Hole) (ControlFlow, error) {
	if e.Builtins == nil {
		return ControlFlow{}, runtimeErr(n, "no builtin registry configured for %s", hole.Name)
	}
	args, err := e.evalNodeList(n.Args)
	if err != nil {
		return ControlFlow{}, err
	}
	result, err := e.Builtins.Call(hole.ID, args)
	if err != nil {
		return ControlFlow{}, runtimeErr(n, "%s", err)
	}
	return Continue(result), nil
}

/*
File    : lim/eval/evaluator.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package eval implements the tree-walking evaluator: it walks an
// *ast.Block produced by the parser and reduces it to a value.Value,
// threading a ControlFlow signal through every recursive step and owning
// the current lexical environment.
package eval

import (
	"fmt"

	"github.com/akashmaji946/lim/ast"
	"github.com/akashmaji946/lim/builtin"
	"github.com/akashmaji946/lim/env"
	"github.com/akashmaji946/lim/parser"
	"github.com/akashmaji946/lim/value"
)

// RuntimeError reports an evaluation failure at the source position of the
// node that raised it: undefined variable, redefinition, arity mismatch,
// non-function call, operator type mismatch, division/modulo by zero,
// index out of range, or a builtin-specific failure.
type RuntimeError struct {
	At      ast.Pos
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("[%d:%d] %s", e.At.Line, e.At.Column, e.Message)
}

func runtimeErr(node ast.Node, format string, a ...interface{}) error {
	return &RuntimeError{At: node.Position(), Message: fmt.Sprintf(format, a...)}
}

// nullValue is the shared Null instance yielded by an empty block, an
// uninitialized `let`, or a no-else conditional that didn't match.
var nullValue value.Value = value.Null{}

// Evaluator walks the AST against a current environment frame. It holds no
// reference to the parser; RuntimeError carries its own position, taken
// directly from the failing node, rather than a stateful "last position".
type Evaluator struct {
	Env      *env.Environment
	Builtins *builtin.Registry
}

// NewEvaluator creates an evaluator with a fresh root environment. If reg
// is non-nil, every builtin it carries is bound into the root frame as a
// value.Hole before any user code runs.
func NewEvaluator(reg *builtin.Registry) *Evaluator {
	root := env.NewRoot()
	if reg != nil {
		reg.BindAll(root)
	}
	return &Evaluator{Env: root, Builtins: reg}
}

// Evaluate dispatches on the concrete type of node, the evaluator's only
// form of polymorphism — a type switch rather than a Visitor/Accept
// indirection.
func (e *Evaluator) Evaluate(node ast.Node) (ControlFlow, error) {
	switch n := node.(type) {
	case *ast.Literal:
		return e.evalLiteral(n)
	case *ast.Identifier:
		return e.evalIdentifier(n)
	case *ast.Tuple:
		return e.evalTuple(n)
	case *ast.Vector:
		return e.evalVector(n)
	case *ast.Index:
		return e.evalIndex(n)
	case *ast.BinaryOp:
		return e.evalBinaryOp(n)
	case *ast.LogicalOp:
		return e.evalLogicalOp(n)
	case *ast.UnaryOp:
		return e.evalUnaryOp(n)
	case *ast.Block:
		return e.evalBlock(n)
	case *ast.Let:
		return e.evalLet(n)
	case *ast.Assignment:
		return e.evalAssignment(n)
	case *ast.Conditional:
		return e.evalConditional(n)
	case *ast.Loop:
		return e.evalLoop(n)
	case *ast.FunctionDefinition:
		return e.evalFunctionDefinition(n)
	case *ast.FunctionCall:
		return e.evalFunctionCall(n)
	case *ast.Return:
		return e.evalReturn(n)
	case *ast.Break:
		return BreakSignal(), nil
	default:
		return ControlFlow{}, fmt.Errorf("eval: unhandled node type %T", node)
	}
}

// evalExpr evaluates node and unwraps its Continue value. Operands,
// arguments, indices, the RHS of let/assignment and loop/conditional
// guards are expression productions that never contain a Return or Break
// node. The operand of `return` is parsed as a statement, so it can yield
// another signal (`return break`, `return { return 1 }`); any non-Continue
// signal is reported as the runtime error "break outside of an enclosing
// loop", whichever signal it was.
func (e *Evaluator) evalExpr(node ast.Node) (value.Value, error) {
	cf, err := e.Evaluate(node)
	if err != nil {
		return nil, err
	}
	if !cf.IsContinue() {
		return nil, runtimeErr(node, "break outside of an enclosing loop")
	}
	return cf.Value, nil
}

// Parse is the driver-facing split form's front half: text -> AST.
func Parse(text string) (*ast.Block, error) {
	return parser.Parse(text)
}

// EvaluateProgram is the driver-facing split form's back half: AST -> value,
// run against a fresh evaluator seeded with reg's builtins.
func EvaluateProgram(root *ast.Block, reg *builtin.Registry) (value.Value, error) {
	ev := NewEvaluator(reg)
	return ev.EvaluateTopLevel(root)
}

// EvaluateTopLevel evaluates node against e's current environment and
// unwraps the resulting ControlFlow into a plain Value. Unlike evalExpr,
// it accepts a bare top-level Return (there is no enclosing call to
// unwind further) but still rejects an escaping Break. REPL sessions call
// this directly on one evaluator so that successive lines share one
// persistent environment; EvaluateProgram, behind the `run` command, calls
// it on a fresh evaluator.
func (e *Evaluator) EvaluateTopLevel(node ast.Node) (value.Value, error) {
	cf, err := e.Evaluate(node)
	if err != nil {
		return nil, err
	}
	return unwrapTopLevel(cf)
}

// Interpret chains lexer -> parser -> evaluator in one call and unwraps the
// resulting ControlFlow into a plain Value: the driver's `interpret(text)`.
func Interpret(text string, reg *builtin.Registry) (value.Value, error) {
	root, err := Parse(text)
	if err != nil {
		return nil, err
	}
	return EvaluateProgram(root, reg)
}

// unwrapTopLevel turns a top-level ControlFlow into its Value: a bare
// Return at the program's outermost level yields its value directly (there
// is no enclosing call to unwind further), and a bare Break at the top
// level is a runtime error since no loop encloses it.
func unwrapTopLevel(cf ControlFlow) (value.Value, error) {
	switch cf.Kind {
	case ContinueKind, ReturnKind:
		return cf.Value, nil
	default:
		return nil, fmt.Errorf("break outside of a loop")
	}
}

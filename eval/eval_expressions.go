/*
File    : lim/eval/eval_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"math"

	"github.com/akashmaji946/lim/ast"
	"github.com/akashmaji946/lim/lexer"
	"github.com/akashmaji946/lim/value"
)

// evalTuple evaluates a fixed-arity heterogeneous grouping left to right.
func (e *Evaluator) evalTuple(n *ast.Tuple) (ControlFlow, error) {
	items, err := e.evalNodeList(n.Items)
	if err != nil {
		return ControlFlow{}, err
	}
	return Continue(value.Tuple{Items: items}), nil
}

// evalVector evaluates a bracketed list constructor left to right.
func (e *Evaluator) evalVector(n *ast.Vector) (ControlFlow, error) {
	items, err := e.evalNodeList(n.Items)
	if err != nil {
		return ControlFlow{}, err
	}
	return Continue(value.Vector{Items: items}), nil
}

func (e *Evaluator) evalNodeList(nodes []ast.Node) ([]value.Value, error) {
	items := make([]value.Value, len(nodes))
	for i, it := range nodes {
		v, err := e.evalExpr(it)
		if err != nil {
			return nil, err
		}
		items[i] = v
	}
	return items, nil
}

// evalIndex evaluates a subscript expression: expr and idx, then requires
// expr to be a Tuple/Vector/String and idx a non-negative in-range integer.
func (e *Evaluator) evalIndex(n *ast.Index) (ControlFlow, error) {
	target, err := e.evalExpr(n.Expr)
	if err != nil {
		return ControlFlow{}, err
	}
	idxVal, err := e.evalExpr(n.Idx)
	if err != nil {
		return ControlFlow{}, err
	}
	idxNum, ok := idxVal.(value.Number)
	if !ok {
		return ControlFlow{}, runtimeErr(n, "index must be a number")
	}
	idx := int(idxNum)
	if float64(idx) != float64(idxNum) || idx < 0 {
		return ControlFlow{}, runtimeErr(n, "index must be a non-negative integer")
	}

	switch t := target.(type) {
	case value.Tuple:
		if idx >= len(t.Items) {
			return ControlFlow{}, runtimeErr(n, "index %d out of range (len %d)", idx, len(t.Items))
		}
		return Continue(t.Items[idx]), nil
	case value.Vector:
		if idx >= len(t.Items) {
			return ControlFlow{}, runtimeErr(n, "index %d out of range (len %d)", idx, len(t.Items))
		}
		return Continue(t.Items[idx]), nil
	case value.String:
		runes := []rune(string(t))
		if idx >= len(runes) {
			return ControlFlow{}, runtimeErr(n, "index %d out of range (len %d)", idx, len(runes))
		}
		return Continue(value.String(string(runes[idx]))), nil
	default:
		return ControlFlow{}, runtimeErr(n, "cannot index a %s", target.Type())
	}
}

// evalBinaryOp evaluates the arithmetic operators (+ - * / %), requiring
// both operands to be Number.
func (e *Evaluator) evalBinaryOp(n *ast.BinaryOp) (ControlFlow, error) {
	left, err := e.evalExpr(n.Left)
	if err != nil {
		return ControlFlow{}, err
	}
	right, err := e.evalExpr(n.Right)
	if err != nil {
		return ControlFlow{}, err
	}
	lnum, ok := left.(value.Number)
	if !ok {
		return ControlFlow{}, runtimeErr(n, "left operand of %q must be a number, got %s", n.Op.Literal, left.Type())
	}
	rnum, ok := right.(value.Number)
	if !ok {
		return ControlFlow{}, runtimeErr(n, "right operand of %q must be a number, got %s", n.Op.Literal, right.Type())
	}

	switch n.Op.Type {
	case lexer.PLUS_OP:
		return Continue(lnum + rnum), nil
	case lexer.MINUS_OP:
		return Continue(lnum - rnum), nil
	case lexer.MUL_OP:
		return Continue(lnum * rnum), nil
	case lexer.DIV_OP:
		if rnum == 0 {
			return ControlFlow{}, runtimeErr(n, "Division by zero")
		}
		return Continue(lnum / rnum), nil
	case lexer.MOD_OP:
		if rnum == 0 {
			return ControlFlow{}, runtimeErr(n, "Modulo by zero")
		}
		return Continue(value.Number(math.Mod(float64(lnum), float64(rnum)))), nil
	default:
		return ControlFlow{}, runtimeErr(n, "unknown binary operator %q", n.Op.Literal)
	}
}

// evalUnaryOp evaluates `+ - !`: `+` is identity on Number, `-` negates a
// Number, `!` negates a Boolean. Any other operand type is a runtime error.
func (e *Evaluator) evalUnaryOp(n *ast.UnaryOp) (ControlFlow, error) {
	operand, err := e.evalExpr(n.Operand)
	if err != nil {
		return ControlFlow{}, err
	}
	switch n.Op.Type {
	case lexer.PLUS_OP:
		num, ok := operand.(value.Number)
		if !ok {
			return ControlFlow{}, runtimeErr(n, "unary '+' requires a number, got %s", operand.Type())
		}
		return Continue(num), nil
	case lexer.MINUS_OP:
		num, ok := operand.(value.Number)
		if !ok {
			return ControlFlow{}, runtimeErr(n, "unary '-' requires a number, got %s", operand.Type())
		}
		return Continue(-num), nil
	case lexer.NOT_OP:
		b, ok := operand.(value.Boolean)
		if !ok {
			return ControlFlow{}, runtimeErr(n, "unary '!' requires a boolean, got %s", operand.Type())
		}
		return Continue(!b), nil
	default:
		return ControlFlow{}, runtimeErr(n, "unknown unary operator %q", n.Op.Literal)
	}
}

// evalLogicalOp covers short-circuit `&&`/`||`, equality `==`/`!=`, and
// numeric-after-coercion relational comparisons.
func (e *Evaluator) evalLogicalOp(n *ast.LogicalOp) (ControlFlow, error) {
	switch n.Op.Type {
	case lexer.AND_OP:
		left, err := e.evalExpr(n.Left)
		if err != nil {
			return ControlFlow{}, err
		}
		if !value.Truthy(left) {
			return Continue(value.Boolean(false)), nil
		}
		right, err := e.evalExpr(n.Right)
		if err != nil {
			return ControlFlow{}, err
		}
		return Continue(value.Boolean(value.Truthy(right))), nil

	case lexer.OR_OP:
		left, err := e.evalExpr(n.Left)
		if err != nil {
			return ControlFlow{}, err
		}
		if value.Truthy(left) {
			return Continue(value.Boolean(true)), nil
		}
		right, err := e.evalExpr(n.Right)
		if err != nil {
			return ControlFlow{}, err
		}
		return Continue(value.Boolean(value.Truthy(right))), nil

	case lexer.EQ_OP, lexer.NE_OP:
		left, err := e.evalExpr(n.Left)
		if err != nil {
			return ControlFlow{}, err
		}
		right, err := e.evalExpr(n.Right)
		if err != nil {
			return ControlFlow{}, err
		}
		eq, err := value.Equal(left, right)
		if err != nil {
			return ControlFlow{}, runtimeErr(n, "%s", err)
		}
		if n.Op.Type == lexer.NE_OP {
			eq = !eq
		}
		return Continue(value.Boolean(eq)), nil

	case lexer.GT_OP, lexer.LT_OP, lexer.GE_OP, lexer.LE_OP:
		left, err := e.evalExpr(n.Left)
		if err != nil {
			return ControlFlow{}, err
		}
		right, err := e.evalExpr(n.Right)
		if err != nil {
			return ControlFlow{}, err
		}
		lnum, ok := value.ToNumber(left)
		if !ok {
			return ControlFlow{}, runtimeErr(n, "left operand of %q cannot be coerced to a number", n.Op.Literal)
		}
		rnum, ok := value.ToNumber(right)
		if !ok {
			return ControlFlow{}, runtimeErr(n, "right operand of %q cannot be coerced to a number", n.Op.Literal)
		}
		var result bool
		switch n.Op.Type {
		case lexer.GT_OP:
			result = lnum > rnum
		case lexer.LT_OP:
			result = lnum < rnum
		case lexer.GE_OP:
			result = lnum >= rnum
		case lexer.LE_OP:
			result = lnum <= rnum
		}
		return Continue(value.Boolean(result)), nil

	default:
		return ControlFlow{}, runtimeErr(n, "unknown logical operator %q", n.Op.Literal)
	}
}

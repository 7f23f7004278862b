/*
File    : lim/parser/parser_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"testing"

	"github.com/akashmaji946/lim/ast"
	"github.com/akashmaji946/lim/value"
	"github.com/stretchr/testify/require"
)

func TestParseArithmeticPrecedence(t *testing.T) {
	root, err := Parse("2 + 7 * 4")
	require.NoError(t, err)
	require.Len(t, root.Stmts, 1)
	bin, ok := root.Stmts[0].(*ast.BinaryOp)
	require.True(t, ok)
	require.Equal(t, "+", string(bin.Op.Type))
	rightBin, ok := bin.Right.(*ast.BinaryOp)
	require.True(t, ok)
	require.Equal(t, "*", string(rightBin.Op.Type))
}

func TestParseParenReducesToSingleExpr(t *testing.T) {
	root, err := Parse("(5)")
	require.NoError(t, err)
	lit, ok := root.Stmts[0].(*ast.Literal)
	require.True(t, ok)
	require.Equal(t, value.Number(5), lit.Value)
}

func TestParseParenTwoItemsIsTuple(t *testing.T) {
	root, err := Parse("(1, 2)")
	require.NoError(t, err)
	tup, ok := root.Stmts[0].(*ast.Tuple)
	require.True(t, ok)
	require.Len(t, tup.Items, 2)
}

func TestParseVectorLiteral(t *testing.T) {
	root, err := Parse("[1, 2, 3]")
	require.NoError(t, err)
	vec, ok := root.Stmts[0].(*ast.Vector)
	require.True(t, ok)
	require.Len(t, vec.Items, 3)
}

func TestParseLetWithAssignment(t *testing.T) {
	root, err := Parse("let x = 5;")
	require.NoError(t, err)
	letNode, ok := root.Stmts[0].(*ast.Let)
	require.True(t, ok)
	assign, ok := letNode.Binding.(*ast.Assignment)
	require.True(t, ok)
	require.Equal(t, "x", assign.Name)
}

func TestParseLetBareIdentifier(t *testing.T) {
	root, err := Parse("let x;")
	require.NoError(t, err)
	letNode, ok := root.Stmts[0].(*ast.Let)
	require.True(t, ok)
	_, ok = letNode.Binding.(*ast.Identifier)
	require.True(t, ok)
}

func TestParseMissingSemicolonIsError(t *testing.T) {
	_, err := Parse("let x = 5 let y = 6;")
	require.Error(t, err)
}

func TestParseLastStatementMayOmitSemicolon(t *testing.T) {
	root, err := Parse("{ let x = 5; x }")
	require.NoError(t, err)
	block, ok := root.Stmts[0].(*ast.Block)
	require.True(t, ok)
	require.Len(t, block.Stmts, 2)
}

func TestParseAssignmentRightAssociative(t *testing.T) {
	root, err := Parse("a = b = 5")
	require.NoError(t, err)
	outer, ok := root.Stmts[0].(*ast.Assignment)
	require.True(t, ok)
	require.Equal(t, "a", outer.Name)
	inner, ok := outer.Value.(*ast.Assignment)
	require.True(t, ok)
	require.Equal(t, "b", inner.Name)
}

func TestParseAssignmentToNonIdentifierFails(t *testing.T) {
	_, err := Parse("1 + 1 = 5")
	require.Error(t, err)
}

func TestParseTernary(t *testing.T) {
	root, err := Parse("a ? 1 : 2")
	require.NoError(t, err)
	cond, ok := root.Stmts[0].(*ast.Conditional)
	require.True(t, ok)
	require.NotNil(t, cond.Else)
}

func TestParseFunctionLiteralAndCall(t *testing.T) {
	root, err := Parse("let add; add = fn(a, b) { a + b }; add(3, 4)")
	require.NoError(t, err)
	require.Len(t, root.Stmts, 3)
	call, ok := root.Stmts[2].(*ast.FunctionCall)
	require.True(t, ok)
	require.Equal(t, "add", call.Callee)
	require.Len(t, call.Args, 2)
}

func TestParseIndexExpression(t *testing.T) {
	root, err := Parse("v[0]")
	require.NoError(t, err)
	idx, ok := root.Stmts[0].(*ast.Index)
	require.True(t, ok)
	require.NotNil(t, idx.Idx)
}

func TestParseIfElse(t *testing.T) {
	root, err := Parse("if a { 1 } else { 2 }")
	require.NoError(t, err)
	cond, ok := root.Stmts[0].(*ast.Conditional)
	require.True(t, ok)
	require.NotNil(t, cond.Else)
}

func TestParseWhileLoop(t *testing.T) {
	root, err := Parse("let i = 0; while i < 3 { i = i + 1 }; i")
	require.NoError(t, err)
	loop, ok := root.Stmts[1].(*ast.Loop)
	require.True(t, ok)
	require.NotNil(t, loop.Body)
}

func TestParseUnexpectedCallExpressionIsRejected(t *testing.T) {
	_, err := Parse("(fn(x){x})(1)")
	require.Error(t, err)
}

/*
File    : lim/ast/node.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package ast defines the Lim abstract syntax tree. Node variants are a
// sum type: the evaluator operates by Go type switch over the concrete
// pointer types defined here, never through a visitor/Accept mechanism,
// and the serializer hands the tree to encoding/gob with every variant
// registered.
package ast

import (
	"github.com/akashmaji946/lim/lexer"
	"github.com/akashmaji946/lim/value"
)

// Pos is the source position a node was parsed from, carried along for
// runtime diagnostics.
type Pos struct {
	Line   int
	Column int
}

// Node is implemented by every AST variant. It only exposes source
// position; the evaluator recovers the variant by type switch.
type Node interface {
	Position() Pos
}

type Meta struct {
	At Pos
}

func (m Meta) Position() Pos { return m.At }

// MakeBase builds the embedded Meta value from a source position.
func MakeBase(at Pos) Meta { return Meta{At: at} }

// Literal embeds a primitive value produced directly by the parser
// (numbers, strings, booleans, null).
type Literal struct {
	Meta
	Value value.Value
}

// Identifier is a reference to a bound name.
type Identifier struct {
	Meta
	Name string
}

// Tuple is a fixed-arity heterogeneous grouping: `(a, b, c)`.
type Tuple struct {
	Meta
	Items []Node
}

// Vector is a list constructor: `[a, b, c]`.
type Vector struct {
	Meta
	Items []Node
}

// Index is a subscript expression: `expr[idx]`.
type Index struct {
	Meta
	Expr Node
	Idx  Node
}

// BinaryOp is an arithmetic expression: `+ - * / %`.
type BinaryOp struct {
	Meta
	Op    lexer.Token
	Left  Node
	Right Node
}

// LogicalOp covers comparison and short-circuit boolean operators:
// `&& || == != > < >= <=`.
type LogicalOp struct {
	Meta
	Op    lexer.Token
	Left  Node
	Right Node
}

// UnaryOp is a prefix expression: `+ - !`.
type UnaryOp struct {
	Meta
	Op      lexer.Token
	Operand Node
}

// Block is a brace-delimited sequence of statements; its value is the
// last statement's value unless short-circuited by return/break.
type Block struct {
	Meta
	Stmts []Node
}

// Let introduces a new name into the innermost frame. Binding is either
// an *Identifier (bind to null) or an *Assignment (bind to the
// evaluated value).
type Let struct {
	Meta
	Binding Node
}

// Assignment mutates an existing binding, resolved by walking the
// environment chain.
type Assignment struct {
	Meta
	Name  string
	Value Node
}

// Conditional covers both `if/else` statements and the `? :` ternary.
type Conditional struct {
	Meta
	Cond Node
	Then Node
	Else Node // nil if no else/else-branch
}

// Loop is a `while`-style loop.
type Loop struct {
	Meta
	Cond Node
	Body Node
}

// FunctionDefinition is an anonymous function literal; evaluating it
// yields a closure value. It carries no name — naming happens at the
// surrounding Let/Assignment.
type FunctionDefinition struct {
	Meta
	Params []string
	Body   Node
}

// FunctionCall is a by-name call: the callee is always resolved from
// the current environment, never a computed expression.
type FunctionCall struct {
	Meta
	Callee string
	Args   []Node
}

// Return unwinds the current call frame with a value.
type Return struct {
	Meta
	Expr Node
}

// Break unwinds the current loop.
type Break struct {
	Meta
}

// NewPos is a small convenience constructor used by the parser.
func NewPos(line, column int) Pos { return Pos{Line: line, Column: column} }

/*
File    : lim/parser/parser_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"fmt"
	"strconv"

	"github.com/akashmaji946/lim/ast"
	"github.com/akashmaji946/lim/lexer"
	"github.com/akashmaji946/lim/value"
)

// parseExpression implements `expression := function_literal | assignment_or_ternary`.
func (p *Parser) parseExpression() (ast.Node, error) {
	if p.peekType() == lexer.FN_KEY {
		return p.parseFunctionLiteral()
	}
	return p.parseAssignmentOrTernary()
}

// parseFunctionLiteral implements `'fn' '(' ident_list ')' statement`.
func (p *Parser) parseFunctionLiteral() (ast.Node, error) {
	at := p.pos_()
	p.advance() // 'fn'
	if _, err := p.expect(lexer.LEFT_PAREN, "to start a parameter list"); err != nil {
		return nil, err
	}
	var params []string
	for p.peekType() != lexer.RIGHT_PAREN {
		tok := p.current()
		if tok.Type != lexer.IDENTIFIER {
			return nil, &ParseError{Token: tok, Message: "function parameter must be an identifier"}
		}
		p.advance()
		params = append(params, tok.Literal)
		if p.peekType() == lexer.COMMA {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(lexer.RIGHT_PAREN, "to close a parameter list"); err != nil {
		return nil, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return &ast.FunctionDefinition{Meta: ast.MakeBase(at), Params: params, Body: body}, nil
}

// parseAssignmentOrTernary implements:
// `assignment_or_ternary := logical_or ( '=' expression | '?' expression ':' expression )?`
func (p *Parser) parseAssignmentOrTernary() (ast.Node, error) {
	at := p.pos_()
	left, err := p.parseLogicalOr()
	if err != nil {
		return nil, err
	}

	switch p.peekType() {
	case lexer.ASSIGN_OP:
		ident, ok := left.(*ast.Identifier)
		if !ok {
			return nil, &ParseError{Token: p.current(), Message: "left-hand side of '=' must be an identifier"}
		}
		p.advance()
		rhs, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return &ast.Assignment{Meta: ast.MakeBase(at), Name: ident.Name, Value: rhs}, nil
	case lexer.QUESTION:
		p.advance()
		thenExpr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.COLON, "in ternary expression"); err != nil {
			return nil, err
		}
		elseExpr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return &ast.Conditional{Meta: ast.MakeBase(at), Cond: left, Then: thenExpr, Else: elseExpr}, nil
	default:
		return left, nil
	}
}

func (p *Parser) parseLogicalOr() (ast.Node, error) {
	left, err := p.parseLogicalAnd()
	if err != nil {
		return nil, err
	}
	for p.peekType() == lexer.OR_OP {
		op := p.advance()
		right, err := p.parseLogicalAnd()
		if err != nil {
			return nil, err
		}
		left = &ast.LogicalOp{Meta: ast.MakeBase(ast.NewPos(op.Line, op.Column)), Op: op, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseLogicalAnd() (ast.Node, error) {
	left, err := p.parseEquality()
	if err != nil {
		return nil, err
	}
	for p.peekType() == lexer.AND_OP {
		op := p.advance()
		right, err := p.parseEquality()
		if err != nil {
			return nil, err
		}
		left = &ast.LogicalOp{Meta: ast.MakeBase(ast.NewPos(op.Line, op.Column)), Op: op, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseEquality() (ast.Node, error) {
	left, err := p.parseRelational()
	if err != nil {
		return nil, err
	}
	for p.peekType() == lexer.EQ_OP || p.peekType() == lexer.NE_OP {
		op := p.advance()
		right, err := p.parseRelational()
		if err != nil {
			return nil, err
		}
		left = &ast.LogicalOp{Meta: ast.MakeBase(ast.NewPos(op.Line, op.Column)), Op: op, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseRelational() (ast.Node, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	for {
		switch p.peekType() {
		case lexer.GT_OP, lexer.LT_OP, lexer.GE_OP, lexer.LE_OP:
			op := p.advance()
			right, err := p.parseAdditive()
			if err != nil {
				return nil, err
			}
			left = &ast.LogicalOp{Meta: ast.MakeBase(ast.NewPos(op.Line, op.Column)), Op: op, Left: left, Right: right}
		default:
			return left, nil
		}
	}
}

func (p *Parser) parseAdditive() (ast.Node, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for p.peekType() == lexer.PLUS_OP || p.peekType() == lexer.MINUS_OP {
		op := p.advance()
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOp{Meta: ast.MakeBase(ast.NewPos(op.Line, op.Column)), Op: op, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseMultiplicative() (ast.Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.peekType() == lexer.MUL_OP || p.peekType() == lexer.DIV_OP || p.peekType() == lexer.MOD_OP {
		op := p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOp{Meta: ast.MakeBase(ast.NewPos(op.Line, op.Column)), Op: op, Left: left, Right: right}
	}
	return left, nil
}

// parseUnary implements `('+' | '-' | '!') unary | postfix`.
func (p *Parser) parseUnary() (ast.Node, error) {
	switch p.peekType() {
	case lexer.PLUS_OP, lexer.MINUS_OP, lexer.NOT_OP:
		op := p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOp{Meta: ast.MakeBase(ast.NewPos(op.Line, op.Column)), Op: op, Operand: operand}, nil
	default:
		return p.parsePostfix()
	}
}

// parsePostfix implements `primary ('[' expression ']')*`.
func (p *Parser) parsePostfix() (ast.Node, error) {
	at := p.pos_()
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for p.peekType() == lexer.LEFT_BRACKET {
		p.advance()
		idx, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RIGHT_BRACKET, "to close an index expression"); err != nil {
			return nil, err
		}
		expr = &ast.Index{Meta: ast.MakeBase(at), Expr: expr, Idx: idx}
	}
	return expr, nil
}

// parsePrimary implements the primary production:
//
//	ident ( '(' arg_list ')' )?
//	| number | string | true | false | null
//	| '(' expr_list ')'
//	| '[' expr_list ']'
func (p *Parser) parsePrimary() (ast.Node, error) {
	at := p.pos_()
	tok := p.current()

	switch tok.Type {
	case lexer.IDENTIFIER:
		p.advance()
		if p.peekType() == lexer.LEFT_PAREN {
			args, err := p.parseArgList()
			if err != nil {
				return nil, err
			}
			return &ast.FunctionCall{Meta: ast.MakeBase(at), Callee: tok.Literal, Args: args}, nil
		}
		return &ast.Identifier{Meta: ast.MakeBase(at), Name: tok.Literal}, nil

	case lexer.NUMBER_LIT:
		p.advance()
		n, err := parseNumberLiteral(tok.Literal)
		if err != nil {
			return nil, &ParseError{Token: tok, Message: err.Error()}
		}
		return &ast.Literal{Meta: ast.MakeBase(at), Value: n}, nil

	case lexer.STRING_LIT:
		p.advance()
		return &ast.Literal{Meta: ast.MakeBase(at), Value: value.String(tok.Literal)}, nil

	case lexer.TRUE_KEY:
		p.advance()
		return &ast.Literal{Meta: ast.MakeBase(at), Value: value.Boolean(true)}, nil

	case lexer.FALSE_KEY:
		p.advance()
		return &ast.Literal{Meta: ast.MakeBase(at), Value: value.Boolean(false)}, nil

	case lexer.NULL_KEY:
		p.advance()
		return &ast.Literal{Meta: ast.MakeBase(at), Value: value.Null{}}, nil

	case lexer.LEFT_PAREN:
		p.advance()
		items, err := p.parseExprListUntil(lexer.RIGHT_PAREN)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RIGHT_PAREN, "to close a parenthesized expression"); err != nil {
			return nil, err
		}
		if len(items) == 1 {
			return items[0], nil
		}
		return &ast.Tuple{Meta: ast.MakeBase(at), Items: items}, nil

	case lexer.LEFT_BRACKET:
		p.advance()
		items, err := p.parseExprListUntil(lexer.RIGHT_BRACKET)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RIGHT_BRACKET, "to close a vector literal"); err != nil {
			return nil, err
		}
		return &ast.Vector{Meta: ast.MakeBase(at), Items: items}, nil

	default:
		return nil, &ParseError{Token: tok, Message: "unexpected token in expression"}
	}
}

func (p *Parser) parseArgList() ([]ast.Node, error) {
	p.advance() // '('
	args, err := p.parseExprListUntil(lexer.RIGHT_PAREN)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RIGHT_PAREN, "to close an argument list"); err != nil {
		return nil, err
	}
	return args, nil
}

func (p *Parser) parseExprListUntil(closer lexer.TokenType) ([]ast.Node, error) {
	var items []ast.Node
	if p.peekType() == closer {
		return items, nil
	}
	for {
		item, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		if p.peekType() == lexer.COMMA {
			p.advance()
			continue
		}
		return items, nil
	}
}

func parseNumberLiteral(text string) (value.Number, error) {
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed number literal %q", text)
	}
	return value.Number(f), nil
}

/*
File    : lim/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package parser implements Lim's recursive-descent, precedence-climbing
// parser: a token sequence in, a single *ast.Block root out.
package parser

import (
	"fmt"

	"github.com/akashmaji946/lim/ast"
	"github.com/akashmaji946/lim/lexer"
)

// ParseError carries a human-readable message and the offending token.
type ParseError struct {
	Token   lexer.Token
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("[%d:%d] %s (at %q)", e.Token.Line, e.Token.Column, e.Message, e.Token.Literal)
}

// Parser walks a flat token slice with one token of lookahead.
type Parser struct {
	tokens []lexer.Token
	pos    int
}

// NewParser tokenizes src and returns a Parser ready to call Parse.
func NewParser(src string) (*Parser, error) {
	tokens, err := lexer.Tokenize(src)
	if err != nil {
		return nil, err
	}
	return &Parser{tokens: tokens}, nil
}

// NewParserFromTokens builds a Parser directly from an already-scanned
// token sequence, bypassing the lexer. The sequence must end with an EOF
// token.
func NewParserFromTokens(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

func (p *Parser) current() lexer.Token {
	if p.pos >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1] // EOF
	}
	return p.tokens[p.pos]
}

func (p *Parser) peekType() lexer.TokenType {
	return p.current().Type
}

func (p *Parser) advance() lexer.Token {
	tok := p.current()
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return tok
}

func (p *Parser) expect(t lexer.TokenType, context string) (lexer.Token, error) {
	if p.peekType() != t {
		return lexer.Token{}, &ParseError{Token: p.current(), Message: fmt.Sprintf("expected %s %s", t, context)}
	}
	return p.advance(), nil
}

func (p *Parser) pos_() ast.Pos {
	tok := p.current()
	return ast.NewPos(tok.Line, tok.Column)
}

// Parse parses the entire token stream into a single Block root,
// terminated by EOF.
func Parse(src string) (*ast.Block, error) {
	par, err := NewParser(src)
	if err != nil {
		return nil, err
	}
	return par.ParseProgram()
}

// ParseProgram parses `statement*` up to EOF.
func (p *Parser) ParseProgram() (*ast.Block, error) {
	at := p.pos_()
	stmts, err := p.parseStatementList(lexer.EOF_TYPE)
	if err != nil {
		return nil, err
	}
	return &ast.Block{Meta: ast.MakeBase(at), Stmts: stmts}, nil
}

// parseStatementList parses statements until the current token is
// `closer` (RIGHT_BRACE for a block body, EOF for the program), handling
// the ';'-termination contract: every statement but the last needs a
// trailing ';'; the last may omit it when followed directly by `closer`.
func (p *Parser) parseStatementList(closer lexer.TokenType) ([]ast.Node, error) {
	var stmts []ast.Node
	for {
		if p.peekType() == closer || p.peekType() == lexer.EOF_TYPE {
			return stmts, nil
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)

		switch p.peekType() {
		case lexer.SEMICOLON:
			p.advance()
			continue
		case closer, lexer.EOF_TYPE:
			return stmts, nil
		default:
			return nil, &ParseError{Token: p.current(), Message: "expected ';' between statements"}
		}
	}
}

// parseBlock parses `'{' statement* '}'`.
func (p *Parser) parseBlock() (*ast.Block, error) {
	at := p.pos_()
	if _, err := p.expect(lexer.LEFT_BRACE, "to start a block"); err != nil {
		return nil, err
	}
	stmts, err := p.parseStatementList(lexer.RIGHT_BRACE)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RIGHT_BRACE, "to close a block"); err != nil {
		return nil, err
	}
	return &ast.Block{Meta: ast.MakeBase(at), Stmts: stmts}, nil
}

// parseStatement dispatches on the current token's keyword, falling
// back to a bare expression statement.
func (p *Parser) parseStatement() (ast.Node, error) {
	switch p.peekType() {
	case lexer.IF_KEY:
		return p.parseIf()
	case lexer.WHILE_KEY:
		return p.parseWhile()
	case lexer.BREAK_KEY:
		at := p.pos_()
		p.advance()
		return &ast.Break{Meta: ast.MakeBase(at)}, nil
	case lexer.RETURN_KEY:
		return p.parseReturn()
	case lexer.LET_KEY:
		return p.parseLet()
	case lexer.LEFT_BRACE:
		return p.parseBlock()
	default:
		return p.parseExpression()
	}
}

func (p *Parser) parseIf() (ast.Node, error) {
	at := p.pos_()
	p.advance() // 'if'
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	then, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	var elseBranch ast.Node
	if p.peekType() == lexer.ELSE_KEY {
		p.advance()
		elseBranch, err = p.parseStatement()
		if err != nil {
			return nil, err
		}
	}
	return &ast.Conditional{Meta: ast.MakeBase(at), Cond: cond, Then: then, Else: elseBranch}, nil
}

func (p *Parser) parseWhile() (ast.Node, error) {
	at := p.pos_()
	p.advance() // 'while'
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return &ast.Loop{Meta: ast.MakeBase(at), Cond: cond, Body: body}, nil
}

func (p *Parser) parseReturn() (ast.Node, error) {
	at := p.pos_()
	p.advance() // 'return'
	inner, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return &ast.Return{Meta: ast.MakeBase(at), Expr: inner}, nil
}

func (p *Parser) parseLet() (ast.Node, error) {
	at := p.pos_()
	p.advance() // 'let'
	binding, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	switch binding.(type) {
	case *ast.Identifier, *ast.Assignment:
		return &ast.Let{Meta: ast.MakeBase(at), Binding: binding}, nil
	default:
		return nil, &ParseError{Token: p.current(), Message: "let binding must be an identifier or an assignment"}
	}
}

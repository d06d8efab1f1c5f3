// Package parser implements a Pratt (operator-precedence) recursive-descent
// parser: a precedence table plus per-token-type prefix/infix parse
// functions.
package parser

import (
	"fmt"

	"github.com/lumascript/luma/internal/ast"
	"github.com/lumascript/luma/internal/lexer"
)

// Precedence levels, lowest to highest.
const (
	_ int = iota
	LOWEST
	PREC_OR
	PREC_AND
	PREC_COMPARE // < > <= >= == ~=
	PREC_CONCAT  // ..
	PREC_SUM     // + -
	PREC_PRODUCT // * / // %
	PREC_UNARY   // not - #
	PREC_POWER   // ^
	PREC_CALL    // f(...)
	PREC_INDEX   // a[k] a.k
)

var precedences = map[lexer.TokenType]int{
	lexer.OR:       PREC_OR,
	lexer.AND:      PREC_AND,
	lexer.LT:       PREC_COMPARE,
	lexer.GT:       PREC_COMPARE,
	lexer.LE:       PREC_COMPARE,
	lexer.GE:       PREC_COMPARE,
	lexer.EQ:       PREC_COMPARE,
	lexer.NEQ:      PREC_COMPARE,
	lexer.CONCAT:   PREC_CONCAT,
	lexer.PLUS:     PREC_SUM,
	lexer.MINUS:    PREC_SUM,
	lexer.STAR:     PREC_PRODUCT,
	lexer.SLASH:    PREC_PRODUCT,
	lexer.SLASH2:   PREC_PRODUCT,
	lexer.PERCENT:  PREC_PRODUCT,
	lexer.CARET:    PREC_POWER,
	lexer.LPAREN:   PREC_CALL,
	lexer.LBRACE:   PREC_CALL,
	lexer.STRING:   PREC_CALL,
	lexer.LBRACKET: PREC_INDEX,
	lexer.DOT:      PREC_INDEX,
}

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

// Parser consumes a token stream from the lexer and builds an AST.
type Parser struct {
	l *lexer.Lexer

	curToken  lexer.Token
	peekToken lexer.Token

	errors []string

	prefixFns map[lexer.TokenType]prefixParseFn
	infixFns  map[lexer.TokenType]infixParseFn
}

// New creates a Parser reading tokens from l.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}

	p.prefixFns = map[lexer.TokenType]prefixParseFn{
		lexer.NUMBER:   p.parseNumberLiteral,
		lexer.STRING:   p.parseStringLiteral,
		lexer.TRUE:     p.parseBooleanLiteral,
		lexer.FALSE:    p.parseBooleanLiteral,
		lexer.NIL:      p.parseNilLiteral,
		lexer.NAME:     p.parseName,
		lexer.LPAREN:   p.parseGroupedExpression,
		lexer.NOT:      p.parseUnaryExpression,
		lexer.MINUS:    p.parseUnaryExpression,
		lexer.HASH:     p.parseUnaryExpression,
		lexer.FUNCTION: p.parseFunctionLiteral,
		lexer.LBRACE:   p.parseTableConstructor,
	}

	p.infixFns = map[lexer.TokenType]infixParseFn{
		lexer.PLUS:     p.parseBinaryExpression,
		lexer.MINUS:    p.parseBinaryExpression,
		lexer.STAR:     p.parseBinaryExpression,
		lexer.SLASH:    p.parseBinaryExpression,
		lexer.SLASH2:   p.parseBinaryExpression,
		lexer.PERCENT:  p.parseBinaryExpression,
		lexer.CARET:    p.parseBinaryExpressionRightAssoc,
		lexer.CONCAT:   p.parseBinaryExpressionRightAssoc,
		lexer.EQ:       p.parseBinaryExpression,
		lexer.NEQ:      p.parseBinaryExpression,
		lexer.LT:       p.parseBinaryExpression,
		lexer.GT:       p.parseBinaryExpression,
		lexer.LE:       p.parseBinaryExpression,
		lexer.GE:       p.parseBinaryExpression,
		lexer.AND:      p.parseBinaryExpression,
		lexer.OR:       p.parseBinaryExpression,
		lexer.LPAREN:   p.parseCallExpression,
		lexer.LBRACE:   p.parseTableCallExpression,
		lexer.STRING:   p.parseStringCallExpression,
		lexer.LBRACKET: p.parseIndexExpression,
		lexer.DOT:      p.parseDotExpression,
	}

	// Prime curToken/peekToken.
	p.nextToken()
	p.nextToken()
	return p
}

// Errors returns accumulated parse errors, in the order encountered.
func (p *Parser) Errors() []string { return p.errors }

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) curTokenIs(tt lexer.TokenType) bool  { return p.curToken.Type == tt }
func (p *Parser) peekTokenIs(tt lexer.TokenType) bool { return p.peekToken.Type == tt }

func (p *Parser) expectPeek(tt lexer.TokenType) bool {
	if p.peekTokenIs(tt) {
		p.nextToken()
		return true
	}
	p.peekError(tt)
	return false
}

func (p *Parser) peekError(tt lexer.TokenType) {
	p.errors = append(p.errors, fmt.Sprintf("line %d: expected next token to be %s, got %s instead",
		p.peekToken.Line, tt, p.peekToken.Type))
}

func (p *Parser) errorf(format string, args ...interface{}) {
	p.errors = append(p.errors, fmt.Sprintf("line %d: %s", p.curToken.Line, fmt.Sprintf(format, args...)))
}

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peekToken.Type]; ok {
		return prec
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if prec, ok := precedences[p.curToken.Type]; ok {
		return prec
	}
	return LOWEST
}

// ParseProgram parses the whole input into a top-level Block.
func (p *Parser) ParseProgram() *ast.Block {
	block := &ast.Block{}
	for !p.curTokenIs(lexer.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.nextToken()
	}
	return block
}

// parseBlockUntil parses statements until one of the given terminator token
// types is seen (without consuming it).
func (p *Parser) parseBlockUntil(terminators ...lexer.TokenType) *ast.Block {
	block := &ast.Block{}
	for !p.curTokenIs(lexer.EOF) && !p.atAny(terminators) {
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.nextToken()
	}
	return block
}

func (p *Parser) atAny(types []lexer.TokenType) bool {
	for _, tt := range types {
		if p.curTokenIs(tt) {
			return true
		}
	}
	return false
}

// parseExpression is the Pratt-parsing core: parse a prefix expression,
// then repeatedly fold in infix operators while their precedence exceeds
// minPrecedence.
func (p *Parser) parseExpression(minPrecedence int) ast.Expression {
	prefix, ok := p.prefixFns[p.curToken.Type]
	if !ok {
		p.errorf("no prefix parse function for %s", p.curToken.Type)
		return nil
	}
	left := prefix()

	for !p.peekTokenIs(lexer.SEMI) && minPrecedence < p.peekPrecedence() {
		infix, ok := p.infixFns[p.peekToken.Type]
		if !ok {
			return left
		}
		p.nextToken()
		left = infix(left)
	}
	return left
}

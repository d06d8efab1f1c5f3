// Package ast defines the abstract syntax tree produced by the parser and
// walked by the interpreter's evaluator and statement executor.
package ast

import (
	"bytes"

	"github.com/lumascript/luma/internal/lexer"
)

// Node is the base interface implemented by every AST node.
type Node interface {
	// TokenLiteral returns the literal text of the node's leading token.
	TokenLiteral() string
	// String renders the node for debugging (--dump-ast) and tests.
	String() string
	// Line returns the source line of the node's leading token.
	Line() int
}

// Expression is any node that evaluates to a Value.
type Expression interface {
	Node
	expressionNode()
}

// Statement is any node executed for effect.
type Statement interface {
	Node
	statementNode()
}

// Block is an ordered sequence of statements executed in one nested scope.
type Block struct {
	Statements []Statement
}

func (b *Block) TokenLiteral() string {
	if len(b.Statements) > 0 {
		return b.Statements[0].TokenLiteral()
	}
	return ""
}

func (b *Block) Line() int {
	if len(b.Statements) > 0 {
		return b.Statements[0].Line()
	}
	return 0
}

func (b *Block) String() string {
	var out bytes.Buffer
	for _, s := range b.Statements {
		out.WriteString(s.String())
		out.WriteString("\n")
	}
	return out.String()
}

// Name is a bare identifier reference (a variable).
type Name struct {
	Token lexer.Token
	Value string
}

func (n *Name) expressionNode()      {}
func (n *Name) TokenLiteral() string { return n.Token.Literal }
func (n *Name) Line() int            { return n.Token.Line }
func (n *Name) String() string       { return n.Value }

// NilLiteral is the `nil` literal.
type NilLiteral struct {
	Token lexer.Token
}

func (n *NilLiteral) expressionNode()      {}
func (n *NilLiteral) TokenLiteral() string { return n.Token.Literal }
func (n *NilLiteral) Line() int            { return n.Token.Line }
func (n *NilLiteral) String() string       { return "nil" }

// BooleanLiteral is `true` or `false`.
type BooleanLiteral struct {
	Token lexer.Token
	Value bool
}

func (b *BooleanLiteral) expressionNode()      {}
func (b *BooleanLiteral) TokenLiteral() string { return b.Token.Literal }
func (b *BooleanLiteral) Line() int            { return b.Token.Line }
func (b *BooleanLiteral) String() string       { return b.Token.Literal }

// NumberLiteral is a numeric literal, already parsed to float64.
type NumberLiteral struct {
	Token lexer.Token
	Value float64
}

func (n *NumberLiteral) expressionNode()      {}
func (n *NumberLiteral) TokenLiteral() string { return n.Token.Literal }
func (n *NumberLiteral) Line() int            { return n.Token.Line }
func (n *NumberLiteral) String() string       { return n.Token.Literal }

// StringLiteral is a quoted or long-bracketed string literal.
type StringLiteral struct {
	Token lexer.Token
	Value string
}

func (s *StringLiteral) expressionNode()      {}
func (s *StringLiteral) TokenLiteral() string { return s.Token.Literal }
func (s *StringLiteral) Line() int            { return s.Token.Line }
func (s *StringLiteral) String() string       { return "\"" + s.Value + "\"" }

// GroupedExpression is a parenthesized expression; it exists as a distinct
// node (rather than being folded away) because grouping collapses a
// multi-value result the way any other operand read does, whereas a bare
// call expression in tail position does not collapse.
type GroupedExpression struct {
	Token lexer.Token // '('
	Inner Expression
}

func (g *GroupedExpression) expressionNode()      {}
func (g *GroupedExpression) TokenLiteral() string { return g.Token.Literal }
func (g *GroupedExpression) Line() int            { return g.Token.Line }
func (g *GroupedExpression) String() string       { return "(" + g.Inner.String() + ")" }

// TableIndex is `prefix[key]` or `prefix.name` (desugared to a string key).
type TableIndex struct {
	Token  lexer.Token // '[' or '.'
	Prefix Expression
	Key    Expression
}

func (t *TableIndex) expressionNode()      {}
func (t *TableIndex) TokenLiteral() string { return t.Token.Literal }
func (t *TableIndex) Line() int            { return t.Token.Line }
func (t *TableIndex) String() string       { return t.Prefix.String() + "[" + t.Key.String() + "]" }

// ExpressionStatement is a statement consisting of a single expression
// (used for bare function calls in statement position).
type ExpressionStatement struct {
	Token lexer.Token
	Expr  Expression
}

func (e *ExpressionStatement) statementNode()       {}
func (e *ExpressionStatement) TokenLiteral() string { return e.Token.Literal }
func (e *ExpressionStatement) Line() int            { return e.Token.Line }
func (e *ExpressionStatement) String() string       { return e.Expr.String() }

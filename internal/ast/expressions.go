package ast

import (
	"bytes"
	"strings"

	"github.com/lumascript/luma/internal/lexer"
)

// UnaryExpression is `not x`, `-x`, or `#x`.
type UnaryExpression struct {
	Token    lexer.Token
	Operator string
	Right    Expression
}

func (u *UnaryExpression) expressionNode()      {}
func (u *UnaryExpression) TokenLiteral() string { return u.Token.Literal }
func (u *UnaryExpression) Line() int            { return u.Token.Line }
func (u *UnaryExpression) String() string {
	if u.Operator == "not" {
		return "(not " + u.Right.String() + ")"
	}
	return "(" + u.Operator + u.Right.String() + ")"
}

// BinaryExpression covers arithmetic, comparison, concat, and logical
// and/or operators (§4.4). Logical operators are kept as BinaryExpression
// rather than a separate node since evaluation order and short-circuiting
// are the evaluator's concern, not the AST's.
type BinaryExpression struct {
	Token    lexer.Token
	Left     Expression
	Operator string
	Right    Expression
}

func (b *BinaryExpression) expressionNode()      {}
func (b *BinaryExpression) TokenLiteral() string { return b.Token.Literal }
func (b *BinaryExpression) Line() int            { return b.Token.Line }
func (b *BinaryExpression) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(b.Left.String())
	out.WriteString(" " + b.Operator + " ")
	out.WriteString(b.Right.String())
	out.WriteString(")")
	return out.String()
}

// FunctionLiteral is `function(params) body end`, used both for
// `function name(...)` declarations (wrapped by the parser in a
// FunctionDeclStatement) and anonymous function expressions.
type FunctionLiteral struct {
	Token      lexer.Token // 'function'
	Parameters []*Name
	Body       *Block
}

func (f *FunctionLiteral) expressionNode()      {}
func (f *FunctionLiteral) TokenLiteral() string { return f.Token.Literal }
func (f *FunctionLiteral) Line() int            { return f.Token.Line }
func (f *FunctionLiteral) String() string {
	var params []string
	for _, p := range f.Parameters {
		params = append(params, p.String())
	}
	return "function(" + strings.Join(params, ", ") + ") ... end"
}

// CallExpression is `callee(args...)`.
type CallExpression struct {
	Token     lexer.Token // '('
	Callee    Expression
	Arguments []Expression
}

func (c *CallExpression) expressionNode()      {}
func (c *CallExpression) TokenLiteral() string { return c.Token.Literal }
func (c *CallExpression) Line() int            { return c.Token.Line }
func (c *CallExpression) String() string {
	var args []string
	for _, a := range c.Arguments {
		args = append(args, a.String())
	}
	return c.Callee.String() + "(" + strings.Join(args, ", ") + ")"
}

// TableField is one entry of a TableConstructor: either `[keyExpr] = value`,
// `name = value`, or a bare positional `value`.
type TableField struct {
	Key   Expression // nil for positional fields
	Value Expression
}

// TableConstructor is `{ field, field, ... }`.
type TableConstructor struct {
	Token  lexer.Token // '{'
	Fields []TableField
}

func (t *TableConstructor) expressionNode()      {}
func (t *TableConstructor) TokenLiteral() string { return t.Token.Literal }
func (t *TableConstructor) Line() int            { return t.Token.Line }
func (t *TableConstructor) String() string {
	var fields []string
	for _, f := range t.Fields {
		if f.Key != nil {
			fields = append(fields, f.Key.String()+" = "+f.Value.String())
		} else {
			fields = append(fields, f.Value.String())
		}
	}
	return "{" + strings.Join(fields, ", ") + "}"
}

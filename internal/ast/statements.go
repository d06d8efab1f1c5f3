package ast

import (
	"strings"

	"github.com/lumascript/luma/internal/lexer"
)

// LocalAssignStatement is `local x1,...,xn = e1,...,em`.
type LocalAssignStatement struct {
	Token  lexer.Token // 'local'
	Names  []*Name
	Values []Expression // may be shorter than Names, or empty
}

func (l *LocalAssignStatement) statementNode()       {}
func (l *LocalAssignStatement) TokenLiteral() string { return l.Token.Literal }
func (l *LocalAssignStatement) Line() int            { return l.Token.Line }
func (l *LocalAssignStatement) String() string {
	var names, values []string
	for _, n := range l.Names {
		names = append(names, n.String())
	}
	for _, v := range l.Values {
		values = append(values, v.String())
	}
	s := "local " + strings.Join(names, ", ")
	if len(values) > 0 {
		s += " = " + strings.Join(values, ", ")
	}
	return s
}

// AssignStatement is `v1,...,vn = e1,...,em` where each target is either a
// Name or a TableIndex.
type AssignStatement struct {
	Token   lexer.Token
	Targets []Expression
	Values  []Expression
}

func (a *AssignStatement) statementNode()       {}
func (a *AssignStatement) TokenLiteral() string { return a.Token.Literal }
func (a *AssignStatement) Line() int            { return a.Token.Line }
func (a *AssignStatement) String() string {
	var targets, values []string
	for _, t := range a.Targets {
		targets = append(targets, t.String())
	}
	for _, v := range a.Values {
		values = append(values, v.String())
	}
	return strings.Join(targets, ", ") + " = " + strings.Join(values, ", ")
}

// DoStatement is `do ... end`.
type DoStatement struct {
	Token lexer.Token
	Body  *Block
}

func (d *DoStatement) statementNode()       {}
func (d *DoStatement) TokenLiteral() string { return d.Token.Literal }
func (d *DoStatement) Line() int            { return d.Token.Line }
func (d *DoStatement) String() string       { return "do\n" + d.Body.String() + "end" }

// WhileStatement is `while cond do body end`.
type WhileStatement struct {
	Token     lexer.Token
	Condition Expression
	Body      *Block
}

func (w *WhileStatement) statementNode()       {}
func (w *WhileStatement) TokenLiteral() string { return w.Token.Literal }
func (w *WhileStatement) Line() int            { return w.Token.Line }
func (w *WhileStatement) String() string {
	return "while " + w.Condition.String() + " do\n" + w.Body.String() + "end"
}

// ElseIfClause is one `elseif cond then branch` arm of an IfStatement.
type ElseIfClause struct {
	Condition Expression
	Body      *Block
}

// IfStatement is `if cond then ... [elseif ...]* [else ...] end`.
type IfStatement struct {
	Token     lexer.Token
	Condition Expression
	Then      *Block
	ElseIfs   []ElseIfClause
	Else      *Block // nil if no else clause
}

func (i *IfStatement) statementNode()       {}
func (i *IfStatement) TokenLiteral() string { return i.Token.Literal }
func (i *IfStatement) Line() int            { return i.Token.Line }
func (i *IfStatement) String() string {
	s := "if " + i.Condition.String() + " then\n" + i.Then.String()
	for _, ei := range i.ElseIfs {
		s += "elseif " + ei.Condition.String() + " then\n" + ei.Body.String()
	}
	if i.Else != nil {
		s += "else\n" + i.Else.String()
	}
	return s + "end"
}

// NumericForStatement is `for i = start, stop, step do body end`.
// Step is nil when omitted, meaning 1 (§4.5).
type NumericForStatement struct {
	Token lexer.Token
	Var   *Name
	Start Expression
	Stop  Expression
	Step  Expression // nil => default 1
	Body  *Block
}

func (f *NumericForStatement) statementNode()       {}
func (f *NumericForStatement) TokenLiteral() string { return f.Token.Literal }
func (f *NumericForStatement) Line() int            { return f.Token.Line }
func (f *NumericForStatement) String() string {
	return "for " + f.Var.String() + " = ... do\n" + f.Body.String() + "end"
}

// GenericForStatement is `for x1,...,xn in source do body end`.
type GenericForStatement struct {
	Token  lexer.Token
	Names  []*Name
	Source Expression
	Body   *Block
}

func (f *GenericForStatement) statementNode()       {}
func (f *GenericForStatement) TokenLiteral() string { return f.Token.Literal }
func (f *GenericForStatement) Line() int            { return f.Token.Line }
func (f *GenericForStatement) String() string {
	var names []string
	for _, n := range f.Names {
		names = append(names, n.String())
	}
	return "for " + strings.Join(names, ", ") + " in " + f.Source.String() + " do\n" + f.Body.String() + "end"
}

// FunctionDeclStatement is `[local] function name(params) body end`,
// desugared by evaluation into a closure allocation bound to name (§4.5).
type FunctionDeclStatement struct {
	Token   lexer.Token
	Local   bool
	Name    *Name
	Literal *FunctionLiteral
}

func (f *FunctionDeclStatement) statementNode()       {}
func (f *FunctionDeclStatement) TokenLiteral() string { return f.Token.Literal }
func (f *FunctionDeclStatement) Line() int            { return f.Token.Line }
func (f *FunctionDeclStatement) String() string {
	prefix := "function "
	if f.Local {
		prefix = "local function "
	}
	return prefix + f.Name.String() + f.Literal.String()
}

// ReturnStatement is `return e1,...,en`.
type ReturnStatement struct {
	Token  lexer.Token
	Values []Expression
}

func (r *ReturnStatement) statementNode()       {}
func (r *ReturnStatement) TokenLiteral() string { return r.Token.Literal }
func (r *ReturnStatement) Line() int            { return r.Token.Line }
func (r *ReturnStatement) String() string {
	var values []string
	for _, v := range r.Values {
		values = append(values, v.String())
	}
	return "return " + strings.Join(values, ", ")
}

// BreakStatement is `break`.
type BreakStatement struct {
	Token lexer.Token
}

func (b *BreakStatement) statementNode()       {}
func (b *BreakStatement) TokenLiteral() string { return b.Token.Literal }
func (b *BreakStatement) Line() int            { return b.Token.Line }
func (b *BreakStatement) String() string       { return "break" }

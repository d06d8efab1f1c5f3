package parser

import (
	"testing"

	"github.com/lumascript/luma/internal/ast"
	"github.com/lumascript/luma/internal/lexer"
)

func testParser(input string) *Parser {
	l := lexer.New(input)
	return New(l)
}

func checkParserErrors(t *testing.T, p *Parser) {
	t.Helper()
	errs := p.Errors()
	if len(errs) == 0 {
		return
	}
	t.Errorf("parser has %d errors", len(errs))
	for _, msg := range errs {
		t.Errorf("parser error: %s", msg)
	}
	t.FailNow()
}

func TestLocalAssignStatement(t *testing.T) {
	p := testParser("local x, y = 1, 2 + 3")
	block := p.ParseProgram()
	checkParserErrors(t, p)

	if len(block.Statements) != 1 {
		t.Fatalf("got %d statements, want 1", len(block.Statements))
	}
	stmt, ok := block.Statements[0].(*ast.LocalAssignStatement)
	if !ok {
		t.Fatalf("statement is %T, want *ast.LocalAssignStatement", block.Statements[0])
	}
	if len(stmt.Names) != 2 || stmt.Names[0].Value != "x" || stmt.Names[1].Value != "y" {
		t.Errorf("unexpected names: %+v", stmt.Names)
	}
	if len(stmt.Values) != 2 {
		t.Fatalf("got %d values, want 2", len(stmt.Values))
	}
}

func TestIfElseIfElse(t *testing.T) {
	p := testParser(`
if x then
  y = 1
elseif z then
  y = 2
else
  y = 3
end`)
	block := p.ParseProgram()
	checkParserErrors(t, p)

	stmt, ok := block.Statements[0].(*ast.IfStatement)
	if !ok {
		t.Fatalf("statement is %T", block.Statements[0])
	}
	if len(stmt.ElseIfs) != 1 {
		t.Fatalf("got %d elseifs, want 1", len(stmt.ElseIfs))
	}
	if stmt.Else == nil {
		t.Fatalf("expected else clause")
	}
}

func TestNumericForDefaultStep(t *testing.T) {
	p := testParser("for i = 1, 5 do x = x + i end")
	block := p.ParseProgram()
	checkParserErrors(t, p)

	stmt, ok := block.Statements[0].(*ast.NumericForStatement)
	if !ok {
		t.Fatalf("statement is %T", block.Statements[0])
	}
	if stmt.Step != nil {
		t.Errorf("expected nil Step for default-step for-loop")
	}
}

func TestGenericFor(t *testing.T) {
	p := testParser("for k, v in t do print(k, v) end")
	block := p.ParseProgram()
	checkParserErrors(t, p)

	stmt, ok := block.Statements[0].(*ast.GenericForStatement)
	if !ok {
		t.Fatalf("statement is %T", block.Statements[0])
	}
	if len(stmt.Names) != 2 {
		t.Fatalf("got %d names, want 2", len(stmt.Names))
	}
}

func TestFunctionDeclAndCall(t *testing.T) {
	p := testParser("local function add(a, b) return a + b end add(1, 2)")
	block := p.ParseProgram()
	checkParserErrors(t, p)

	if len(block.Statements) != 2 {
		t.Fatalf("got %d statements, want 2", len(block.Statements))
	}
	stmt, ok := block.Statements[0].(*ast.FunctionDeclStatement)
	if !ok {
		t.Fatalf("statement is %T", block.Statements[0])
	}
	if !stmt.Local {
		t.Errorf("expected local function declaration")
	}
	if len(stmt.Literal.Parameters) != 2 {
		t.Fatalf("got %d parameters, want 2", len(stmt.Literal.Parameters))
	}

	callStmt, ok := block.Statements[1].(*ast.ExpressionStatement)
	if !ok {
		t.Fatalf("second statement is %T, want *ast.ExpressionStatement", block.Statements[1])
	}
	call, ok := callStmt.Expr.(*ast.CallExpression)
	if !ok {
		t.Fatalf("expression is %T, want *ast.CallExpression", callStmt.Expr)
	}
	if len(call.Arguments) != 2 {
		t.Fatalf("got %d arguments, want 2", len(call.Arguments))
	}
}

func TestTableConstructorMixedFields(t *testing.T) {
	p := testParser(`local t = {10, 20, x = 1, [2+1] = 'z'}`)
	block := p.ParseProgram()
	checkParserErrors(t, p)

	stmt := block.Statements[0].(*ast.LocalAssignStatement)
	tc, ok := stmt.Values[0].(*ast.TableConstructor)
	if !ok {
		t.Fatalf("value is %T", stmt.Values[0])
	}
	if len(tc.Fields) != 4 {
		t.Fatalf("got %d fields, want 4", len(tc.Fields))
	}
}

func TestOperatorPrecedence(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1 + 2 * 3", "(1 + (2 * 3))"},
		{"(1 + 2) * 3", "((1 + 2) * 3)"},
		{"not true and false", "((not true) and false)"},
		{"-1 ^ 2", "(-(1 ^ 2))"},
		{"1 .. 2 .. 3", "(1 .. (2 .. 3))"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p := testParser(tt.input)
			block := p.ParseProgram()
			checkParserErrors(t, p)
			stmt := block.Statements[0].(*ast.ExpressionStatement)
			if got := stmt.Expr.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCallSugarForms(t *testing.T) {
	tests := []struct {
		input string
	}{
		{`f{1, 2}`},
		{`f"hello"`},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p := testParser(tt.input)
			block := p.ParseProgram()
			checkParserErrors(t, p)

			stmt, ok := block.Statements[0].(*ast.ExpressionStatement)
			if !ok {
				t.Fatalf("statement is %T", block.Statements[0])
			}
			call, ok := stmt.Expr.(*ast.CallExpression)
			if !ok {
				t.Fatalf("expression is %T, want *ast.CallExpression", stmt.Expr)
			}
			if len(call.Arguments) != 1 {
				t.Fatalf("got %d arguments, want 1", len(call.Arguments))
			}
		})
	}
}

func TestAssignToTableIndex(t *testing.T) {
	p := testParser("t.x = 1")
	block := p.ParseProgram()
	checkParserErrors(t, p)

	stmt, ok := block.Statements[0].(*ast.AssignStatement)
	if !ok {
		t.Fatalf("statement is %T", block.Statements[0])
	}
	if _, ok := stmt.Targets[0].(*ast.TableIndex); !ok {
		t.Fatalf("target is %T", stmt.Targets[0])
	}
}

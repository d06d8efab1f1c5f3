package parser

import (
	"github.com/lumascript/luma/internal/ast"
	"github.com/lumascript/luma/internal/lexer"
)

func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Type {
	case lexer.SEMI:
		return nil
	case lexer.LOCAL:
		return p.parseLocalStatement()
	case lexer.FUNCTION:
		return p.parseFunctionDeclStatement(false)
	case lexer.IF:
		return p.parseIfStatement()
	case lexer.WHILE:
		return p.parseWhileStatement()
	case lexer.DO:
		return p.parseDoStatement()
	case lexer.FOR:
		return p.parseForStatement()
	case lexer.RETURN:
		return p.parseReturnStatement()
	case lexer.BREAK:
		return &ast.BreakStatement{Token: p.curToken}
	default:
		return p.parseExpressionOrAssignStatement()
	}
}

func (p *Parser) parseLocalStatement() ast.Statement {
	tok := p.curToken
	if p.peekTokenIs(lexer.FUNCTION) {
		p.nextToken()
		return p.parseFunctionDeclStatement(true)
	}

	if !p.expectPeek(lexer.NAME) {
		return nil
	}
	names := []*ast.Name{{Token: p.curToken, Value: p.curToken.Literal}}
	for p.peekTokenIs(lexer.COMMA) {
		p.nextToken()
		if !p.expectPeek(lexer.NAME) {
			return nil
		}
		names = append(names, &ast.Name{Token: p.curToken, Value: p.curToken.Literal})
	}

	stmt := &ast.LocalAssignStatement{Token: tok, Names: names}

	if !p.peekTokenIs(lexer.ASSIGN) {
		return stmt
	}
	p.nextToken() // consume '='
	p.nextToken()
	stmt.Values = append(stmt.Values, p.parseExpression(LOWEST))
	for p.peekTokenIs(lexer.COMMA) {
		p.nextToken()
		p.nextToken()
		stmt.Values = append(stmt.Values, p.parseExpression(LOWEST))
	}
	return stmt
}

func (p *Parser) parseFunctionDeclStatement(local bool) ast.Statement {
	tok := p.curToken // 'function'
	if !p.expectPeek(lexer.NAME) {
		return nil
	}
	name := &ast.Name{Token: p.curToken, Value: p.curToken.Literal}

	if !p.expectPeek(lexer.LPAREN) {
		return nil
	}
	params := p.parseParameterList()
	body := p.parseBlockUntil(lexer.END)
	if !p.curTokenIs(lexer.END) {
		p.errorf("expected 'end' to close function %q", name.Value)
		return nil
	}

	return &ast.FunctionDeclStatement{
		Token: tok,
		Local: local,
		Name:  name,
		Literal: &ast.FunctionLiteral{
			Token:      tok,
			Parameters: params,
			Body:       body,
		},
	}
}

func (p *Parser) parseIfStatement() ast.Statement {
	tok := p.curToken
	p.nextToken()
	cond := p.parseExpression(LOWEST)
	if !p.expectPeek(lexer.THEN) {
		return nil
	}
	p.nextToken()

	then := p.parseBlockUntil(lexer.ELSEIF, lexer.ELSE, lexer.END)

	stmt := &ast.IfStatement{Token: tok, Condition: cond, Then: then}

	for p.curTokenIs(lexer.ELSEIF) {
		p.nextToken()
		elseifCond := p.parseExpression(LOWEST)
		if !p.expectPeek(lexer.THEN) {
			return nil
		}
		p.nextToken()
		elseifBody := p.parseBlockUntil(lexer.ELSEIF, lexer.ELSE, lexer.END)
		stmt.ElseIfs = append(stmt.ElseIfs, ast.ElseIfClause{Condition: elseifCond, Body: elseifBody})
	}

	if p.curTokenIs(lexer.ELSE) {
		p.nextToken()
		stmt.Else = p.parseBlockUntil(lexer.END)
	}

	if !p.curTokenIs(lexer.END) {
		p.errorf("expected 'end' to close if statement")
		return nil
	}
	return stmt
}

func (p *Parser) parseWhileStatement() ast.Statement {
	tok := p.curToken
	p.nextToken()
	cond := p.parseExpression(LOWEST)
	if !p.expectPeek(lexer.DO) {
		return nil
	}
	p.nextToken()
	body := p.parseBlockUntil(lexer.END)
	if !p.curTokenIs(lexer.END) {
		p.errorf("expected 'end' to close while loop")
		return nil
	}
	return &ast.WhileStatement{Token: tok, Condition: cond, Body: body}
}

func (p *Parser) parseDoStatement() ast.Statement {
	tok := p.curToken
	p.nextToken()
	body := p.parseBlockUntil(lexer.END)
	if !p.curTokenIs(lexer.END) {
		p.errorf("expected 'end' to close do block")
		return nil
	}
	return &ast.DoStatement{Token: tok, Body: body}
}

func (p *Parser) parseForStatement() ast.Statement {
	tok := p.curToken
	if !p.expectPeek(lexer.NAME) {
		return nil
	}
	firstName := &ast.Name{Token: p.curToken, Value: p.curToken.Literal}

	if p.peekTokenIs(lexer.ASSIGN) {
		return p.parseNumericForStatement(tok, firstName)
	}
	return p.parseGenericForStatement(tok, firstName)
}

func (p *Parser) parseNumericForStatement(tok lexer.Token, v *ast.Name) ast.Statement {
	p.nextToken() // consume '='
	p.nextToken()
	start := p.parseExpression(LOWEST)
	if !p.expectPeek(lexer.COMMA) {
		return nil
	}
	p.nextToken()
	stop := p.parseExpression(LOWEST)

	var step ast.Expression
	if p.peekTokenIs(lexer.COMMA) {
		p.nextToken()
		p.nextToken()
		step = p.parseExpression(LOWEST)
	}

	if !p.expectPeek(lexer.DO) {
		return nil
	}
	p.nextToken()
	body := p.parseBlockUntil(lexer.END)
	if !p.curTokenIs(lexer.END) {
		p.errorf("expected 'end' to close for loop")
		return nil
	}
	return &ast.NumericForStatement{Token: tok, Var: v, Start: start, Stop: stop, Step: step, Body: body}
}

func (p *Parser) parseGenericForStatement(tok lexer.Token, firstName *ast.Name) ast.Statement {
	names := []*ast.Name{firstName}
	for p.peekTokenIs(lexer.COMMA) {
		p.nextToken()
		if !p.expectPeek(lexer.NAME) {
			return nil
		}
		names = append(names, &ast.Name{Token: p.curToken, Value: p.curToken.Literal})
	}

	if !p.expectPeek(lexer.IN) {
		return nil
	}
	p.nextToken()
	source := p.parseExpression(LOWEST)

	if !p.expectPeek(lexer.DO) {
		return nil
	}
	p.nextToken()
	body := p.parseBlockUntil(lexer.END)
	if !p.curTokenIs(lexer.END) {
		p.errorf("expected 'end' to close for loop")
		return nil
	}
	return &ast.GenericForStatement{Token: tok, Names: names, Source: source, Body: body}
}

func (p *Parser) parseReturnStatement() ast.Statement {
	tok := p.curToken
	stmt := &ast.ReturnStatement{Token: tok}

	if p.peekTokenIs(lexer.END) || p.peekTokenIs(lexer.ELSE) || p.peekTokenIs(lexer.ELSEIF) ||
		p.peekTokenIs(lexer.SEMI) || p.peekTokenIs(lexer.EOF) {
		return stmt
	}

	p.nextToken()
	stmt.Values = append(stmt.Values, p.parseExpression(LOWEST))
	for p.peekTokenIs(lexer.COMMA) {
		p.nextToken()
		p.nextToken()
		stmt.Values = append(stmt.Values, p.parseExpression(LOWEST))
	}
	return stmt
}

// parseExpressionOrAssignStatement parses either a bare call statement or an
// assignment statement, disambiguating on whether a suffixed expression is
// followed by '=' or ','.
func (p *Parser) parseExpressionOrAssignStatement() ast.Statement {
	tok := p.curToken
	first := p.parseExpression(PREC_UNARY) // suffixed expression: Name/TableIndex/Call chains (and `^`, which binds tighter than unary)

	if p.peekTokenIs(lexer.COMMA) || p.peekTokenIs(lexer.ASSIGN) {
		targets := []ast.Expression{first}
		for p.peekTokenIs(lexer.COMMA) {
			p.nextToken()
			p.nextToken()
			targets = append(targets, p.parseExpression(PREC_UNARY))
		}
		if !p.expectPeek(lexer.ASSIGN) {
			return nil
		}
		p.nextToken()
		values := []ast.Expression{p.parseExpression(LOWEST)}
		for p.peekTokenIs(lexer.COMMA) {
			p.nextToken()
			p.nextToken()
			values = append(values, p.parseExpression(LOWEST))
		}
		return &ast.AssignStatement{Token: tok, Targets: targets, Values: values}
	}

	// Not an assignment: continue folding any remaining infix operators
	// (covers the case where the statement is itself a larger expression,
	// though only call expressions are meaningful as bare statements).
	for !p.peekTokenIs(lexer.SEMI) && LOWEST < p.peekPrecedence() {
		infix, ok := p.infixFns[p.peekToken.Type]
		if !ok {
			break
		}
		p.nextToken()
		first = infix(first)
	}

	return &ast.ExpressionStatement{Token: tok, Expr: first}
}

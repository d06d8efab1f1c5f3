package parser

import (
	"strconv"

	"github.com/lumascript/luma/internal/ast"
	"github.com/lumascript/luma/internal/lexer"
)

func (p *Parser) parseNumberLiteral() ast.Expression {
	v, err := strconv.ParseFloat(p.curToken.Literal, 64)
	if err != nil {
		p.errorf("could not parse %q as number", p.curToken.Literal)
		return nil
	}
	return &ast.NumberLiteral{Token: p.curToken, Value: v}
}

func (p *Parser) parseStringLiteral() ast.Expression {
	return &ast.StringLiteral{Token: p.curToken, Value: p.curToken.Literal}
}

func (p *Parser) parseBooleanLiteral() ast.Expression {
	return &ast.BooleanLiteral{Token: p.curToken, Value: p.curTokenIs(lexer.TRUE)}
}

func (p *Parser) parseNilLiteral() ast.Expression {
	return &ast.NilLiteral{Token: p.curToken}
}

func (p *Parser) parseName() ast.Expression {
	return &ast.Name{Token: p.curToken, Value: p.curToken.Literal}
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	tok := p.curToken
	p.nextToken()
	inner := p.parseExpression(LOWEST)
	if !p.expectPeek(lexer.RPAREN) {
		return nil
	}
	return &ast.GroupedExpression{Token: tok, Inner: inner}
}

func (p *Parser) parseUnaryExpression() ast.Expression {
	tok := p.curToken
	op := tok.Literal
	if tok.Type == lexer.NOT {
		op = "not"
	}
	p.nextToken()
	right := p.parseExpression(PREC_UNARY)
	return &ast.UnaryExpression{Token: tok, Operator: op, Right: right}
}

func (p *Parser) parseBinaryExpression(left ast.Expression) ast.Expression {
	tok := p.curToken
	op := operatorLiteral(tok)
	prec := p.curPrecedence()
	p.nextToken()
	right := p.parseExpression(prec)
	return &ast.BinaryExpression{Token: tok, Left: left, Operator: op, Right: right}
}

// parseBinaryExpressionRightAssoc handles the right-associative operators
// `^` and `..`: recursing at one precedence level lower than the operator's
// own lets a chain like `2^3^2` parse as `2^(3^2)`.
func (p *Parser) parseBinaryExpressionRightAssoc(left ast.Expression) ast.Expression {
	tok := p.curToken
	op := operatorLiteral(tok)
	prec := p.curPrecedence()
	p.nextToken()
	right := p.parseExpression(prec - 1)
	return &ast.BinaryExpression{Token: tok, Left: left, Operator: op, Right: right}
}

func operatorLiteral(tok lexer.Token) string {
	switch tok.Type {
	case lexer.AND:
		return "and"
	case lexer.OR:
		return "or"
	default:
		return tok.Literal
	}
}

func (p *Parser) parseCallExpression(callee ast.Expression) ast.Expression {
	tok := p.curToken // '('
	args := p.parseExpressionList(lexer.RPAREN)
	return &ast.CallExpression{Token: tok, Callee: callee, Arguments: args}
}

// parseTableCallExpression handles the `f{...}` call sugar: a table
// constructor directly suffixed to a prefix expression is a call with that
// single argument.
func (p *Parser) parseTableCallExpression(callee ast.Expression) ast.Expression {
	tok := p.curToken // '{'
	arg := p.parseTableConstructor()
	return &ast.CallExpression{Token: tok, Callee: callee, Arguments: []ast.Expression{arg}}
}

// parseStringCallExpression handles the `f"..."` call sugar.
func (p *Parser) parseStringCallExpression(callee ast.Expression) ast.Expression {
	tok := p.curToken
	arg := &ast.StringLiteral{Token: tok, Value: tok.Literal}
	return &ast.CallExpression{Token: tok, Callee: callee, Arguments: []ast.Expression{arg}}
}

func (p *Parser) parseExpressionList(end lexer.TokenType) []ast.Expression {
	var list []ast.Expression

	if p.peekTokenIs(end) {
		p.nextToken()
		return list
	}

	p.nextToken()
	list = append(list, p.parseExpression(LOWEST))

	for p.peekTokenIs(lexer.COMMA) {
		p.nextToken()
		p.nextToken()
		list = append(list, p.parseExpression(LOWEST))
	}

	if !p.expectPeek(end) {
		return nil
	}
	return list
}

func (p *Parser) parseIndexExpression(prefix ast.Expression) ast.Expression {
	tok := p.curToken // '['
	p.nextToken()
	key := p.parseExpression(LOWEST)
	if !p.expectPeek(lexer.RBRACKET) {
		return nil
	}
	return &ast.TableIndex{Token: tok, Prefix: prefix, Key: key}
}

func (p *Parser) parseDotExpression(prefix ast.Expression) ast.Expression {
	tok := p.curToken // '.'
	if !p.expectPeek(lexer.NAME) {
		return nil
	}
	key := &ast.StringLiteral{Token: p.curToken, Value: p.curToken.Literal}
	return &ast.TableIndex{Token: tok, Prefix: prefix, Key: key}
}

func (p *Parser) parseFunctionLiteral() ast.Expression {
	tok := p.curToken // 'function'
	if !p.expectPeek(lexer.LPAREN) {
		return nil
	}
	params := p.parseParameterList()

	body := p.parseBlockUntil(lexer.END)
	if !p.curTokenIs(lexer.END) {
		p.errorf("expected 'end' to close function body")
		return nil
	}
	return &ast.FunctionLiteral{Token: tok, Parameters: params, Body: body}
}

func (p *Parser) parseParameterList() []*ast.Name {
	var params []*ast.Name

	if p.peekTokenIs(lexer.RPAREN) {
		p.nextToken()
		p.nextToken() // step past ')' onto the first body token
		return params
	}

	p.nextToken()
	params = append(params, &ast.Name{Token: p.curToken, Value: p.curToken.Literal})

	for p.peekTokenIs(lexer.COMMA) {
		p.nextToken()
		p.nextToken()
		params = append(params, &ast.Name{Token: p.curToken, Value: p.curToken.Literal})
	}

	if !p.expectPeek(lexer.RPAREN) {
		return nil
	}
	p.nextToken() // step past ')' onto the first body token
	return params
}

func (p *Parser) parseTableConstructor() ast.Expression {
	tok := p.curToken // '{'
	tc := &ast.TableConstructor{Token: tok}

	for !p.peekTokenIs(lexer.RBRACE) {
		p.nextToken()

		field := p.parseTableField()
		tc.Fields = append(tc.Fields, field)

		if p.peekTokenIs(lexer.COMMA) || p.peekTokenIs(lexer.SEMI) {
			p.nextToken()
			continue
		}
		break
	}

	if !p.expectPeek(lexer.RBRACE) {
		return nil
	}
	return tc
}

func (p *Parser) parseTableField() ast.TableField {
	// `[expr] = value`
	if p.curTokenIs(lexer.LBRACKET) {
		p.nextToken()
		key := p.parseExpression(LOWEST)
		if !p.expectPeek(lexer.RBRACKET) {
			return ast.TableField{}
		}
		if !p.expectPeek(lexer.ASSIGN) {
			return ast.TableField{}
		}
		p.nextToken()
		value := p.parseExpression(LOWEST)
		return ast.TableField{Key: key, Value: value}
	}

	// `name = value`
	if p.curTokenIs(lexer.NAME) && p.peekTokenIs(lexer.ASSIGN) {
		nameTok := p.curToken
		p.nextToken() // consume '='
		p.nextToken()
		value := p.parseExpression(LOWEST)
		return ast.TableField{Key: &ast.StringLiteral{Token: nameTok, Value: nameTok.Literal}, Value: value}
	}

	// bare positional value
	value := p.parseExpression(LOWEST)
	return ast.TableField{Key: nil, Value: value}
}

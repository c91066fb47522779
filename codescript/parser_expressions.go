package codescript

func (p *parser) parseExpression(precedence int) Expression {
	prefix := p.prefixFns[p.curToken.Type]
	if prefix == nil {
		p.errorUnexpected(p.curToken)
		return nil
	}

	left := prefix()
	if left == nil {
		return nil
	}

	for p.peekToken.Type != tokenEOF && precedence < p.peekPrecedence() {
		infix := p.infixFns[p.peekToken.Type]
		if infix == nil {
			return left
		}
		p.nextToken()
		left = infix(left)
		if left == nil {
			return nil
		}
	}

	return left
}

func (p *parser) parseIdentifier() Expression {
	if p.peekToken.Type == tokenLParen {
		call := p.parseCallExpression()
		if call == nil {
			return nil
		}
		return call
	}
	return &Identifier{Name: p.curToken.Literal, position: p.curToken.Pos}
}

func (p *parser) parseConstant() Expression {
	var kind LiteralKind
	switch p.curToken.Type {
	case tokenInt:
		kind = LiteralInt
	case tokenFloat:
		kind = LiteralFloat
	case tokenString:
		kind = LiteralString
	case tokenBool:
		kind = LiteralBool
	case tokenNull:
		kind = LiteralNull
	default:
		p.errorUnexpected(p.curToken)
		return nil
	}
	return &Constant{Kind: kind, Text: p.curToken.Literal, position: p.curToken.Pos}
}

func (p *parser) parseGroupedExpression() Expression {
	p.nextToken()
	expr := p.parseExpression(lowestPrec)
	if expr == nil {
		return nil
	}
	if !p.expectPeek(tokenRParen) {
		return nil
	}
	return expr
}

func (p *parser) parseNotExpression() Expression {
	pos := p.curToken.Pos
	p.nextToken()
	right := p.parseExpression(precPrefix)
	if right == nil {
		return nil
	}
	return &NotExpr{Right: right, position: pos}
}

// parseCallExpression expects curToken on the callee name and peekToken on '('.
func (p *parser) parseCallExpression() *CallExpr {
	call := &CallExpr{Name: p.curToken.Literal, position: p.curToken.Pos}
	p.nextToken()

	if p.peekToken.Type == tokenRParen {
		p.nextToken()
		return call
	}

	p.nextToken()
	arg := p.parseExpression(lowestPrec)
	if arg == nil {
		return nil
	}
	call.Args = append(call.Args, arg)

	for p.peekToken.Type == tokenComma {
		p.nextToken()
		p.nextToken()
		arg := p.parseExpression(lowestPrec)
		if arg == nil {
			return nil
		}
		call.Args = append(call.Args, arg)
	}

	if !p.expectPeek(tokenRParen) {
		return nil
	}
	return call
}

func (p *parser) parseInfixOperands() (TokenType, Position, Expression) {
	pos := p.curToken.Pos
	operator := p.curToken.Type
	precedence := p.curPrecedence()
	p.nextToken()
	return operator, pos, p.parseExpression(precedence)
}

func (p *parser) parseAdditiveExpression(left Expression) Expression {
	operator, pos, right := p.parseInfixOperands()
	if right == nil {
		return nil
	}
	return &AdditiveExpr{Left: left, Operator: operator, Right: right, position: pos}
}

func (p *parser) parseMultiplicativeExpression(left Expression) Expression {
	operator, pos, right := p.parseInfixOperands()
	if right == nil {
		return nil
	}
	return &MultiplicativeExpr{Left: left, Operator: operator, Right: right, position: pos}
}

func (p *parser) parseComparisonExpression(left Expression) Expression {
	operator, pos, right := p.parseInfixOperands()
	if right == nil {
		return nil
	}
	return &ComparisonExpr{Left: left, Operator: operator, Right: right, position: pos}
}

func (p *parser) parseBooleanExpression(left Expression) Expression {
	operator, pos, right := p.parseInfixOperands()
	if right == nil {
		return nil
	}
	return &BooleanExpr{Left: left, Operator: operator, Right: right, position: pos}
}

func (p *parser) curPrecedence() int {
	if prec, ok := precedences[p.curToken.Type]; ok {
		return prec
	}
	return lowestPrec
}

func (p *parser) peekPrecedence() int {
	if prec, ok := precedences[p.peekToken.Type]; ok {
		return prec
	}
	return lowestPrec
}

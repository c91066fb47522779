package codescript

func (p *parser) parseWhileStatement() Statement {
	pos := p.curToken.Pos
	keyword := p.curToken.Literal
	p.nextToken()
	condition := p.parseExpression(lowestPrec)
	if condition == nil {
		return nil
	}

	if !p.expectPeek(tokenLBrace) {
		return nil
	}
	body := p.parseBlock()
	if body == nil {
		return nil
	}

	stmt := &WhileStmt{Keyword: keyword, Condition: condition, Body: body, position: pos}
	if p.peekToken.Type == tokenElse {
		p.nextToken()
		stmt.Else = p.parseElseBranch()
		if stmt.Else == nil {
			return nil
		}
	}
	return stmt
}

func (p *parser) parseIfStatement() Statement {
	pos := p.curToken.Pos
	p.nextToken()
	condition := p.parseExpression(lowestPrec)
	if condition == nil {
		return nil
	}

	if !p.expectPeek(tokenLBrace) {
		return nil
	}
	consequent := p.parseBlock()
	if consequent == nil {
		return nil
	}

	stmt := &IfStmt{Condition: condition, Consequent: consequent, position: pos}
	if p.peekToken.Type == tokenElse {
		p.nextToken()
		stmt.Else = p.parseElseBranch()
		if stmt.Else == nil {
			return nil
		}
	}
	return stmt
}

// parseElseBranch expects curToken on 'else' and accepts a block or an if.
func (p *parser) parseElseBranch() Statement {
	p.nextToken()
	switch p.curToken.Type {
	case tokenLBrace:
		block := p.parseBlock()
		if block == nil {
			return nil
		}
		return block
	case tokenIf:
		return p.parseIfStatement()
	default:
		p.errorExpected(p.curToken, "block or 'if' after 'else'")
		return nil
	}
}

// parseBlock expects curToken on '{' and stops on the matching '}'.
func (p *parser) parseBlock() *Block {
	block := &Block{position: p.curToken.Pos}
	p.nextToken()
	for p.curToken.Type != tokenRBrace {
		if p.curToken.Type == tokenEOF {
			p.errorExpected(p.curToken, "'}'")
			return nil
		}
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.nextToken()
	}
	return block
}

package codescript

type (
	prefixParseFn func() Expression
	infixParseFn  func(Expression) Expression
)

type parser struct {
	l *lexer

	curToken  Token
	peekToken Token

	errors []error

	prefixFns map[TokenType]prefixParseFn
	infixFns  map[TokenType]infixParseFn
}

func newParser(input string) *parser {
	l := newLexer(input)
	p := &parser{l: l}

	p.prefixFns = make(map[TokenType]prefixParseFn)
	p.infixFns = make(map[TokenType]infixParseFn)

	p.registerPrefix(tokenIdent, p.parseIdentifier)
	p.registerPrefix(tokenInt, p.parseConstant)
	p.registerPrefix(tokenFloat, p.parseConstant)
	p.registerPrefix(tokenString, p.parseConstant)
	p.registerPrefix(tokenBool, p.parseConstant)
	p.registerPrefix(tokenNull, p.parseConstant)
	p.registerPrefix(tokenLParen, p.parseGroupedExpression)
	p.registerPrefix(tokenBang, p.parseNotExpression)

	p.infixFns[tokenPlus] = p.parseAdditiveExpression
	p.infixFns[tokenMinus] = p.parseAdditiveExpression
	p.infixFns[tokenAmp] = p.parseAdditiveExpression
	p.infixFns[tokenAsterisk] = p.parseMultiplicativeExpression
	p.infixFns[tokenSlash] = p.parseMultiplicativeExpression
	p.infixFns[tokenPercent] = p.parseMultiplicativeExpression
	p.infixFns[tokenEQ] = p.parseComparisonExpression
	p.infixFns[tokenNotEQ] = p.parseComparisonExpression
	p.infixFns[tokenLT] = p.parseComparisonExpression
	p.infixFns[tokenLTE] = p.parseComparisonExpression
	p.infixFns[tokenGT] = p.parseComparisonExpression
	p.infixFns[tokenGTE] = p.parseComparisonExpression
	p.infixFns[tokenAnd] = p.parseBooleanExpression
	p.infixFns[tokenOr] = p.parseBooleanExpression
	p.infixFns[tokenXor] = p.parseBooleanExpression

	p.nextToken()
	p.nextToken()

	return p
}

func (p *parser) registerPrefix(tt TokenType, fn prefixParseFn) {
	p.prefixFns[tt] = fn
}

func (p *parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *parser) ParseProgram() (*Program, []error) {
	program := &Program{}

	for p.curToken.Type != tokenEOF {
		stmt := p.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		p.nextToken()
	}

	return program, p.errors
}

// parseStatement leaves curToken on the last token of the statement.
func (p *parser) parseStatement() Statement {
	switch p.curToken.Type {
	case tokenSemicolon:
		return nil
	case tokenWhile:
		return p.parseWhileStatement()
	case tokenIf:
		return p.parseIfStatement()
	case tokenIdent:
		var stmt Statement
		switch p.peekToken.Type {
		case tokenAssign:
			stmt = p.parseAssignStatement()
		case tokenLParen:
			stmt = p.parseCallStatement()
		default:
			p.errorExpected(p.peekToken, "'=' or '(' after identifier")
			return nil
		}
		if p.peekToken.Type == tokenSemicolon {
			p.nextToken()
		}
		return stmt
	default:
		p.errorUnexpected(p.curToken)
		return nil
	}
}

func (p *parser) parseAssignStatement() Statement {
	pos := p.curToken.Pos
	name := p.curToken.Literal
	p.nextToken()
	p.nextToken()
	value := p.parseExpression(lowestPrec)
	if value == nil {
		return nil
	}
	return &AssignStmt{Name: name, Value: value, position: pos}
}

func (p *parser) parseCallStatement() Statement {
	pos := p.curToken.Pos
	call := p.parseCallExpression()
	if call == nil {
		return nil
	}
	return &CallStmt{Call: call, position: pos}
}

func (p *parser) expectPeek(tt TokenType) bool {
	if p.peekToken.Type == tt {
		p.nextToken()
		return true
	}
	p.errorExpected(p.peekToken, tokenLabel(tt))
	return false
}

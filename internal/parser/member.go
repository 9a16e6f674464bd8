package parser

import (
	"cslines/internal/diag"
	"cslines/internal/syntax"
	"cslines/internal/token"
)

// parseTypedMember handles members that start with a type: fields,
// properties, indexers, methods and operators. It returns false, without
// consuming anything, when no type starts at the cursor.
func (p *Parser) parseTypedMember(id syntax.NodeID, sc scope) bool {
	startsWithIdent := p.at(token.Ident) && p.peek(1).Kind == token.LParen
	if !p.parseType() {
		return false
	}

	switch {
	case p.at(token.KwOperator):
		p.b.SetKind(id, syntax.NodeMethodDecl)
		p.bump()
		for n := 0; n < 2 && !p.at(token.LParen) && !p.atEOF() && !p.at(token.LBrace); n++ {
			p.bump() // символ оператора, '>' '>' - два токена
		}
		p.parseParameterList()
		p.parseBody("after operator declaration")

	case p.at(token.KwThis):
		p.bump()
		p.parseIndexer(id)

	case p.at(token.Ident):
		if p.parseMemberName() {
			p.parseIndexer(id)
			return true
		}
		switch {
		case p.at(token.Lt), p.at(token.LParen):
			p.parseMethodRest(id)
		case p.at(token.LBrace), p.at(token.FatArrow):
			p.parseProperty(id)
		default:
			p.parseFieldRest()
		}

	case p.at(token.LParen) && startsWithIdent && sc.kind == scopeType:
		// метод без возвращаемого типа: разбираем как конструктор
		p.b.SetKind(id, syntax.NodeConstructorDecl)
		p.parseConstructorRest()

	case sc.kind == scopeNamespace:
		// выражение верхнего уровня: Console.WriteLine(...);
		p.b.SetKind(id, syntax.NodeStatement)
		p.statementRest(token.Ident)

	default:
		p.missing(token.Ident, diag.SynExpectIdentifier, "for member name")
		p.parseFieldRest()
	}
	return true
}

// parseMemberName parses a possibly qualified member name: M, IFoo.M,
// IFoo<T>.M. It reports true when the name ends with `.this` (explicit
// interface indexer).
func (p *Parser) parseMemberName() bool {
	p.bump()
	for {
		if p.at(token.Lt) {
			end, ok := p.scanTypeArgs(p.pos, false)
			if !ok || p.toks[end+1].Kind != token.Dot {
				return false
			}
			p.parseTypeArgs(end)
		}
		if !p.at(token.Dot) {
			return false
		}
		switch p.peek(1).Kind {
		case token.Ident:
			p.bump()
			p.bump()
		case token.KwThis:
			p.bump()
			p.bump()
			return true
		default:
			return false
		}
	}
}

func (p *Parser) parseMethodRest(id syntax.NodeID) {
	p.b.SetKind(id, syntax.NodeMethodDecl)
	if p.at(token.Lt) {
		p.parseTypeParameterList()
	}
	p.parseParameterList()
	p.parseConstraints()
	p.parseBody("after method declaration")
}

func (p *Parser) parseConstructor(id syntax.NodeID) {
	p.b.SetKind(id, syntax.NodeConstructorDecl)
	p.bump() // имя
	p.parseConstructorRest()
}

func (p *Parser) parseConstructorRest() {
	p.parseParameterList()
	if p.at(token.Colon) {
		// : base(...) / : this(...)
		p.b.Open(syntax.NodeInitializer)
		p.bump()
		p.run(func(tok token.Token) bool {
			return tok.Kind == token.LBrace || tok.Kind == token.Semicolon || tok.Kind == token.FatArrow
		})
		p.b.Close()
	}
	p.parseBody("after constructor declaration")
}

func (p *Parser) parseConversionOperator(id syntax.NodeID) {
	p.b.SetKind(id, syntax.NodeMethodDecl)
	p.bump() // implicit / explicit
	p.expect(token.KwOperator, diag.SynUnexpectedToken, "in conversion operator")
	if !p.parseType() {
		p.missing(token.Ident, diag.SynExpectIdentifier, "for conversion type")
	}
	p.parseParameterList()
	p.parseBody("after operator declaration")
}

// parseBody: { ... } | => expr ; | ;
func (p *Parser) parseBody(context string) {
	switch {
	case p.at(token.LBrace):
		p.parseBlock()
	case p.at(token.FatArrow):
		p.parseArrowExpression()
		p.expect(token.Semicolon, diag.SynExpectSemicolon, context)
	default:
		p.expect(token.Semicolon, diag.SynExpectSemicolon, context)
	}
}

func (p *Parser) parseArrowExpression() {
	p.b.Open(syntax.NodeArrowExpression)
	p.bump() // =>
	p.run(p.declExprStop(false))
	p.b.Close()
}

// parseInitializer: = expr, stopping before ',' when inList is set.
func (p *Parser) parseInitializer(inList bool) {
	p.b.Open(syntax.NodeInitializer)
	p.bump() // =
	p.run(p.declExprStop(inList))
	p.b.Close()
}

// parseParameterList: ( ... ) с синтезом ')' при обрыве.
func (p *Parser) parseParameterList() {
	p.parseDelimitedList(token.LParen, token.RParen, diag.SynExpectRParen)
}

func (p *Parser) parseDelimitedList(open, closing token.Kind, code diag.Code) {
	p.b.Open(syntax.NodeParameterList)
	if !p.at(open) {
		p.missing(open, code, "to start parameter list")
	} else {
		p.bump()
	}
	p.run(func(tok token.Token) bool {
		return tok.Kind == token.LBrace || tok.Kind == token.Semicolon || tok.Kind == token.FatArrow
	})
	p.expect(closing, code, "to close parameter list")
	p.b.Close()
}

func (p *Parser) parseIndexer(id syntax.NodeID) {
	p.b.SetKind(id, syntax.NodeIndexerDecl)
	p.parseDelimitedList(token.LBracket, token.RBracket, diag.SynExpectRBracket)
	switch {
	case p.at(token.LBrace):
		p.parseAccessorList()
	case p.at(token.FatArrow):
		p.parseArrowExpression()
		p.expect(token.Semicolon, diag.SynExpectSemicolon, "after indexer")
	default:
		p.missing(token.LBrace, diag.SynExpectLBrace, "to open accessor list")
	}
}

func (p *Parser) parseProperty(id syntax.NodeID) {
	p.b.SetKind(id, syntax.NodePropertyDecl)
	if p.at(token.FatArrow) {
		p.parseArrowExpression()
		p.expect(token.Semicolon, diag.SynExpectSemicolon, "after property")
		return
	}
	p.parseAccessorList()
	if p.at(token.Assign) {
		p.parseInitializer(false)
		p.expect(token.Semicolon, diag.SynExpectSemicolon, "after property initializer")
	}
}

func (p *Parser) parseAccessorList() {
	p.b.Open(syntax.NodeAccessorList)
	p.bump() // {
	for !p.atEOF() && !p.at(token.RBrace) {
		p.parseAccessor()
	}
	p.expect(token.RBrace, diag.SynExpectRBrace, "to close accessor list")
	p.b.Close()
}

func (p *Parser) parseAccessor() {
	id := p.b.Open(syntax.NodeAccessorDecl)
	defer p.b.Close()

	start := p.pos
	for p.at(token.LBracket) {
		p.parseAttributeList()
	}
	for p.cur().Kind.IsModifier() {
		p.bump()
	}
	tok := p.cur()
	k, ok := token.LookupContextual(tok.Text)
	switch {
	case tok.Kind == token.Ident && ok && k.IsAccessorKeyword():
		p.bumpAs(k)
	case p.at(token.LBrace), p.at(token.FatArrow):
		p.missing(token.KwGet, diag.SynExpectAccessor, "before accessor body")
	default:
		if p.pos == start {
			p.b.SetKind(id, syntax.NodeSkippedTokens)
		}
		p.report(diag.SynExpectAccessor, diag.SevError, tok.Span, "expected get, set, init, add or remove accessor")
		if !p.at(token.RBrace) && !p.atEOF() {
			p.bump()
		}
		return
	}
	p.parseBody("after accessor")
}

// parseEvent: event T E; | event T E1, E2; | event T E { add {} remove {} }
func (p *Parser) parseEvent(id syntax.NodeID) {
	p.bump() // event
	if !p.parseType() {
		p.missing(token.Ident, diag.SynExpectIdentifier, "for event type")
	}
	if p.at(token.Ident) {
		p.parseMemberName()
	} else {
		p.missing(token.Ident, diag.SynExpectIdentifier, "for event name")
	}
	if p.at(token.LBrace) {
		p.b.SetKind(id, syntax.NodeEventDecl)
		p.parseAccessorList()
		return
	}
	p.b.SetKind(id, syntax.NodeEventFieldDecl)
	p.parseFieldRest()
}

// parseFieldRest: остаток объявления поля после первого имени.
func (p *Parser) parseFieldRest() {
	for {
		if p.at(token.LBracket) {
			// fixed buffer: fixed int buf[16];
			p.bump()
			p.run(func(tok token.Token) bool { return tok.Kind == token.Semicolon })
			p.expect(token.RBracket, diag.SynExpectRBracket, "to close fixed buffer size")
		}
		if p.at(token.Assign) {
			p.parseInitializer(true)
		}
		if !p.at(token.Comma) {
			break
		}
		p.bump()
		if p.at(token.Ident) {
			p.bump()
		} else {
			p.missing(token.Ident, diag.SynExpectIdentifier, "for variable name")
			break
		}
	}
	p.expect(token.Semicolon, diag.SynExpectSemicolon, "after field declaration")
}

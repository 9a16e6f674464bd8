package parser

import (
	"cslines/internal/diag"
	"cslines/internal/syntax"
	"cslines/internal/token"
)

type scopeKind uint8

const (
	scopeNamespace scopeKind = iota // compilation unit or namespace body
	scopeType                       // class, struct, interface or record body
)

type scope struct {
	kind     scopeKind
	typeName string // имя объемлющего типа, нужно для конструкторов
}

// isUsingDirective distinguishes `using X;` from `using (...)` and
// `using var x = ...;` statements.
func (p *Parser) isUsingDirective(off int) bool {
	next := p.peek(off + 1)
	switch next.Kind {
	case token.KwStatic:
		return true
	case token.Ident:
		after := p.peek(off + 2)
		return after.Kind != token.Ident
	}
	return false
}

func (p *Parser) parseUsingDirective(off int) {
	p.b.Open(syntax.NodeUsingDirective)
	if off == 1 {
		p.bumpAs(token.KwGlobal)
	}
	p.bump() // using
	if p.at(token.KwStatic) {
		p.bump()
	}
	if p.at(token.Ident) && p.peek(1).Kind == token.Assign {
		p.bump()
		p.bump()
	}
	if !p.parseType() {
		p.report(diag.SynExpectIdentifier, diag.SevError, p.cur().Span, "expected namespace or type name in using directive")
	}
	p.expect(token.Semicolon, diag.SynExpectSemicolon, "after using directive")
	p.b.Close()
}

// isGlobalAttribute: [assembly: ...] или [module: ...]
func (p *Parser) isGlobalAttribute() bool {
	target := p.peek(1)
	if target.Kind != token.Ident || p.peek(2).Kind != token.Colon {
		return false
	}
	return target.Text == "assembly" || target.Text == "module"
}

func (p *Parser) parseAttributeList() {
	p.b.Open(syntax.NodeAttributeList)
	p.bump() // [
	p.run(func(tok token.Token) bool {
		return tok.Kind == token.Semicolon || tok.Kind == token.LBrace
	})
	p.expect(token.RBracket, diag.SynExpectRBracket, "to close attribute list")
	p.b.Close()
}

var statementStarters = map[token.Kind]bool{
	token.KwIf:       true,
	token.KwFor:      true,
	token.KwForeach:  true,
	token.KwWhile:    true,
	token.KwDo:       true,
	token.KwSwitch:   true,
	token.KwTry:      true,
	token.KwReturn:   true,
	token.KwThrow:    true,
	token.KwBreak:    true,
	token.KwContinue: true,
	token.KwUsing:    true,
	token.LBrace:     true,
}

// parseMember parses one member declaration. Declarations whose kind is only
// known after their header are opened as fields and re-kinded.
func (p *Parser) parseMember(sc scope) {
	if sc.kind == scopeNamespace && statementStarters[p.cur().Kind] {
		p.parseStatement()
		return
	}

	start := p.pos
	id := p.b.Open(syntax.NodeFieldDecl)
	for p.at(token.LBracket) {
		p.parseAttributeList()
	}
	p.parseModifiers()

	switch tok := p.cur(); {
	case tok.Kind == token.KwClass, tok.Kind == token.KwStruct, tok.Kind == token.KwInterface,
		isContextual(tok, token.KwRecord) && p.isRecordStart():
		p.parseTypeDecl(id)
	case tok.Kind == token.KwEnum:
		p.parseEnum(id)
	case tok.Kind == token.KwNamespace:
		p.parseNamespace(id)
	case tok.Kind == token.KwDelegate:
		p.parseDelegate(id)
	case tok.Kind == token.KwEvent:
		p.parseEvent(id)
	case tok.Kind == token.Tilde && p.peek(1).Kind == token.Ident:
		// деструктор
		p.b.SetKind(id, syntax.NodeMethodDecl)
		p.bump()
		p.bump()
		p.parseParameterList()
		p.parseBody("after destructor declaration")
	case tok.Kind == token.Ident && sc.kind == scopeType && tok.Text == sc.typeName && p.peek(1).Kind == token.LParen:
		p.parseConstructor(id)
	case tok.Kind == token.KwImplicit, tok.Kind == token.KwExplicit:
		p.parseConversionOperator(id)
	default:
		if !p.parseTypedMember(id, sc) {
			p.skipAsMember(id, start, sc)
		}
	}
	p.b.Close()
}

// skipAsMember turns the open member into SkippedTokens when nothing that
// looks like a declaration follows.
func (p *Parser) skipAsMember(id syntax.NodeID, start int, sc scope) {
	if p.pos > start {
		// модификаторы без объявления
		p.missing(token.Ident, diag.SynExpectIdentifier, "after modifiers")
		return
	}
	p.b.SetKind(id, syntax.NodeSkippedTokens)
	if p.at(token.Semicolon) {
		p.bump() // пустое объявление
		return
	}
	code := diag.SynUnexpectedToken
	if sc.kind == scopeNamespace {
		code = diag.SynUnexpectedTopLevel
	}
	p.report(code, diag.SevError, p.cur().Span, "unexpected \""+p.cur().Text+"\" in declaration list")
	p.bump()
}

func (p *Parser) parseModifiers() {
	for {
		tok := p.cur()
		switch {
		case tok.Kind.IsModifier(), tok.Kind == token.KwRef:
			p.bump()
		case (isContextual(tok, token.KwPartial) || isContextual(tok, token.KwAsync)) && p.modifierFollows():
			k, _ := token.LookupContextual(tok.Text)
			p.bumpAs(k)
		default:
			return
		}
	}
}

// modifierFollows reports whether a contextual modifier at the cursor is
// followed by something that continues a declaration.
func (p *Parser) modifierFollows() bool {
	next := p.peek(1)
	return next.Kind == token.Ident || next.Kind.IsModifier() || next.Kind == token.LParen ||
		next.Kind == token.KwClass || next.Kind == token.KwStruct || next.Kind == token.KwInterface
}

// isRecordStart: `record Name`, `record class`, `record struct`.
func (p *Parser) isRecordStart() bool {
	next := p.peek(1)
	return next.Kind == token.Ident || next.Kind == token.KwClass || next.Kind == token.KwStruct
}

func (p *Parser) parseTypeDecl(id syntax.NodeID) {
	kind := syntax.NodeClassDecl
	switch tok := p.cur(); {
	case tok.Kind == token.KwStruct:
		kind = syntax.NodeStructDecl
		p.bump()
	case tok.Kind == token.KwInterface:
		kind = syntax.NodeInterfaceDecl
		p.bump()
	case tok.Kind == token.Ident:
		kind = syntax.NodeRecordDecl
		p.bumpAs(token.KwRecord)
		if p.at(token.KwClass) || p.at(token.KwStruct) {
			p.bump()
		}
	default:
		p.bump()
	}
	p.b.SetKind(id, kind)

	name := p.cur().Text
	if !p.at(token.Ident) {
		name = ""
		p.missing(token.Ident, diag.SynExpectIdentifier, "for type name")
	} else {
		p.bump()
	}
	if p.at(token.Lt) {
		p.parseTypeParameterList()
	}
	if p.at(token.LParen) {
		p.parseParameterList() // primary constructor
	}
	if p.at(token.Colon) {
		p.parseBaseList()
	}
	p.parseConstraints()

	switch {
	case p.at(token.LBrace):
		p.parseTypeBody(scope{kind: scopeType, typeName: name})
	case p.at(token.Semicolon):
		p.bump()
	default:
		p.missing(token.LBrace, diag.SynExpectLBrace, "to open type body")
		p.parseMembersUntilBrace(scope{kind: scopeType, typeName: name})
		p.expect(token.RBrace, diag.SynExpectRBrace, "to close type body")
	}
}

func (p *Parser) parseTypeBody(sc scope) {
	p.bump() // {
	p.parseMembersUntilBrace(sc)
	p.expect(token.RBrace, diag.SynExpectRBrace, "to close type body")
	if p.at(token.Semicolon) {
		p.bump()
	}
}

func (p *Parser) parseMembersUntilBrace(sc scope) {
	for !p.atEOF() && !p.at(token.RBrace) {
		p.parseMember(sc)
	}
}

func (p *Parser) parseBaseList() {
	p.b.Open(syntax.NodeBaseList)
	p.bump() // :
	p.run(func(tok token.Token) bool {
		return tok.Kind == token.LBrace || tok.Kind == token.Semicolon || isContextual(tok, token.KwWhere)
	})
	p.b.Close()
}

// parseConstraints: where T : class, new() - остаются токенами объявления.
func (p *Parser) parseConstraints() {
	for p.atContextual(token.KwWhere) {
		p.bumpAs(token.KwWhere)
		p.run(func(tok token.Token) bool {
			return tok.Kind == token.LBrace || tok.Kind == token.Semicolon ||
				tok.Kind == token.FatArrow || isContextual(tok, token.KwWhere)
		})
	}
}

func (p *Parser) parseEnum(id syntax.NodeID) {
	p.b.SetKind(id, syntax.NodeEnumDecl)
	p.bump() // enum
	if !p.at(token.Ident) {
		p.missing(token.Ident, diag.SynExpectIdentifier, "for enum name")
	} else {
		p.bump()
	}
	if p.at(token.Colon) {
		p.parseBaseList()
	}
	if !p.at(token.LBrace) {
		p.missing(token.LBrace, diag.SynExpectLBrace, "to open enum body")
	} else {
		p.bump()
	}
	for !p.atEOF() && !p.at(token.RBrace) {
		if !p.at(token.Ident) && !p.at(token.LBracket) {
			p.skipStray(diag.SynUnexpectedToken, "unexpected \""+p.cur().Text+"\" in enum body")
			continue
		}
		p.b.Open(syntax.NodeEnumMember)
		for p.at(token.LBracket) {
			p.parseAttributeList()
		}
		if p.at(token.Ident) {
			p.bump()
		} else {
			p.missing(token.Ident, diag.SynExpectIdentifier, "for enum member")
		}
		if p.at(token.Assign) {
			p.parseInitializer(true)
		}
		p.b.Close()
		if p.at(token.Comma) {
			p.bump()
		}
	}
	p.expect(token.RBrace, diag.SynExpectRBrace, "to close enum body")
	if p.at(token.Semicolon) {
		p.bump()
	}
}

func (p *Parser) parseNamespace(id syntax.NodeID) {
	p.b.SetKind(id, syntax.NodeNamespaceDecl)
	p.bump() // namespace
	if !p.parseType() {
		p.missing(token.Ident, diag.SynExpectIdentifier, "for namespace name")
	}
	switch {
	case p.at(token.Semicolon):
		p.b.SetKind(id, syntax.NodeFileScopedNamespaceDecl)
		p.bump()
		p.parseNamespaceBody(false)
		return
	case p.at(token.LBrace):
		p.bump()
	case p.braces == 0 && (p.atEOF() || p.onNewLine(0)):
		// `namespace N` at the end of its line: a file-scoped namespace
		// missing its ';'
		p.b.SetKind(id, syntax.NodeFileScopedNamespaceDecl)
		p.missing(token.Semicolon, diag.SynExpectSemicolon, "after namespace name")
		p.parseNamespaceBody(false)
		return
	default:
		p.missing(token.LBrace, diag.SynExpectLBrace, "to open namespace body")
	}
	p.braces++
	p.parseNamespaceBody(true)
	p.braces--
	p.expect(token.RBrace, diag.SynExpectRBrace, "to close namespace")
	if p.at(token.Semicolon) {
		p.bump()
	}
}

func (p *Parser) parseDelegate(id syntax.NodeID) {
	p.b.SetKind(id, syntax.NodeDelegateDecl)
	p.bump() // delegate
	if !p.parseType() {
		p.missing(token.Ident, diag.SynExpectIdentifier, "for delegate return type")
	}
	if p.at(token.Ident) {
		p.bump()
	} else {
		p.missing(token.Ident, diag.SynExpectIdentifier, "for delegate name")
	}
	if p.at(token.Lt) {
		p.parseTypeParameterList()
	}
	p.parseParameterList()
	p.parseConstraints()
	p.expect(token.Semicolon, diag.SynExpectSemicolon, "after delegate declaration")
}

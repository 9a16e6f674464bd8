package parser

import (
	"cslines/internal/diag"
	"cslines/internal/syntax"
	"cslines/internal/token"
)

// maxTypeArgScan bounds the lookahead used to recognize `<...>` lists.
const maxTypeArgScan = 256

// parseType consumes a type: names with type arguments, tuples, and the
// `?`, `*`, `[]` suffixes. Nothing is consumed when no type starts here.
func (p *Parser) parseType() bool {
	switch {
	case p.at(token.LParen):
		p.bump()
		p.run(func(tok token.Token) bool {
			return tok.Kind == token.LBrace || tok.Kind == token.Semicolon
		})
		p.expect(token.RParen, diag.SynExpectRParen, "to close tuple type")
	case p.at(token.Ident):
		p.typeName()
	default:
		return false
	}
	for {
		switch {
		case p.at(token.Question), p.at(token.Star):
			p.bump()
		case p.at(token.LBracket) && p.isRankSpecifier():
			for !p.at(token.RBracket) {
				p.bump()
			}
			p.bump()
		default:
			return true
		}
	}
}

// typeName: A, A.B, global::A, A<B>.C<D>
func (p *Parser) typeName() {
	for {
		p.bump() // Ident
		if p.at(token.Lt) {
			if end, ok := p.scanTypeArgs(p.pos, false); ok {
				p.parseTypeArgs(end)
			} else {
				p.report(diag.SynUnclosedAngle, diag.SevError, p.cur().Span, "unclosed type argument list")
			}
		}
		if (p.at(token.Dot) || p.at(token.ColonColon)) && p.peek(1).Kind == token.Ident {
			p.bump()
			continue
		}
		return
	}
}

// isRankSpecifier: [] или [,,]
func (p *Parser) isRankSpecifier() bool {
	for n := 1; ; n++ {
		switch p.peek(n).Kind {
		case token.Comma:
			continue
		case token.RBracket:
			return true
		default:
			return false
		}
	}
}

// scanTypeArgs looks ahead from the '<' at index i for its matching '>'
// using only tokens that may appear inside a type argument list. With
// variance set, `in` and `out` are accepted (type parameter lists).
func (p *Parser) scanTypeArgs(i int, variance bool) (int, bool) {
	depth := 0
	for j := i; j < len(p.toks) && j < i+maxTypeArgScan; j++ {
		switch k := p.toks[j].Kind; k {
		case token.Lt:
			depth++
		case token.Gt:
			depth--
			if depth == 0 {
				return j, true
			}
		case token.Ident, token.Comma, token.Dot, token.Question, token.ColonColon, token.Star,
			token.LBracket, token.RBracket, token.LParen, token.RParen:
		case token.KwIn, token.KwOut:
			if !variance {
				return 0, false
			}
		default:
			return 0, false
		}
	}
	return 0, false
}

// followsTypeArgs: токены, после которых `<...>` в выражении считается
// списком аргументов типа.
func followsTypeArgs(k token.Kind) bool {
	switch k {
	case token.LParen, token.RParen, token.RBracket, token.RBrace, token.Colon, token.Semicolon,
		token.Comma, token.Dot, token.Question, token.EqEq, token.BangEq, token.Pipe, token.Caret,
		token.AndAnd, token.OrOr, token.Amp, token.LBracket, token.Ident, token.Gt:
		return true
	}
	return false
}

// parseTypeArgs consumes `<...>` whose closing '>' is at index end,
// re-tagging the brackets and nesting inner lists.
func (p *Parser) parseTypeArgs(end int) {
	p.b.Open(syntax.NodeTypeArgumentList)
	p.bumpAs(token.LAngle)
	for p.pos < end {
		if p.at(token.Ident) && p.peek(1).Kind == token.Lt {
			if inner, ok := p.scanTypeArgs(p.pos+1, false); ok && inner < end {
				p.bump()
				p.parseTypeArgs(inner)
				continue
			}
		}
		p.bump()
	}
	p.bumpAs(token.RAngle)
	p.b.Close()
}

// parseTypeParameterList: <T>, <in T, out U>, <[A] T>
func (p *Parser) parseTypeParameterList() {
	p.b.Open(syntax.NodeTypeParameterList)
	defer p.b.Close()
	end, ok := p.scanTypeArgs(p.pos, true)
	p.bumpAs(token.LAngle)
	if !ok {
		for p.at(token.Ident) || p.at(token.Comma) {
			p.bump()
		}
		p.missing(token.RAngle, diag.SynExpectRAngle, "to close type parameter list")
		return
	}
	for p.pos < end {
		p.bump()
	}
	p.bumpAs(token.RAngle)
}

// run consumes a delimiter-balanced token run. stop is consulted for every
// token at nesting depth 0; an unmatched closing delimiter always ends the
// run without being consumed.
func (p *Parser) run(stop func(tok token.Token) bool) {
	depth := 0
	for !p.atEOF() {
		tok := p.cur()
		if depth == 0 && stop(tok) {
			return
		}
		switch tok.Kind {
		case token.LParen, token.LBracket, token.LBrace:
			depth++
		case token.RParen, token.RBracket, token.RBrace:
			if depth == 0 {
				return
			}
			depth--
		case token.Ident:
			if p.peek(1).Kind == token.Lt {
				if end, ok := p.scanTypeArgs(p.pos+1, false); ok && followsTypeArgs(p.toks[end+1].Kind) {
					p.bump()
					p.parseTypeArgs(end)
					continue
				}
			}
		}
		p.bump()
	}
}

// declExprStop ends an expression inside a declaration at ';', optionally at
// ',', and at a declaration keyword that starts a new line (a terminator was
// forgotten).
func (p *Parser) declExprStop(comma bool) func(tok token.Token) bool {
	return func(tok token.Token) bool {
		switch {
		case tok.Kind == token.Semicolon:
			return true
		case tok.Kind == token.Comma:
			return comma
		case startsDeclaration(tok.Kind):
			return p.onNewLine(0)
		}
		return false
	}
}

func startsDeclaration(k token.Kind) bool {
	switch k {
	case token.KwPublic, token.KwPrivate, token.KwProtected, token.KwInternal, token.KwStatic,
		token.KwAbstract, token.KwSealed, token.KwVirtual, token.KwOverride, token.KwReadonly,
		token.KwConst, token.KwExtern, token.KwClass, token.KwStruct, token.KwInterface,
		token.KwEnum, token.KwNamespace, token.KwUsing, token.KwDelegate, token.KwEvent:
		return true
	}
	return false
}

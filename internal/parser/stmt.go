package parser

import (
	"cslines/internal/diag"
	"cslines/internal/syntax"
	"cslines/internal/token"
)

// parseBlock: { statement* }
// Statements are not parsed further than their token runs; nested blocks
// become Block nodes.
func (p *Parser) parseBlock() {
	p.b.Open(syntax.NodeBlock)
	p.bump() // {
	for !p.atEOF() && !p.at(token.RBrace) {
		p.parseStatement()
	}
	p.expect(token.RBrace, diag.SynExpectRBrace, "to close block")
	p.b.Close()
}

func (p *Parser) parseStatement() {
	p.b.Open(syntax.NodeStatement)
	first := p.cur().Kind
	if first == token.LBrace {
		p.parseBlock()
		p.b.Close()
		return
	}
	p.statementRest(first)
	p.b.Close()
}

// statementRest consumes tokens of the open statement up to and including
// its ';'. An unmatched '}' ends the statement without a terminator; inside
// blocks a missing ';' is not synthesized.
func (p *Parser) statementRest(first token.Kind) {
	depth := 0
	for !p.atEOF() {
		tok := p.cur()
		switch tok.Kind {
		case token.LBrace:
			p.parseBlock()
			if depth == 0 && !continuesAfterBlock(p.cur().Kind, first) {
				return
			}
			continue
		case token.LParen, token.LBracket:
			depth++
		case token.RParen, token.RBracket:
			if depth > 0 {
				depth--
			}
		case token.RBrace:
			return
		case token.Semicolon:
			if depth == 0 {
				p.bump()
				return
			}
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

// continuesAfterBlock reports whether a statement goes on after a nested
// block: else/catch/finally clauses, do-while, and blocks inside expressions
// (lambdas, initializers) followed by the rest of the expression.
func continuesAfterBlock(next, first token.Kind) bool {
	switch next {
	case token.KwElse, token.KwCatch, token.KwFinally,
		token.Semicolon, token.RParen, token.RBracket, token.Comma, token.Dot:
		return true
	case token.KwWhile:
		return first == token.KwDo
	}
	return false
}

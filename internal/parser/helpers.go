package parser

import (
	"fmt"

	"cslines/internal/diag"
	"cslines/internal/source"
	"cslines/internal/syntax"
	"cslines/internal/token"
)

func (p *Parser) cur() token.Token { return p.peek(0) }

// peek смотрит на n токенов вперёд; за концом всегда EOF.
func (p *Parser) peek(n int) token.Token {
	if i := p.pos + n; i < len(p.toks) {
		return p.toks[i]
	}
	return p.toks[len(p.toks)-1]
}

func (p *Parser) at(k token.Kind) bool { return p.cur().Kind == k }

func (p *Parser) atEOF() bool { return p.at(token.EOF) }

// atContextual reports whether the current token is an identifier spelling
// the contextual keyword k.
func (p *Parser) atContextual(k token.Kind) bool {
	return isContextual(p.cur(), k)
}

func isContextual(tok token.Token, k token.Kind) bool {
	if tok.Kind != token.Ident {
		return false
	}
	ck, ok := token.LookupContextual(tok.Text)
	return ok && ck == k
}

// onNewLine reports whether the token at offset n starts a later line than
// the last token handed to the tree.
func (p *Parser) onNewLine(n int) bool {
	return p.file.LineDifference(p.lastReal.End, p.peek(n).Span.Start) > 0
}

// bump отдаёт текущий токен в открытый узел и продвигается дальше.
func (p *Parser) bump() syntax.TokenID {
	tok := p.cur()
	if p.pos < len(p.toks) {
		p.pos++
	}
	if tok.Width() > 0 {
		p.lastReal = tok.Span
	}
	return p.b.Token(tok)
}

// bumpAs consumes the current token and re-tags it as k.
func (p *Parser) bumpAs(k token.Kind) syntax.TokenID {
	id := p.bump()
	p.b.Retag(id, k)
	return id
}

// expect consumes a token of kind k or synthesizes a zero-width one and
// reports code. It returns false when the token was synthesized.
func (p *Parser) expect(k token.Kind, code diag.Code, context string) bool {
	if p.at(k) {
		p.bump()
		return true
	}
	p.missing(k, code, context)
	return false
}

// missing appends a synthesized token of kind k at the end of the line of the
// last real token.
func (p *Parser) missing(k token.Kind, code diag.Code, context string) syntax.TokenID {
	off := p.missingOffset()
	sp := source.Span{File: p.file.ID, Start: off, End: off}
	got := p.cur().Text
	if p.atEOF() {
		got = "end of file"
	}
	p.report(code, diag.SevError, sp, fmt.Sprintf("expected '%s' %s, got %q", k, context, got))
	return p.b.Missing(k, off)
}

// missingOffset places a synthesized token after the newline that ends the
// line of the last real token, the way trailing trivia attaches to it. Without
// such a newline the token sits right after the last real token.
func (p *Parser) missingOffset() uint32 {
	content := p.file.Content
	next := p.cur().Span.Start
	off := p.lastReal.End
	i := off
	for i < next && (content[i] == ' ' || content[i] == '\t' || content[i] == '\r') {
		i++
	}
	if i+1 < next && content[i] == '/' && content[i+1] == '/' {
		for i < next && content[i] != '\n' {
			i++
		}
	}
	if i < next && content[i] == '\n' {
		return i + 1
	}
	return off
}

// skipStray wraps the current token into SkippedTokens.
func (p *Parser) skipStray(code diag.Code, msg string) {
	p.report(code, diag.SevError, p.cur().Span, msg)
	p.b.Open(syntax.NodeSkippedTokens)
	p.bump()
	p.b.Close()
}

func (p *Parser) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) {
	p.reportNotes(code, sev, sp, msg, nil)
}

func (p *Parser) reportNotes(code diag.Code, sev diag.Severity, sp source.Span, msg string, notes []diag.Note) {
	drop := false
	if sev == diag.SevError {
		drop = p.opts.Enough() // достигли максимального количества ошибок
		p.opts.currentErrors++
	}
	if drop || p.opts.Reporter == nil {
		return
	}
	p.opts.Reporter.Report(code, sev, sp, msg, notes)
}

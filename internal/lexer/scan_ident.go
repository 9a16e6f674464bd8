package lexer

import (
	"unicode/utf8"

	"cslines/internal/diag"
	"cslines/internal/token"
)

// scanIdentOrKeyword сканирует идентификатор и проверяет LookupKeyword.
// Контекстные ключевые слова остаются Ident: их переразмечает парсер.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	if !lx.scanIdentBody() {
		r, sz := lx.peekRune()
		if sz == 0 {
			return lx.emit(token.Invalid, start)
		}
		lx.bumpRune()
		tok := lx.emit(token.Invalid, start)
		lx.errLex(diag.LexUnknownChar, tok.Span, "unknown character "+quoteRune(r))
		return tok
	}
	tok := lx.emit(token.Ident, start)
	if k, ok := token.LookupKeyword(tok.Text); ok {
		tok.Kind = k
	}
	return tok
}

// scanIdentBody consumes [start continue*]; false when the cursor is not at an identifier.
func (lx *Lexer) scanIdentBody() bool {
	r, sz := lx.peekRune()
	if sz == 0 {
		return false
	}
	if r < utf8.RuneSelf {
		if !isIdentStartByte(byte(r)) {
			return false
		}
		lx.cursor.Bump()
	} else {
		if !isIdentStartRune(r) {
			return false
		}
		lx.bumpRune()
	}
	for {
		b := lx.cursor.Peek()
		if b < utf8.RuneSelf {
			if !isIdentContinueByte(b) {
				return true
			}
			lx.cursor.Bump()
			continue
		}
		r, sz := lx.peekRune()
		if sz == 0 || !isIdentContinueRune(r) {
			return true
		}
		lx.bumpRune()
	}
}

// scanPrefixed handles '@' and '$': verbatim identifiers (@class), verbatim
// strings (@"..."), and interpolated strings ($"...", $@"...", @$"...").
func (lx *Lexer) scanPrefixed() token.Token {
	start := lx.cursor.Mark()
	b0, b1, b2 := lx.cursor.Peek(), lx.cursor.PeekAt(1), lx.cursor.PeekAt(2)
	switch {
	case b0 == '@' && b1 == '"':
		lx.cursor.Bump()
		return lx.scanVerbatimBody(start, token.StringLit)
	case b0 == '$' && b1 == '"':
		lx.cursor.Bump()
		return lx.scanInterpolatedBody(start, false)
	case (b0 == '$' && b1 == '@' || b0 == '@' && b1 == '$') && b2 == '"':
		lx.cursor.Bump()
		lx.cursor.Bump()
		return lx.scanInterpolatedBody(start, true)
	case b0 == '@':
		lx.cursor.Bump()
		if lx.scanIdentBody() {
			return lx.emit(token.Ident, start)
		}
	default:
		lx.cursor.Bump()
	}
	tok := lx.emit(token.Invalid, start)
	lx.errLex(diag.LexUnknownChar, tok.Span, "unexpected "+quoteRune(rune(b0)))
	return tok
}

func quoteRune(r rune) string {
	return "'" + string(r) + "'"
}

package lexer

import (
	"cslines/internal/diag"
	"cslines/internal/token"
)

// scanString: обычная строка "..." с escape-последовательностями.
// Перевод строки внутри литерала - ошибка.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'
	if lx.quotedBody('"') {
		return lx.emit(token.StringLit, start)
	}
	tok := lx.emit(token.Invalid, start)
	lx.errLex(diag.LexUnterminatedString, tok.Span, "unterminated string literal")
	return tok
}

// scanChar: 'x', '\n', 'A'.
func (lx *Lexer) scanChar() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '\''
	if lx.quotedBody('\'') {
		return lx.emit(token.CharLit, start)
	}
	tok := lx.emit(token.Invalid, start)
	lx.errLex(diag.LexUnterminatedChar, tok.Span, "unterminated character literal")
	return tok
}

// quotedBody consumes up to and including the closing quote. It stops
// before a newline and reports false when the literal is not closed.
func (lx *Lexer) quotedBody(quote byte) bool {
	for !lx.cursor.EOF() {
		switch b := lx.cursor.Peek(); b {
		case quote:
			lx.cursor.Bump()
			return true
		case '\\':
			lx.cursor.Bump()
			if lx.cursor.Peek() == '\n' {
				return false
			}
			lx.cursor.Bump()
		case '\n':
			return false
		default:
			lx.cursor.Bump()
		}
	}
	return false
}

// scanVerbatimBody: cursor is at the opening quote of @"...". Inside, "" is an
// escaped quote and newlines are allowed.
func (lx *Lexer) scanVerbatimBody(start Mark, kind token.Kind) token.Token {
	lx.cursor.Bump() // opening '"'
	for !lx.cursor.EOF() {
		if lx.cursor.Bump() != '"' {
			continue
		}
		if lx.cursor.Peek() == '"' {
			lx.cursor.Bump()
			continue
		}
		return lx.emit(kind, start)
	}
	tok := lx.emit(token.Invalid, start)
	lx.errLex(diag.LexUnterminatedString, tok.Span, "unterminated verbatim string literal")
	return tok
}

// scanInterpolatedBody: cursor is at the opening quote. Holes {expr} are
// brace-balanced and may contain nested string literals; {{ and }} are escapes.
func (lx *Lexer) scanInterpolatedBody(start Mark, verbatim bool) token.Token {
	lx.cursor.Bump() // opening '"'
	depth := 0
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if depth == 0 {
			switch {
			case b == '"' && verbatim && lx.cursor.PeekAt(1) == '"':
				lx.cursor.Off += 2
			case b == '"':
				lx.cursor.Bump()
				return lx.emit(token.InterpolatedStringLit, start)
			case b == '\\' && !verbatim:
				lx.cursor.Bump()
				lx.cursor.Bump()
			case b == '{' && lx.cursor.PeekAt(1) == '{', b == '}' && lx.cursor.PeekAt(1) == '}':
				lx.cursor.Off += 2
			case b == '{':
				depth++
				lx.cursor.Bump()
			case b == '\n' && !verbatim:
				goto unterminated
			default:
				lx.cursor.Bump()
			}
			continue
		}
		switch b {
		case '{':
			depth++
			lx.cursor.Bump()
		case '}':
			depth--
			lx.cursor.Bump()
		case '"':
			lx.cursor.Bump()
			if !lx.quotedBody('"') {
				goto unterminated
			}
		case '\'':
			lx.cursor.Bump()
			if !lx.quotedBody('\'') {
				goto unterminated
			}
		case '\n':
			if !verbatim {
				goto unterminated
			}
			lx.cursor.Bump()
		default:
			lx.cursor.Bump()
		}
	}
unterminated:
	tok := lx.emit(token.Invalid, start)
	lx.errLex(diag.LexUnterminatedString, tok.Span, "unterminated interpolated string literal")
	return tok
}

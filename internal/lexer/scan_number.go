package lexer

import (
	"cslines/internal/diag"
	"cslines/internal/token"
)

// Поддержка: 123, 0x..., 0b..., 1.5, .5, 1e-3, разделители '_' и суффиксы
// u, l, ul, f, d, m (в любом регистре). Text хранит исходный срез целиком.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	kind := token.IntLit

	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '0' && (b1 == 'x' || b1 == 'X' || b1 == 'b' || b1 == 'B') {
		lx.cursor.Off += 2
		hex := b1 == 'x' || b1 == 'X'
		n := 0
		for {
			b := lx.cursor.Peek()
			if b == '_' || (hex && isHex(b)) || (!hex && (b == '0' || b == '1')) {
				lx.cursor.Bump()
				n++
				continue
			}
			break
		}
		if n == 0 {
			tok := lx.emit(token.Invalid, start)
			lx.errLex(diag.LexBadNumber, tok.Span, "expected digits after base prefix")
			return tok
		}
		lx.scanIntSuffix()
		return lx.emit(kind, start)
	}

	lx.digits()
	if lx.cursor.Peek() == '.' && isDec(lx.cursor.PeekAt(1)) {
		kind = token.RealLit
		lx.cursor.Bump()
		lx.digits()
	}
	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		kind = token.RealLit
		lx.cursor.Bump()
		if b := lx.cursor.Peek(); b == '+' || b == '-' {
			lx.cursor.Bump()
		}
		if !isDec(lx.cursor.Peek()) {
			tok := lx.emit(token.Invalid, start)
			lx.errLex(diag.LexBadNumber, tok.Span, "expected digit after exponent")
			return tok
		}
		lx.digits()
	}
	switch lx.cursor.Peek() {
	case 'f', 'F', 'd', 'D', 'm', 'M':
		kind = token.RealLit
		lx.cursor.Bump()
	default:
		if kind == token.IntLit {
			lx.scanIntSuffix()
		}
	}
	if isIdentContinueByte(lx.cursor.Peek()) {
		for isIdentContinueByte(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		tok := lx.emit(token.Invalid, start)
		lx.errLex(diag.LexBadNumber, tok.Span, "invalid numeric suffix")
		return tok
	}
	return lx.emit(kind, start)
}

func (lx *Lexer) digits() {
	for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
		lx.cursor.Bump()
	}
}

// u, l, ul, lu
func (lx *Lexer) scanIntSuffix() {
	for range 2 {
		switch lx.cursor.Peek() {
		case 'u', 'U', 'l', 'L':
			lx.cursor.Bump()
		default:
			return
		}
	}
}

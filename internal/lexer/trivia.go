package lexer

import (
	"cslines/internal/diag"
	"cslines/internal/token"
)

// collectLeadingTrivia собирает подряд идущие trivia перед значимым токеном.
//   - ' ', '\t', '\r', '\f', '\v' коалесцируются в один TriviaSpace
//   - подряд идущие '\n' коалесцируются в один TriviaNewline
//   - //... до \n -> TriviaLineComment, ///... -> TriviaDocLine
//   - /* ... */ -> TriviaBlockComment (без вложенности, как в C#)
//   - '#' в начале строки -> TriviaPreprocessor до конца строки
func (lx *Lexer) collectLeadingTrivia() {
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		switch b := lx.cursor.Peek(); {
		case isSpace(b):
			for isSpace(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
			lx.pushTrivia(token.TriviaSpace, start)

		case b == '\n':
			for lx.cursor.Peek() == '\n' {
				lx.cursor.Bump()
			}
			lx.pushTrivia(token.TriviaNewline, start)

		case b == '/' && lx.cursor.PeekAt(1) == '/':
			kind := token.TriviaLineComment
			if lx.cursor.PeekAt(2) == '/' && lx.cursor.PeekAt(3) != '/' {
				kind = token.TriviaDocLine
			}
			lx.cursor.SkipLine()
			lx.pushTrivia(kind, start)

		case b == '/' && lx.cursor.PeekAt(1) == '*':
			lx.scanBlockComment(start)

		case b == '#' && lx.cursor.AtLineStart():
			lx.cursor.SkipLine()
			lx.pushTrivia(token.TriviaPreprocessor, start)

		default:
			return
		}
	}
}

func (lx *Lexer) scanBlockComment(start Mark) {
	lx.cursor.Bump()
	lx.cursor.Bump()
	for {
		if lx.cursor.EOF() {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexUnterminatedBlockComment, sp, "unterminated block comment")
			break
		}
		if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '*' && b1 == '/' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			break
		}
		lx.cursor.Bump()
	}
	lx.pushTrivia(token.TriviaBlockComment, start)
}

func (lx *Lexer) pushTrivia(kind token.TriviaKind, start Mark) {
	sp := lx.cursor.SpanFrom(start)
	lx.hold = append(lx.hold, token.Trivia{Kind: kind, Span: sp, Text: lx.text(sp)})
}

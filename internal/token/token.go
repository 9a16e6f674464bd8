package token

import (
	"cslines/internal/source"
)

// Token represents a single source token with its location and trivia.
// Missing tokens are synthesized by the parser to keep the tree shape valid;
// they carry no text and have an empty span.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
	Missing bool
}

// Width returns the number of source bytes the token covers.
// Missing and EOF tokens have zero width.
func (t Token) Width() int {
	return int(t.Span.Len())
}

// IsLiteral reports whether the token is a numeric, string, or character literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, RealLit, StringLit, InterpolatedStringLit, CharLit, KwNull, KwTrue, KwFalse:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a reserved or (re-tagged) contextual keyword.
func (t Token) IsKeyword() bool {
	return t.Kind >= KwNamespace && t.Kind <= KwGlobal
}

// IsPunctOrOp reports whether the token is a punctuation or operator.
func (t Token) IsPunctOrOp() bool {
	return t.Kind >= Plus && t.Kind <= RAngle
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// IsDelimiter reports whether k opens or closes a brace, bracket, paren, or angle pair.
func (k Kind) IsDelimiter() bool {
	return k.IsOpenDelimiter() || k.IsCloseDelimiter()
}

// IsOpenDelimiter reports whether k opens a paired delimiter.
func (k Kind) IsOpenDelimiter() bool {
	switch k {
	case LBrace, LBracket, LParen, LAngle:
		return true
	}
	return false
}

// IsCloseDelimiter reports whether k closes a paired delimiter.
func (k Kind) IsCloseDelimiter() bool {
	switch k {
	case RBrace, RBracket, RParen, RAngle:
		return true
	}
	return false
}

// IsAccessorKeyword reports whether k introduces a property or event accessor.
func (k Kind) IsAccessorKeyword() bool {
	switch k {
	case KwGet, KwSet, KwInit, KwAdd, KwRemove:
		return true
	}
	return false
}

// IsModifier reports whether k is a declaration modifier.
func (k Kind) IsModifier() bool {
	switch k {
	case KwPublic, KwPrivate, KwProtected, KwInternal, KwStatic, KwAbstract, KwSealed,
		KwVirtual, KwOverride, KwReadonly, KwConst, KwExtern, KwUnsafe, KwVolatile,
		KwNew, KwPartial, KwAsync:
		return true
	}
	return false
}

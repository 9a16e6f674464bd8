package token

import "cslines/internal/source"

type TriviaKind uint8

const (
	TriviaSpace TriviaKind = iota
	TriviaNewline
	TriviaLineComment
	TriviaBlockComment
	TriviaDocLine
	// TriviaPreprocessor covers a whole '#...' line (#region, #if, #nullable, ...).
	TriviaPreprocessor
)

func (k TriviaKind) String() string {
	switch k {
	case TriviaSpace:
		return "Space"
	case TriviaNewline:
		return "Newline"
	case TriviaLineComment:
		return "LineComment"
	case TriviaBlockComment:
		return "BlockComment"
	case TriviaDocLine:
		return "DocLine"
	case TriviaPreprocessor:
		return "Preprocessor"
	}
	return "Trivia(?)"
}

// IsComment reports whether the trivia carries text a formatter must not drop.
func (k TriviaKind) IsComment() bool {
	return k != TriviaSpace && k != TriviaNewline
}

type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}

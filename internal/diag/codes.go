package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Лексические
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004
	LexUnterminatedChar         Code = 1005
	LexTokenTooLong             Code = 1006

	// Парсерные
	SynInfo               Code = 2000
	SynUnexpectedToken    Code = 2001
	SynExpectSemicolon    Code = 2002
	SynExpectRBrace       Code = 2003
	SynExpectRParen       Code = 2004
	SynExpectRBracket     Code = 2005
	SynExpectIdentifier   Code = 2006
	SynExpectLBrace       Code = 2007
	SynExpectAccessor     Code = 2008
	SynUnexpectedTopLevel Code = 2009
	SynUnclosedAngle      Code = 2010
	SynExpectRAngle       Code = 2011

	// I/O
	IOLoadFileError Code = 4001
	IOWriteError    Code = 4002
)

var codeDescription = map[Code]string{
	UnknownCode:                 "Unknown error",
	LexInfo:                     "Lexical information",
	LexUnknownChar:              "Unknown character",
	LexUnterminatedString:       "Unterminated string literal",
	LexUnterminatedBlockComment: "Unterminated block comment",
	LexBadNumber:                "Malformed numeric literal",
	LexUnterminatedChar:         "Unterminated character literal",
	LexTokenTooLong:             "Token exceeds maximum length",
	SynInfo:                     "Syntax information",
	SynUnexpectedToken:          "Unexpected token",
	SynExpectSemicolon:          "Missing semicolon",
	SynExpectRBrace:             "Missing closing brace",
	SynExpectRParen:             "Missing closing parenthesis",
	SynExpectRBracket:           "Missing closing bracket",
	SynExpectIdentifier:         "Expected identifier",
	SynExpectLBrace:             "Expected opening brace",
	SynExpectAccessor:           "Expected accessor declaration",
	SynUnexpectedTopLevel:       "Unexpected token at declaration level",
	SynUnclosedAngle:            "Unclosed type argument list",
	SynExpectRAngle:             "Missing closing angle bracket",
	IOLoadFileError:             "Failed to load file",
	IOWriteError:                "Failed to write file",
}

// ID returns the stable textual identifier of the code (LEX1001, SYN2002, ...).
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	default:
		return fmt.Sprintf("E%04d", ic)
	}
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}

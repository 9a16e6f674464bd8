package lexer

import (
	"cslines/internal/diag"
	"cslines/internal/source"
)

// maxTokenLength bounds a single token; longer input is reported and the rest
// of the file is skipped.
const maxTokenLength = 1 << 16

type Options struct {
	Reporter diag.Reporter // может быть nil - ошибки тогда игнорируются
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}

package parser

import (
	"fmt"

	"cslines/internal/diag"
	"cslines/internal/lexer"
	"cslines/internal/source"
	"cslines/internal/syntax"
	"cslines/internal/token"
)

type Options struct {
	MaxErrors uint
	Reporter  diag.Reporter

	currentErrors uint
}

// Enough - проверить, достигли ли мы максимального количества ошибок
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.currentErrors >= o.MaxErrors
}

type Result struct {
	Tree *syntax.Tree
	// Errors counts error diagnostics from both the lexer and the parser,
	// including those dropped by MaxErrors.
	Errors uint
}

// Parser - состояние парсера на один файл
type Parser struct {
	file     *source.File
	toks     []token.Token // весь поток токенов, последний - EOF
	pos      int
	b        *syntax.Builder
	opts     Options
	lastReal source.Span // span последнего реального токена, отданного в дерево
	braces   int         // глубина вложенных блочных namespace
}

// ParseFile lexes and parses one file. Syntax errors never fail the call:
// they are reported and the tree is completed with synthesized tokens.
// An error is returned only if the assembled tree is inconsistent.
func ParseFile(file *source.File, opts Options) (Result, error) {
	p := &Parser{file: file, opts: opts}
	lx := lexer.New(file, lexer.Options{Reporter: lexReporter{p: p}})
	p.toks = lx.All()
	p.b = syntax.NewBuilder(file, len(p.toks)+8)
	p.lastReal = source.Span{File: file.ID}

	p.parseCompilationUnit()

	tree, err := p.b.Finish()
	if err != nil {
		return Result{Errors: p.opts.currentErrors}, fmt.Errorf("parse %s: %w", file.Path, err)
	}
	return Result{Tree: tree, Errors: p.opts.currentErrors}, nil
}

// lexReporter routes lexer diagnostics through the parser's error budget.
type lexReporter struct{ p *Parser }

func (r lexReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note) {
	r.p.reportNotes(code, sev, primary, msg, notes)
}

// parseCompilationUnit - usings, атрибуты сборки, члены; в конце EOF.
func (p *Parser) parseCompilationUnit() {
	p.b.Open(syntax.NodeCompilationUnit)
	p.parseNamespaceBody(false)
	p.bump() // EOF
	p.b.Close()
}

// parseNamespaceBody parses usings and members of a compilation unit or
// namespace. When braced it stops before '}'; otherwise it runs to EOF.
func (p *Parser) parseNamespaceBody(braced bool) {
	for !p.atEOF() {
		if braced && p.at(token.RBrace) {
			return
		}
		switch {
		case p.at(token.KwUsing) && p.isUsingDirective(0):
			p.parseUsingDirective(0)
		case p.atContextual(token.KwGlobal) && p.peek(1).Kind == token.KwUsing:
			p.parseUsingDirective(1)
		case p.at(token.LBracket) && p.isGlobalAttribute():
			p.parseAttributeList()
		case p.at(token.RBrace):
			p.skipStray(diag.SynUnexpectedTopLevel, "unexpected '}'")
		default:
			p.parseMember(scope{kind: scopeNamespace})
		}
	}
}

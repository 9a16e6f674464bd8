package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"fortio.org/safecast"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"cslines/internal/diag"
	"cslines/internal/source"
)

// Pretty форматирует диагностики в человекочитаемый вид.
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes.
// Цвет включается опцией.
func Pretty(w io.Writer, diags []diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) error {
	p := printer{w: w, fs: fs, opts: opts}
	for _, d := range diags {
		p.diagnostic(d)
		if p.err != nil {
			return p.err
		}
	}
	return nil
}

type printer struct {
	w    io.Writer
	fs   *source.FileSet
	opts PrettyOpts
	err  error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) paint(c *color.Color, s string) string {
	if !p.opts.Color {
		return s
	}
	c.EnableColor()
	return c.Sprint(s)
}

func (p *printer) diagnostic(d diag.Diagnostic) {
	f := p.file(d.Primary)
	sev := p.paint(severityColor(d.Severity), d.Severity.String())
	if f != nil {
		pos := f.LineCol(d.Primary.Start)
		p.printf("%s:%d:%d: %s %s: %s\n", f.Path, pos.Line, pos.Col, sev, d.Code.ID(), d.Message)
		p.excerpt(f, d.Primary, severityColor(d.Severity))
	} else {
		p.printf("%s %s: %s\n", sev, d.Code.ID(), d.Message)
	}
	if !p.opts.ShowNotes {
		return
	}
	for _, n := range d.Notes {
		nf := p.file(n.Span)
		if nf == nil {
			p.printf("  note: %s\n", n.Msg)
			continue
		}
		pos := nf.LineCol(n.Span.Start)
		p.printf("  note: %s:%d:%d: %s\n", nf.Path, pos.Line, pos.Col, n.Msg)
	}
}

func (p *printer) file(sp source.Span) *source.File {
	if p.fs == nil {
		return nil
	}
	return p.fs.Get(sp.File)
}

func (p *printer) excerpt(f *source.File, sp source.Span, c *color.Color) {
	start, end := f.LineCol(sp.Start), f.LineCol(sp.End)
	ctx, err := safecast.Conv[uint32](max(p.opts.Context, 0))
	if err != nil {
		ctx = 0
	}
	first := uint32(1)
	if start.Line > ctx {
		first = start.Line - ctx
	}
	last := start.Line + ctx
	if maxLine := uint32(len(f.LineIdx) + 1); last > maxLine { // #nosec G115 -- bounded by Add
		last = maxLine
	}
	gutter := len(fmt.Sprint(last))
	for line := first; line <= last; line++ {
		text := expandTabs(f.GetLine(line))
		p.printf(" %*d | %s\n", gutter, line, text)
		if line != start.Line {
			continue
		}
		width := 1
		if end.Line == start.Line && end.Col > start.Col {
			width = int(end.Col - start.Col)
		}
		mark := "^" + strings.Repeat("~", width-1)
		col := displayColumn(f.GetLine(line), int(start.Col))
		p.printf(" %*s | %s%s\n", gutter, "", strings.Repeat(" ", col), p.paint(c, mark))
	}
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return color.New(color.FgRed, color.Bold)
	case diag.SevWarning:
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgCyan)
	}
}

const tabWidth = 4

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth))
}

// displayColumn converts a 1-based byte column into a 0-based screen offset
// matching expandTabs.
func displayColumn(line string, col int) int {
	end := min(max(col-1, 0), len(line))
	return runewidth.StringWidth(expandTabs(line[:end]))
}

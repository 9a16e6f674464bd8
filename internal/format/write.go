package format

import (
	"bytes"

	"cslines/internal/source"
)

// Writer accumulates formatted output and provides helpers for copying source
// fragments and emitting line breaks.
type Writer struct {
	sf  *source.File
	buf []byte
	nl  string
}

// NewWriter creates a new formatting writer.
func NewWriter(sf *source.File) *Writer {
	nl := "\n"
	// файл с CRLF получает CRLF и в перестроенных промежутках
	if bytes.Contains(sf.Content, []byte("\r\n")) {
		nl = "\r\n"
	}
	return &Writer{
		sf:  sf,
		buf: make([]byte, 0, len(sf.Content)+len(sf.Content)/8),
		nl:  nl,
	}
}

// Bytes returns the accumulated formatted output.
func (w *Writer) Bytes() []byte { return w.buf }

// Len is the current output offset.
func (w *Writer) Len() int { return len(w.buf) }

// WriteString writes s as is.
func (w *Writer) WriteString(s string) {
	w.buf = append(w.buf, s...)
}

// Space writes a single space if the output doesn't already end with whitespace.
func (w *Writer) Space() {
	if len(w.buf) == 0 {
		return
	}
	last := w.buf[len(w.buf)-1]
	if last == ' ' || last == '\n' || last == '\t' {
		return
	}
	w.buf = append(w.buf, ' ')
}

// Newlines writes k line breaks in the file's newline style followed by
// indent. Trailing blanks already in the output are dropped first.
func (w *Writer) Newlines(k int, indent string) {
	w.buf = bytes.TrimRight(w.buf, " \t")
	for range k {
		w.buf = append(w.buf, w.nl...)
	}
	w.buf = append(w.buf, indent...)
}

// CopyRange copies a range of bytes from the source file to the output.
func (w *Writer) CopyRange(start, end int) {
	if start < 0 {
		start = 0
	}
	if end > len(w.sf.Content) {
		end = len(w.sf.Content)
	}
	if start >= end {
		return
	}
	w.buf = append(w.buf, w.sf.Content[start:end]...)
}

// CopySpan copies a span from the source file to the output.
func (w *Writer) CopySpan(sp source.Span) {
	if sp.File != w.sf.ID {
		return
	}
	w.CopyRange(int(sp.Start), int(sp.End))
}

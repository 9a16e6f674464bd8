package source

import (
	"fortio.org/safecast"
)

// Line returns the 0-based line containing byte offset off.
// An offset equal to a '\n' belongs to the line that newline terminates.
func (f *File) Line(off uint32) int {
	// бинпоиск: число переводов строки строго левее off
	lo, hi := 0, len(f.LineIdx)
	for lo < hi {
		mid := (lo + hi) >> 1
		if f.LineIdx[mid] < off {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// LineStart returns the byte offset at which the 0-based line begins.
func (f *File) LineStart(line int) uint32 {
	if line <= 0 || len(f.LineIdx) == 0 {
		return 0
	}
	if line > len(f.LineIdx) {
		line = len(f.LineIdx)
	}
	return f.LineIdx[line-1] + 1
}

// LineCol converts a byte offset into a 1-based line/column pair.
func (f *File) LineCol(off uint32) LineCol {
	line := f.Line(off)
	start := f.LineStart(line)
	l, err := safecast.Conv[uint32](line + 1)
	if err != nil {
		l = 0
	}
	return LineCol{Line: l, Col: off - start + 1}
}

// LineDifference reports how many line breaks separate offset from and offset to.
// It is zero when both offsets are on the same line or to precedes from.
func (f *File) LineDifference(from, to uint32) int {
	if to <= from {
		return 0
	}
	return f.Line(to) - f.Line(from)
}

// Indentation returns the run of spaces and tabs that opens the line containing off.
func (f *File) Indentation(off uint32) string {
	start := f.LineStart(f.Line(off))
	end := start
	for int(end) < len(f.Content) {
		b := f.Content[end]
		if b != ' ' && b != '\t' {
			break
		}
		end++
	}
	return string(f.Content[start:end])
}

// GetLine returns the text of the 1-based line without its terminating newline.
func (f *File) GetLine(lineNum uint32) string {
	if lineNum == 0 || int(lineNum) > len(f.LineIdx)+1 {
		return ""
	}
	start := f.LineStart(int(lineNum) - 1)
	end := uint32(len(f.Content)) // #nosec G115 -- bounded by Add
	if int(lineNum)-1 < len(f.LineIdx) {
		end = f.LineIdx[lineNum-1]
	}
	if start > end {
		return ""
	}
	return string(f.Content[start:end])
}

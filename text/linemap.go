package text

import (
	"golang.org/x/exp/slices"
)

// LineMap records the byte offset of every line break in a text. It is
// immutable after construction.
//
// A line break is a bare LF, a bare CR, or CR LF (recorded once, at the LF).
// The break character is the last character of the line it terminates.
type LineMap struct {
	lineBreaks []int
}

// NewLineMap creates a LineMap from a strictly increasing list of line break
// offsets.
func NewLineMap(lineBreaks []int) *LineMap {
	return &LineMap{lineBreaks: slices.Clone(lineBreaks)}
}

// ParseLineMap scans text once and records its line breaks.
// Undecodable bytes are stepped over one at a time; they never form a break.
func ParseLineMap(text []byte) *LineMap {
	var (
		lineBreaks []int
		lastChar   rune
		lastIdx    int
	)

	for idx := 0; idx < len(text); {
		c, n, ok := DecodeRune(text[idx:])
		if !ok {
			c, n = -1, 1
		}

		if lastChar == '\r' && c != '\n' {
			lineBreaks = append(lineBreaks, lastIdx)
		}
		if c == '\n' {
			lineBreaks = append(lineBreaks, idx)
		}

		lastChar, lastIdx = c, idx
		idx += n
	}

	if lastChar == '\r' {
		lineBreaks = append(lineBreaks, lastIdx)
	}

	return &LineMap{lineBreaks: lineBreaks}
}

// LineBreaks returns the recorded line break offsets. The slice must not be
// modified.
func (m *LineMap) LineBreaks() []int {
	return m.lineBreaks
}

// LineCount returns the number of lines, counting the (possibly empty) line
// after the last break.
func (m *LineMap) LineCount() int {
	return len(m.lineBreaks) + 1
}

// MapOffset maps a byte offset to a 0-based (line, column) pair. The column
// is a byte offset from the start of the line.
func (m *LineMap) MapOffset(offset int) (line, column int) {
	// A hit means offset is a break and belongs to the line it ends; a miss
	// yields the insertion point, which is the number of breaks before it.
	line, _ = slices.BinarySearch(m.lineBreaks, offset)

	if line == 0 {
		return 0, offset
	}
	return line, offset - m.lineBreaks[line-1] - 1
}

// LineStart returns the byte offset at which line begins.
func (m *LineMap) LineStart(line int) int {
	if line <= 0 {
		return 0
	}
	if line > len(m.lineBreaks) {
		line = len(m.lineBreaks)
	}
	return m.lineBreaks[line-1] + 1
}

// LineBounds returns the byte range of line's content within text (the
// buffer the map was parsed from), excluding its terminating CR, LF or CR LF.
func (m *LineMap) LineBounds(line int, text []byte) Span {
	start := m.LineStart(line)
	end := len(text)
	if line >= 0 && line < len(m.lineBreaks) {
		end = m.lineBreaks[line]
		if end > start && end < len(text) && text[end] == '\n' && text[end-1] == '\r' {
			end--
		}
	}
	if start > end {
		start = end
	}
	return Span{Start: start, End: end}
}

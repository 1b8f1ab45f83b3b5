// Package text provides the scanning primitives of the whylang front end:
// a validating UTF-8 decoder, half-open byte spans, a scanning window with
// lookahead and backtracking, and a line map used to present diagnostics.
//
// All types operate on raw bytes. Nothing in this package assumes the input
// has been validated as UTF-8 beforehand; the window validates every scalar
// value as it is consumed.
package text

import "fmt"

// Span represents a half-open range [Start, End) of byte offsets in a source
// buffer.
type Span struct {
	Start int // Starting byte offset (inclusive)
	End   int // Ending byte offset (exclusive)
}

// NewSpan creates a span. It panics if start > end.
func NewSpan(start, end int) Span {
	if start > end {
		panic(fmt.Sprintf("text: invalid span %d..%d", start, end))
	}
	return Span{Start: start, End: end}
}

// Len returns the length of the span in bytes.
func (s Span) Len() int {
	return s.End - s.Start
}

// IsEmpty reports whether the span covers no bytes.
func (s Span) IsEmpty() bool {
	return s.Start == s.End
}

// Contains reports whether offset lies inside the span.
func (s Span) Contains(offset int) bool {
	return offset >= s.Start && offset < s.End
}

// Text extracts the source text for this span (zero-copy slice converted to
// a string). Returns an empty string if the span lies outside source.
func (s Span) Text(source []byte) string {
	if s.Start < 0 || s.End < s.Start || s.End > len(source) {
		return ""
	}
	return string(source[s.Start:s.End])
}

func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}

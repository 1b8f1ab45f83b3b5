package ast

import (
	"io"
	"strings"
)

// SexprWriter writes expressions as s-expressions, e.g. (+ 40 (* 2 3)).
type SexprWriter struct {
	w         io.Writer
	indented  bool
	startExpr bool
	depth     int
	err       error
}

// SexprOption configures a SexprWriter.
type SexprOption func(*SexprWriter)

// WithIndent starts every nested expression on its own line, indented two
// spaces per level.
func WithIndent() SexprOption {
	return func(s *SexprWriter) {
		s.indented = true
	}
}

// NewSexprWriter creates a writer that outputs to w.
func NewSexprWriter(w io.Writer, opts ...SexprOption) *SexprWriter {
	s := &SexprWriter{w: w, startExpr: true}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// StartExpression opens a list.
func (s *SexprWriter) StartExpression() {
	switch {
	case s.indented && s.depth > 0:
		s.write("\n")
		s.write(strings.Repeat("  ", s.depth))
	case !s.startExpr:
		s.write(" ")
	}

	s.write("(")
	s.startExpr = true
	s.depth++
}

// EndExpression closes the innermost open list.
func (s *SexprWriter) EndExpression() {
	s.write(")")
	s.startExpr = false
	s.depth--
}

// WriteAtom writes a single atom, separated from the previous one by a
// space.
func (s *SexprWriter) WriteAtom(atom string) {
	if !s.startExpr {
		s.write(" ")
	}
	s.write(atom)
	s.startExpr = false
}

// WriteExpression writes e and returns the first write error encountered
// by this writer.
func (s *SexprWriter) WriteExpression(e Expression) error {
	s.writeExpression(e)
	return s.err
}

func (s *SexprWriter) writeExpression(e Expression) {
	switch e := e.(type) {
	case *Constant:
		s.WriteAtom(e.Value.String())
	case *Binary:
		s.StartExpression()
		s.WriteAtom(e.Op.Symbol())
		s.writeExpression(e.Left)
		s.writeExpression(e.Right)
		s.EndExpression()
	}
}

func (s *SexprWriter) write(str string) {
	if s.err != nil {
		return
	}
	_, s.err = io.WriteString(s.w, str)
}

// Err returns the first write error.
func (s *SexprWriter) Err() error {
	return s.err
}

// Sexpr renders e as a compact s-expression.
func Sexpr(e Expression) string {
	var buf strings.Builder
	_ = NewSexprWriter(&buf).WriteExpression(e)
	return buf.String()
}

// Package errors renders tokenizer and parser errors against the document
// they refer to. It separates presentation from the front end, so the same
// error can be printed for a terminal (TextFormatter) or emitted as
// structured JSON (JSONFormatter).
//
// Errors are located through the GetSpan method implemented by
// *parser.ParseError, *tokenizer.Error and *text.InvalidTextError. The byte
// offset of the span is mapped to a line and column with the document's
// line map.
package errors

import (
	"bytes"
	"encoding/json"
	stdErrors "errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"

	"github.com/robinvdvleuten/whylang/parser"
	"github.com/robinvdvleuten/whylang/text"
	"github.com/robinvdvleuten/whylang/tokenizer"
)

// Formatter formats errors for output in different formats.
type Formatter interface {
	// Format formats a single error.
	Format(err error) string

	// FormatAll formats multiple errors.
	FormatAll(errs []error) string
}

// Spanned is implemented by errors that refer to a byte range of the source.
type Spanned interface {
	error
	GetSpan() text.Span
}

// Diagnostic is an error resolved to a human-readable location.
type Diagnostic struct {
	Path    string
	Line    int // 1-based
	Column  int // 1-based, in characters
	Span    text.Span
	Message string
	Source  string // the source line, without its terminator

	byteColumn int
}

// Locate resolves err to a position in doc. It reports false if no error in
// the chain carries a span.
func Locate(doc *text.Document, err error) (Diagnostic, bool) {
	var spanned Spanned
	if doc == nil || !stdErrors.As(err, &spanned) {
		return Diagnostic{}, false
	}

	span := spanned.GetSpan()
	content := doc.Content()
	if span.Start > len(content) {
		return Diagnostic{}, false
	}

	line, column := doc.Position(span.Start)
	source := doc.Line(line)
	prefix := content[span.Start-column : span.Start]

	return Diagnostic{
		Path:    doc.Path(),
		Line:    line + 1,
		Column:  utf8.RuneCount(prefix) + 1,
		Span:    span,
		Message: message(spanned),
		Source:  source,

		byteColumn: column,
	}, true
}

// message strips the location prefix that ParseError.Error and
// tokenizer.Error.Error add, since a Diagnostic reports it separately.
func message(err error) string {
	switch e := err.(type) {
	case *parser.ParseError:
		return e.Message
	case *tokenizer.Error:
		return e.Err.Error()
	}
	return err.Error()
}

// Caret returns the marker line drawn under d.Source: padding up to the
// error column followed by one '^' per display cell of the span on that
// line, at least one. Tabs in the padding are kept so the marker lines up.
func (d Diagnostic) Caret() (padding, marker string) {
	col := min(d.byteColumn, len(d.Source))

	var pad strings.Builder
	for _, r := range d.Source[:col] {
		if r == '\t' {
			pad.WriteByte('\t')
			continue
		}
		pad.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}

	width := 1
	if end := min(col+d.Span.Len(), len(d.Source)); end > col {
		width = max(1, runewidth.StringWidth(d.Source[col:end]))
	}
	return pad.String(), strings.Repeat("^", width)
}

// TextFormatter formats errors for command-line output:
//
//	input.why:1:5: unexpected identifier "x", expected a number
//	   1 + x
//	       ^
type TextFormatter struct {
	doc *text.Document
}

// NewTextFormatter creates a text formatter resolving errors against doc.
// doc may be nil, in which case errors are printed without location.
func NewTextFormatter(doc *text.Document) *TextFormatter {
	return &TextFormatter{doc: doc}
}

// Format formats a single error.
func (tf *TextFormatter) Format(err error) string {
	d, ok := Locate(tf.doc, err)
	if !ok {
		return err.Error()
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s:%d:%d: %s\n", d.Path, d.Line, d.Column, d.Message)

	padding, marker := d.Caret()
	buf.WriteString("   ")
	buf.WriteString(d.Source)
	buf.WriteString("\n   ")
	buf.WriteString(padding)
	buf.WriteString(marker)
	return buf.String()
}

// FormatAll formats multiple errors, separating them with blank lines.
func (tf *TextFormatter) FormatAll(errs []error) string {
	if len(errs) == 0 {
		return ""
	}

	var buf bytes.Buffer
	for i, err := range errs {
		buf.WriteString(tf.Format(err))

		if i < len(errs)-1 {
			buf.WriteString("\n\n")
		}
	}

	return buf.String()
}

// JSONFormatter formats errors as JSON.
type JSONFormatter struct {
	doc *text.Document
}

// NewJSONFormatter creates a JSON formatter resolving errors against doc.
func NewJSONFormatter(doc *text.Document) *JSONFormatter {
	return &JSONFormatter{doc: doc}
}

// ErrorJSON represents an error in JSON format.
type ErrorJSON struct {
	Type     string        `json:"type"`
	Message  string        `json:"message"`
	Position *PositionJSON `json:"position,omitempty"`
}

// PositionJSON represents a source position in JSON format.
type PositionJSON struct {
	Filename string `json:"filename"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Offset   int    `json:"offset"`
	End      int    `json:"end"`
}

// Format formats a single error as JSON.
func (jf *JSONFormatter) Format(err error) string {
	data, _ := json.Marshal(jf.toJSON(err))
	return string(data)
}

// FormatAll formats multiple errors as a JSON array.
func (jf *JSONFormatter) FormatAll(errs []error) string {
	data, _ := json.MarshalIndent(jf.FormatAllToSlice(errs), "", "  ")
	return string(data)
}

// FormatAllToSlice returns errors as a slice of ErrorJSON structs.
func (jf *JSONFormatter) FormatAllToSlice(errs []error) []ErrorJSON {
	result := make([]ErrorJSON, 0, len(errs))
	for _, err := range errs {
		result = append(result, jf.toJSON(err))
	}
	return result
}

func (jf *JSONFormatter) toJSON(err error) ErrorJSON {
	errJSON := ErrorJSON{
		Type:    kind(err),
		Message: err.Error(),
	}

	if d, ok := Locate(jf.doc, err); ok {
		errJSON.Message = d.Message
		errJSON.Position = &PositionJSON{
			Filename: d.Path,
			Line:     d.Line,
			Column:   d.Column,
			Offset:   d.Span.Start,
			End:      d.Span.End,
		}
	}

	return errJSON
}

// kind names the most specific failure in err's chain.
func kind(err error) string {
	switch {
	case stdErrors.Is(err, text.ErrInvalidText):
		return "invalid_text"
	case stdErrors.Is(err, tokenizer.ErrNumberFormat):
		return "number_format"
	case stdErrors.Is(err, parser.ErrUnexpectedEndOfFile):
		return "unexpected_end_of_file"
	case stdErrors.Is(err, parser.ErrNoViablePrimary):
		return "no_viable_primary"
	case stdErrors.Is(err, parser.ErrTrailingInput):
		return "trailing_input"
	}
	return "error"
}

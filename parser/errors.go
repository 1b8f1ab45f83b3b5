package parser

import (
	"errors"
	"fmt"

	"github.com/robinvdvleuten/whylang/text"
	"github.com/robinvdvleuten/whylang/tokenizer"
)

var (
	// ErrUnexpectedEndOfFile is reported when the token stream ends where an
	// expression was required.
	ErrUnexpectedEndOfFile = errors.New("unexpected end of file")

	// ErrNoViablePrimary is reported when a token that cannot start a primary
	// expression appears where one was required.
	ErrNoViablePrimary = errors.New("no viable primary expression")

	// ErrTrailingInput is reported by ExpectEnd when tokens remain after an
	// expression.
	ErrTrailingInput = errors.New("unexpected trailing input")
)

// ParseError represents a syntax error during parsing.
type ParseError struct {
	Filename   string
	Span       text.Span
	Message    string
	Underlying error
}

func (e *ParseError) Error() string {
	if e.Filename == "" {
		return fmt.Sprintf("offset %d: %s", e.Span.Start, e.Message)
	}
	return fmt.Sprintf("%s: offset %d: %s", e.Filename, e.Span.Start, e.Message)
}

// GetSpan returns the byte range the error refers to.
func (e *ParseError) GetSpan() text.Span {
	return e.Span
}

func (e *ParseError) Unwrap() error {
	return e.Underlying
}

// newErrorf creates a ParseError at span wrapping cause.
func newErrorf(filename string, span text.Span, cause error, format string, args ...any) *ParseError {
	return &ParseError{
		Filename:   filename,
		Span:       span,
		Message:    fmt.Sprintf(format, args...),
		Underlying: cause,
	}
}

// wrapTokenizerError turns a failure pulled from the token stream into a
// ParseError that keeps the tokenizer error in its chain. Errors without a
// span of their own are placed at offset at.
func wrapTokenizerError(filename string, err error, at int) *ParseError {
	var tokErr *tokenizer.Error
	if errors.As(err, &tokErr) {
		return newErrorf(filename, tokErr.Span, err, "%v", tokErr.Err)
	}
	return newErrorf(filename, text.NewSpan(at, at), err, "%v", err)
}

// describeToken renders tok for use in an error message.
func describeToken(tok tokenizer.Token) string {
	switch tok.Kind {
	case tokenizer.NUMBER:
		return "number " + tok.Value.String()
	case tokenizer.IDENTIFIER:
		return "identifier " + tok.Value.String()
	case tokenizer.KEYWORD:
		return "keyword " + tok.Value.String()
	case tokenizer.UNKNOWN:
		return "unknown character"
	default:
		return fmt.Sprintf("%q", tok.Kind.String())
	}
}

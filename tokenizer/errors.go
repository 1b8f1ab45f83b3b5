package tokenizer

import (
	"errors"
	"fmt"

	"github.com/robinvdvleuten/whylang/text"
)

// ErrNumberFormat indicates a numeric token could not be represented as a
// 64-bit signed integer.
var ErrNumberFormat = errors.New("invalid number")

// Error is a tokenizer failure at a location in the source. It wraps the
// underlying text or number format error.
type Error struct {
	Span text.Span
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("offset %d: %v", e.Span.Start, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// GetSpan returns the location of the failure.
func (e *Error) GetSpan() text.Span {
	return e.Span
}

// NumberFormatError reports numeric token text that failed to parse.
type NumberFormatError struct {
	Text string
	Err  error // usually a *strconv.NumError
}

func (e *NumberFormatError) Error() string {
	return fmt.Sprintf("invalid number %q: %v", e.Text, errors.Unwrap(e.Err))
}

func (e *NumberFormatError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrNumberFormat) hold for every NumberFormatError.
func (e *NumberFormatError) Is(target error) bool {
	return target == ErrNumberFormat
}

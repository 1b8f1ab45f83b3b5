package text

import (
	"errors"
	"fmt"
	"io"
)

var (
	// ErrInvalidText indicates a byte sequence could not be decoded as UTF-8.
	ErrInvalidText = errors.New("invalid UTF-8 text")

	// ErrEndOfFile indicates an operation required at least one more
	// character or token and none was available. It is io.EOF so that pull
	// loops can test for it the way they test any Go reader.
	ErrEndOfFile = io.EOF
)

// InvalidTextError reports the offset of an undecodable byte sequence.
type InvalidTextError struct {
	Offset int
	Byte   byte // leading byte of the rejected sequence
}

func (e *InvalidTextError) Error() string {
	return fmt.Sprintf("invalid UTF-8 sequence starting with 0x%02X at offset %d", e.Byte, e.Offset)
}

// Is makes errors.Is(err, ErrInvalidText) hold for every InvalidTextError.
func (e *InvalidTextError) Is(target error) bool {
	return target == ErrInvalidText
}

// GetSpan returns the one-byte span of the rejected leading byte.
func (e *InvalidTextError) GetSpan() Span {
	return Span{Start: e.Offset, End: e.Offset + 1}
}

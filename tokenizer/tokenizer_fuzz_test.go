package tokenizer

import (
	"errors"
	"testing"
	"unicode/utf8"

	"github.com/robinvdvleuten/whylang/text"
)

func FuzzTokenizer(f *testing.F) {
	seeds := []string{
		"", "0", "-", "-1", "40 + 2", "1 + 2 * 3 - 4 / 5",
		"def extern", "_123foo_bar", "f(a, b) = a", "€", "\xff", "\xed\xa0\x80",
		"9223372036854775808", " \t\r\n", "\x80", "1\x80", "ab\xbf", " \x80",
	}
	for _, seed := range seeds {
		f.Add([]byte(seed))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		prev := 0
		for tok, err := range New(data).All() {
			if err != nil {
				if !errors.Is(err, text.ErrInvalidText) && !errors.Is(err, ErrNumberFormat) {
					t.Fatalf("unexpected error type: %v", err)
				}
				if errors.Is(err, text.ErrInvalidText) && utf8.Valid(data) {
					t.Fatalf("invalid text reported for valid input %q", data)
				}
				return
			}

			if tok.Span.Start < prev || tok.Span.End <= tok.Span.Start || tok.Span.End > len(data) {
				t.Fatalf("token %v out of order or out of bounds (prev end %d)", tok, prev)
			}
			if !utf8.Valid(data[tok.Span.Start:tok.Span.End]) {
				t.Fatalf("token %v covers invalid text", tok)
			}
			prev = tok.Span.End
		}
	})
}

package tokenizer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/sebdah/goldie/v2"

	"github.com/robinvdvleuten/whylang/text"
)

func singleToken(t *testing.T, input string) Token {
	t.Helper()

	tokens, err := Tokenize([]byte(input))
	assert.NoError(t, err)
	assert.Equal(t, 1, len(tokens), "token count mismatch for %q", input)
	return tokens[0]
}

func TestTokenizerNumbers(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"0", 0},
		{"123", 123},
		{"-123", -123},
		{"-0", 0},
		{"007", 7},
		{"9223372036854775807", 9223372036854775807},
		{"-9223372036854775808", -9223372036854775808},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tok := singleToken(t, tt.input)
			assert.Equal(t, NUMBER, tok.Kind)
			assert.Equal(t, Integer(tt.want), tok.Value)
			assert.Equal(t, text.Span{Start: 0, End: len(tt.input)}, tok.Span)
		})
	}
}

func TestTokenizerNumberOverflow(t *testing.T) {
	for _, input := range []string{"9223372036854775808", "-9223372036854775809"} {
		t.Run(input, func(t *testing.T) {
			_, err := Tokenize([]byte(input))
			assert.Error(t, err)
			assert.True(t, errors.Is(err, ErrNumberFormat))

			var numErr *strconv.NumError
			assert.True(t, errors.As(err, &numErr))
			assert.True(t, errors.Is(err, strconv.ErrRange))

			var tokErr *Error
			assert.True(t, errors.As(err, &tokErr))
			assert.Equal(t, text.Span{Start: 0, End: len(input)}, tokErr.GetSpan())
		})
	}
}

func TestTokenizerIdentifiers(t *testing.T) {
	tests := []string{"_123foo_bar", "x", "_", "abc", "ABC", "a1", "define", "externs"}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			tok := singleToken(t, input)
			assert.Equal(t, IDENTIFIER, tok.Kind)
			assert.Equal(t, Symbol(input), tok.Value)
			assert.Equal(t, text.Span{Start: 0, End: len(input)}, tok.Span)
		})
	}
}

func TestTokenizerKeywords(t *testing.T) {
	tests := []struct {
		input string
		want  Keyword
	}{
		{"def", DEF},
		{"extern", EXTERN},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tok := singleToken(t, tt.input)
			assert.Equal(t, KEYWORD, tok.Kind)
			assert.Equal(t, KeywordOf(tt.want), tok.Value)

			k, ok := tok.Value.Keyword()
			assert.True(t, ok)
			assert.Equal(t, tt.input, k.String())
		})
	}
}

func TestTokenizerOperators(t *testing.T) {
	tests := []struct {
		input string
		want  Kind
	}{
		{"(", LPAREN},
		{")", RPAREN},
		{",", COMMA},
		{"+", PLUS},
		{"-", MINUS},
		{"*", STAR},
		{"/", SLASH},
		{"=", ASSIGN},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tok := singleToken(t, tt.input)
			assert.Equal(t, tt.want, tok.Kind)
			assert.Equal(t, None(), tok.Value)
			assert.Equal(t, text.Span{Start: 0, End: 1}, tok.Span)
			assert.True(t, tok.Kind.IsOperator())
		})
	}
}

func TestTokenizerUnknown(t *testing.T) {
	tests := []string{"?", "€", "é", "#", "."}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			tok := singleToken(t, input)
			assert.Equal(t, UNKNOWN, tok.Kind)
			assert.Equal(t, None(), tok.Value)
			assert.Equal(t, len(input), tok.Span.End)
		})
	}
}

func TestTokenizerSequence(t *testing.T) {
	source := []byte("40 + 2*-3")
	tokens, err := Tokenize(source)
	assert.NoError(t, err)

	assert.Equal(t, []Token{
		{Span: text.Span{Start: 0, End: 2}, Kind: NUMBER, Value: Integer(40)},
		{Span: text.Span{Start: 3, End: 4}, Kind: PLUS, Value: None()},
		{Span: text.Span{Start: 5, End: 6}, Kind: NUMBER, Value: Integer(2)},
		{Span: text.Span{Start: 6, End: 7}, Kind: STAR, Value: None()},
		{Span: text.Span{Start: 7, End: 9}, Kind: NUMBER, Value: Integer(-3)},
	}, tokens)

	assert.Equal(t, "-3", tokens[4].Text(source))
}

func TestTokenizerWhitespaceOnly(t *testing.T) {
	tokens, err := Tokenize([]byte(" \t\r\n "))
	assert.NoError(t, err)
	assert.Equal(t, 0, len(tokens))

	tokens, err = Tokenize(nil)
	assert.NoError(t, err)
	assert.Equal(t, 0, len(tokens))
}

func TestTokenizerInvalidTextIsNotResumable(t *testing.T) {
	tok := New([]byte("1 \xff 2"))

	first, err := tok.Next()
	assert.NoError(t, err)
	assert.Equal(t, Integer(1), first.Value)

	_, err = tok.Next()
	assert.True(t, errors.Is(err, text.ErrInvalidText))

	var tokErr *Error
	assert.True(t, errors.As(err, &tokErr))
	assert.Equal(t, text.Span{Start: 2, End: 3}, tokErr.Span)

	_, err = tok.Next()
	assert.True(t, errors.Is(err, text.ErrEndOfFile))
}

func TestTokenizerInvalidTextInsideToken(t *testing.T) {
	_, err := Tokenize([]byte("abc\xed\xa0\x80"))
	assert.True(t, errors.Is(err, text.ErrInvalidText))

	var textErr *text.InvalidTextError
	assert.True(t, errors.As(err, &textErr))
	assert.Equal(t, 3, textErr.Offset)
}

func TestTokenizerContinuationByteAtTokenBoundary(t *testing.T) {
	tests := []struct {
		input  string
		before []Kind
		span   text.Span
	}{
		{"\x80", nil, text.Span{Start: 0, End: 1}},
		{"1\x80", nil, text.Span{Start: 1, End: 2}},
		{"ab\xbf", nil, text.Span{Start: 2, End: 3}},
		{" \x80", nil, text.Span{Start: 1, End: 2}},
		{"-7 \x80", []Kind{NUMBER}, text.Span{Start: 3, End: 4}},
		{"x+\xbf", []Kind{IDENTIFIER, PLUS}, text.Span{Start: 2, End: 3}},
	}
	for _, tt := range tests {
		t.Run(strconv.Quote(tt.input), func(t *testing.T) {
			var kinds []Kind
			var errs []error
			for tok, err := range New([]byte(tt.input)).All() {
				if err != nil {
					errs = append(errs, err)
					continue
				}
				kinds = append(kinds, tok.Kind)
			}

			assert.Equal(t, tt.before, kinds)
			assert.Equal(t, 1, len(errs))
			assert.True(t, errors.Is(errs[0], text.ErrInvalidText))

			var tokErr *Error
			assert.True(t, errors.As(errs[0], &tokErr))
			assert.Equal(t, tt.span, tokErr.Span)
		})
	}
}

func TestTokenizerEndOfFileIsSticky(t *testing.T) {
	tok := New([]byte("x"))

	_, err := tok.Next()
	assert.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err = tok.Next()
		assert.True(t, errors.Is(err, text.ErrEndOfFile))
	}
}

func TestTokenizerAllStopsAfterError(t *testing.T) {
	var kinds []Kind
	var errs []error
	for tok, err := range New([]byte("a \xff b")).All() {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		kinds = append(kinds, tok.Kind)
	}

	assert.Equal(t, []Kind{IDENTIFIER}, kinds)
	assert.Equal(t, 1, len(errs))
}

func TestTokenizerIsIdempotent(t *testing.T) {
	source := []byte("def f(x) = x * 20 + -3 / y")

	first, err := Tokenize(source)
	assert.NoError(t, err)
	second, err := Tokenize(source)
	assert.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSliceSource(t *testing.T) {
	tokens := []Token{
		{Kind: NUMBER, Value: Integer(1)},
		{Kind: PLUS},
	}
	src := FromSlice(tokens)

	for _, want := range tokens {
		got, err := src.Next()
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := src.Next()
	assert.True(t, errors.Is(err, text.ErrEndOfFile))
}

func TestKeywords(t *testing.T) {
	assert.Equal(t, []string{"def", "extern"}, Keywords())

	_, ok := LookupKeyword("Def")
	assert.False(t, ok)
}

func TestTokenString(t *testing.T) {
	tok := Token{Span: text.Span{Start: 3, End: 5}, Kind: NUMBER, Value: Integer(42)}
	assert.Equal(t, "NUMBER(42)@3..5", tok.String())

	tok = Token{Span: text.Span{Start: 0, End: 1}, Kind: PLUS}
	assert.Equal(t, "+@0..1", tok.String())

	assert.Equal(t, `Symbol("x")`, fmt.Sprintf("%#v", Symbol("x")))
	assert.Equal(t, "Kind(200)", Kind(200).String())
}

func TestGolden(t *testing.T) {
	inputs, err := filepath.Glob("testdata/*.why")
	assert.NoError(t, err)
	assert.NotEqual(t, 0, len(inputs))

	for _, input := range inputs {
		name := strings.TrimSuffix(filepath.Base(input), ".why")
		t.Run(name, func(t *testing.T) {
			source, err := os.ReadFile(input)
			assert.NoError(t, err)

			tokens, err := Tokenize(source)
			assert.NoError(t, err)

			var builder strings.Builder
			for _, tok := range tokens {
				fmt.Fprintf(&builder, "%s %s %q %#v\n", tok.Kind, tok.Span, tok.Text(source), tok.Value)
			}

			g := goldie.New(t)
			g.Assert(t, name, []byte(builder.String()))
		})
	}
}

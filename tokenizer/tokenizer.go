// Package tokenizer turns UTF-8 source text into a lazy stream of tokens.
//
// A Tokenizer is a pull-based sequence: every call to Next scans exactly one
// token. The stream is finite, cannot be restarted, and stops for good after
// the first error. Re-scanning a buffer requires a new Tokenizer.
package tokenizer

import (
	"errors"
	"iter"
	"strconv"

	"github.com/robinvdvleuten/whylang/text"
)

var (
	digit      = text.Range('0', '9')
	whitespace = text.OneOf(text.Char(' '), text.Char('\t'), text.Char('\r'), text.Char('\n'), text.Char('\f'))
	identStart = text.OneOf(text.Char('_'), text.Range('a', 'z'), text.Range('A', 'Z'))
	identPart  = text.OneOf(identStart, digit)
)

var operators = map[rune]Kind{
	'(': LPAREN,
	')': RPAREN,
	',': COMMA,
	'+': PLUS,
	'-': MINUS,
	'*': STAR,
	'/': SLASH,
	'=': ASSIGN,
}

// Tokenizer scans tokens from a text.Window.
type Tokenizer struct {
	window    *text.Window
	exhausted bool
}

// New creates a tokenizer over source.
func New(source []byte) *Tokenizer {
	return NewFromWindow(text.NewWindow(source))
}

// NewFromWindow creates a tokenizer that scans from w's current position.
func NewFromWindow(w *text.Window) *Tokenizer {
	return &Tokenizer{window: w}
}

// Next scans the next token.
//
// At the end of the input it returns text.ErrEndOfFile (io.EOF). A decode or
// number format failure is returned as an *Error; after that, and after the
// end of input, every call returns text.ErrEndOfFile.
func (t *Tokenizer) Next() (Token, error) {
	if t.exhausted {
		return Token{}, text.ErrEndOfFile
	}

	tok, err := t.next()
	if err != nil {
		t.exhausted = true
		if errors.Is(err, text.ErrEndOfFile) {
			return Token{}, err
		}
		return Token{}, &Error{Span: t.errorSpan(err), Err: err}
	}
	return tok, nil
}

// errorSpan locates err: the rejected byte for invalid text, otherwise the
// partially scanned token.
func (t *Tokenizer) errorSpan(err error) text.Span {
	var textErr *text.InvalidTextError
	if errors.As(err, &textErr) {
		return textErr.GetSpan()
	}
	return t.window.Span()
}

// All returns an iterator over the remaining tokens. Iteration stops at the
// end of input or after yielding the first error.
func (t *Tokenizer) All() iter.Seq2[Token, error] {
	return func(yield func(Token, error) bool) {
		for {
			tok, err := t.Next()
			if errors.Is(err, text.ErrEndOfFile) {
				return
			}
			if !yield(tok, err) || err != nil {
				return
			}
		}
	}
}

// Tokenize scans all tokens in source.
func Tokenize(source []byte) ([]Token, error) {
	var tokens []Token
	for tok, err := range New(source).All() {
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

func (t *Tokenizer) next() (Token, error) {
	if err := t.skipWhitespace(); err != nil {
		return Token{}, err
	}

	ok, err := t.window.Take()
	if err != nil {
		return Token{}, err
	}
	if !ok {
		return Token{}, text.ErrEndOfFile
	}

	ch, _ := t.window.Last()
	switch {
	case digit.Match(ch), ch == '-' && t.window.Peek(digit):
		return t.number()
	case identStart.Match(ch):
		return t.identifierOrKeyword()
	}

	if kind, ok := operators[ch]; ok {
		return t.emit(kind, None()), nil
	}
	return t.emit(UNKNOWN, None()), nil
}

// skipWhitespace consumes blanks and commits the window past them.
func (t *Tokenizer) skipWhitespace() error {
	_, err := t.window.ScanWhile(whitespace)
	t.window.Advance()
	return err
}

// number scans [-]?[0-9]+. The sign, if any, is already consumed.
func (t *Tokenizer) number() (Token, error) {
	if _, err := t.window.ScanWhile(digit); err != nil {
		return Token{}, err
	}

	word := t.window.String()
	i, err := strconv.ParseInt(word, 10, 64)
	if err != nil {
		return Token{}, &NumberFormatError{Text: word, Err: err}
	}
	return t.emit(NUMBER, Integer(i)), nil
}

// identifierOrKeyword scans [_A-Za-z][_A-Za-z0-9]* and looks the result up
// in the keyword table.
func (t *Tokenizer) identifierOrKeyword() (Token, error) {
	if _, err := t.window.ScanWhile(identPart); err != nil {
		return Token{}, err
	}

	word := t.window.String()
	if k, ok := LookupKeyword(word); ok {
		return t.emit(KEYWORD, KeywordOf(k)), nil
	}
	return t.emit(IDENTIFIER, Symbol(word)), nil
}

// emit builds a token covering the window and commits the window.
func (t *Tokenizer) emit(kind Kind, value Value) Token {
	tok := Token{Span: t.window.Span(), Kind: kind, Value: value}
	t.window.Advance()
	return tok
}

package tokenizer

import (
	"fmt"
	"strconv"

	"github.com/robinvdvleuten/whylang/text"
)

// Kind represents the type of token scanned from the input.
type Kind uint8

const (
	UNKNOWN Kind = iota

	// Literals
	NUMBER     // 123 or -123
	IDENTIFIER // foo_bar1
	KEYWORD    // def, extern

	// Symbols
	LPAREN // (
	RPAREN // )
	COMMA  // ,
	PLUS   // +
	MINUS  // -
	STAR   // *
	SLASH  // /
	ASSIGN // =
)

var kindNames = map[Kind]string{
	UNKNOWN:    "UNKNOWN",
	NUMBER:     "NUMBER",
	IDENTIFIER: "IDENTIFIER",
	KEYWORD:    "KEYWORD",
	LPAREN:     "(",
	RPAREN:     ")",
	COMMA:      ",",
	PLUS:       "+",
	MINUS:      "-",
	STAR:       "*",
	SLASH:      "/",
	ASSIGN:     "=",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// IsOperator reports whether k is one of the single-character symbols.
func (k Kind) IsOperator() bool {
	return k >= LPAREN && k <= ASSIGN
}

// ValueKind discriminates the variants of Value.
type ValueKind uint8

const (
	NoValue ValueKind = iota
	IntegerValue
	SymbolValue
	KeywordValue
)

// Value is the payload of a token. Exactly one variant is set, determined by
// the token's Kind: NUMBER carries an integer, IDENTIFIER a symbol, KEYWORD a
// keyword, every other kind carries no value.
//
// Values are comparable with ==.
type Value struct {
	kind    ValueKind
	integer int64
	symbol  string
	keyword Keyword
}

// None returns the empty value.
func None() Value { return Value{} }

// Integer returns an integer value.
func Integer(i int64) Value { return Value{kind: IntegerValue, integer: i} }

// Symbol returns a symbol value.
func Symbol(s string) Value { return Value{kind: SymbolValue, symbol: s} }

// KeywordOf returns a keyword value.
func KeywordOf(k Keyword) Value { return Value{kind: KeywordValue, keyword: k} }

// Kind returns the variant held by v.
func (v Value) Kind() ValueKind { return v.kind }

// Integer returns the integer held by v.
func (v Value) Integer() (int64, bool) { return v.integer, v.kind == IntegerValue }

// Symbol returns the symbol held by v.
func (v Value) Symbol() (string, bool) { return v.symbol, v.kind == SymbolValue }

// Keyword returns the keyword held by v.
func (v Value) Keyword() (Keyword, bool) { return v.keyword, v.kind == KeywordValue }

func (v Value) String() string {
	switch v.kind {
	case IntegerValue:
		return strconv.FormatInt(v.integer, 10)
	case SymbolValue:
		return strconv.Quote(v.symbol)
	case KeywordValue:
		return v.keyword.String()
	default:
		return ""
	}
}

// GoString returns a Go-syntax representation of the value.
func (v Value) GoString() string {
	switch v.kind {
	case IntegerValue:
		return fmt.Sprintf("Integer(%d)", v.integer)
	case SymbolValue:
		return fmt.Sprintf("Symbol(%q)", v.symbol)
	case KeywordValue:
		return fmt.Sprintf("Keyword(%s)", v.keyword)
	default:
		return "None"
	}
}

// Token is a lexical token. It stores the byte range it was scanned from
// instead of a copy of its text.
type Token struct {
	Span  text.Span
	Kind  Kind
	Value Value
}

// Text materializes the token text from the source buffer.
func (t Token) Text(source []byte) string {
	return t.Span.Text(source)
}

func (t Token) String() string {
	if t.Value.Kind() == NoValue {
		return fmt.Sprintf("%s@%s", t.Kind, t.Span)
	}
	return fmt.Sprintf("%s(%s)@%s", t.Kind, t.Value, t.Span)
}

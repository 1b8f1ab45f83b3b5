// Package parser builds expression trees from a token stream using
// precedence climbing.
//
// Grammar:
//
//	expression → primary (operator primary)*
//	primary    → NUMBER
//	operator   → '+' | '-' | '*' | '/'
//
// '*' and '/' bind tighter than '+' and '-'. Operators of equal precedence
// associate to the left, so 1 - 2 - 3 parses as (1 - 2) - 3.
package parser

import (
	"context"
	"errors"
	"fmt"

	"github.com/robinvdvleuten/whylang/ast"
	"github.com/robinvdvleuten/whylang/telemetry"
	"github.com/robinvdvleuten/whylang/text"
	"github.com/robinvdvleuten/whylang/tokenizer"
)

var binaryOperators = map[tokenizer.Kind]ast.BinaryOperator{
	tokenizer.PLUS:  ast.Add,
	tokenizer.MINUS: ast.Subtract,
	tokenizer.STAR:  ast.Multiply,
	tokenizer.SLASH: ast.Divide,
}

// Parser consumes tokens from a tokenizer.Source. It keeps exactly one token
// of lookahead, pulled eagerly.
type Parser struct {
	tokens   tokenizer.Source
	filename string

	current tokenizer.Token
	err     error // error from the last pull; text.ErrEndOfFile at the end

	prev   text.Span // span of the last consumed token
	pulled int       // tokens read from the source so far
}

// Option configures a Parser.
type Option func(*Parser)

// WithFilename sets the file name reported in parse errors.
func WithFilename(filename string) Option {
	return func(p *Parser) {
		p.filename = filename
	}
}

// New creates a parser reading from tokens and pulls the first token.
func New(tokens tokenizer.Source, opts ...Option) *Parser {
	p := &Parser{tokens: tokens}
	for _, opt := range opts {
		opt(p)
	}
	p.pull()
	return p
}

// ParseExpression parses one expression. Tokens following the expression
// that cannot continue it are left in the stream; see ExpectEnd.
func (p *Parser) ParseExpression() (ast.Expression, error) {
	lhs, err := p.parsePrimaryExpression()
	if err != nil {
		return nil, err
	}
	return p.parseExpressionRhs(lhs, 0)
}

// ExpectEnd returns nil if the token stream is exhausted and a ParseError
// wrapping ErrTrailingInput otherwise.
func (p *Parser) ExpectEnd() error {
	switch {
	case p.atEnd():
		return nil
	case p.err != nil:
		return wrapTokenizerError(p.filename, p.err, p.prev.End)
	}
	return newErrorf(p.filename, p.current.Span, ErrTrailingInput,
		"unexpected %s after expression", describeToken(p.current))
}

// parseExpressionRhs folds binary operators with precedence of at least
// minPrecedence into lhs.
func (p *Parser) parseExpressionRhs(lhs ast.Expression, minPrecedence int) (ast.Expression, error) {
	for {
		op, ok, err := p.peekOperator()
		if err != nil {
			return nil, err
		}
		if !ok || op.Precedence() < minPrecedence {
			return lhs, nil
		}
		p.advance()

		rhs, err := p.parsePrimaryExpression()
		if err != nil {
			return nil, err
		}

		next, ok, err := p.peekOperator()
		if err != nil {
			return nil, err
		}
		if ok && next.Precedence() > op.Precedence() {
			rhs, err = p.parseExpressionRhs(rhs, op.Precedence()+1)
			if err != nil {
				return nil, err
			}
		}

		lhs = ast.NewBinary(lhs, rhs, op)
	}
}

// parsePrimaryExpression parses an integer literal.
func (p *Parser) parsePrimaryExpression() (ast.Expression, error) {
	if p.atEnd() {
		return nil, newErrorf(p.filename, text.Span{Start: p.prev.End, End: p.prev.End},
			ErrUnexpectedEndOfFile, "unexpected end of file, expected a number")
	}
	if p.err != nil {
		return nil, wrapTokenizerError(p.filename, p.err, p.prev.End)
	}

	tok := p.current
	value, ok := tok.Value.Integer()
	if tok.Kind != tokenizer.NUMBER || !ok {
		return nil, newErrorf(p.filename, tok.Span, ErrNoViablePrimary,
			"unexpected %s, expected a number", describeToken(tok))
	}

	p.advance()
	return ast.NewConstant(value), nil
}

// peekOperator reports the binary operator at the current token, if any.
// A pending tokenizer error is returned rather than treated as the end of
// the expression.
func (p *Parser) peekOperator() (ast.BinaryOperator, bool, error) {
	if p.atEnd() {
		return 0, false, nil
	}
	if p.err != nil {
		return 0, false, wrapTokenizerError(p.filename, p.err, p.prev.End)
	}
	op, ok := binaryOperators[p.current.Kind]
	return op, ok, nil
}

func (p *Parser) atEnd() bool {
	return errors.Is(p.err, text.ErrEndOfFile)
}

func (p *Parser) pull() {
	p.current, p.err = p.tokens.Next()
	if p.err == nil {
		p.pulled++
	}
}

// advance consumes the current token. It must only be called when the
// current token is valid.
func (p *Parser) advance() tokenizer.Token {
	tok := p.current
	p.prev = tok.Span
	p.pull()
	return tok
}

// Parse parses a single expression spanning all of tokens.
func Parse(tokens tokenizer.Source, opts ...Option) (ast.Expression, error) {
	return New(tokens, opts...).parseAll()
}

func (p *Parser) parseAll() (ast.Expression, error) {
	expr, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.ExpectEnd(); err != nil {
		return nil, err
	}
	return expr, nil
}

// ParseBytes tokenizes and parses source, which must contain exactly one
// expression. filename is used in error messages.
func ParseBytes(ctx context.Context, filename string, source []byte) (ast.Expression, error) {
	timer := telemetry.StartTimer(ctx, fmt.Sprintf("parser.parse %s", filename))
	defer timer.End()

	p := New(tokenizer.New(source), WithFilename(filename))
	expr, err := p.parseAll()
	timer.Measure(len(source), p.pulled)
	return expr, err
}

// ParseString is a convenience wrapper around ParseBytes for inline input.
func ParseString(ctx context.Context, source string) (ast.Expression, error) {
	return ParseBytes(ctx, "", []byte(source))
}

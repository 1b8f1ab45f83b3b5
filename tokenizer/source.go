package tokenizer

import "github.com/robinvdvleuten/whylang/text"

// Source is a pull-based stream of tokens. Next returns text.ErrEndOfFile
// once the stream is exhausted.
type Source interface {
	Next() (Token, error)
}

var (
	_ Source = (*Tokenizer)(nil)
	_ Source = (*SliceSource)(nil)
)

// SliceSource replays a fixed list of tokens.
type SliceSource struct {
	tokens []Token
	pos    int
}

// FromSlice creates a Source that yields tokens in order.
func FromSlice(tokens []Token) *SliceSource {
	return &SliceSource{tokens: tokens}
}

// Next returns the next token or text.ErrEndOfFile.
func (s *SliceSource) Next() (Token, error) {
	if s.pos >= len(s.tokens) {
		return Token{}, text.ErrEndOfFile
	}
	tok := s.tokens[s.pos]
	s.pos++
	return tok, nil
}

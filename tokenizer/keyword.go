package tokenizer

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Keyword identifies a reserved word.
type Keyword uint8

const (
	DEF Keyword = iota + 1
	EXTERN
)

var keywords = map[string]Keyword{
	"def":    DEF,
	"extern": EXTERN,
}

func (k Keyword) String() string {
	switch k {
	case DEF:
		return "def"
	case EXTERN:
		return "extern"
	default:
		return "<invalid keyword>"
	}
}

// LookupKeyword returns the keyword spelled word.
func LookupKeyword(word string) (Keyword, bool) {
	k, ok := keywords[word]
	return k, ok
}

// Keywords returns every reserved word in sorted order.
func Keywords() []string {
	words := maps.Keys(keywords)
	slices.Sort(words)
	return words
}

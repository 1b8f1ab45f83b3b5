package text

// Matcher tests a single scalar value. The window's predicate-driven
// operations (TakeIf, Peek, ScanWhile, ScanUntil) accept any Matcher.
//
// The concrete matchers below cover characters, ranges, "anything" and
// inversion. MatchFunc adapts an ordinary function.
type Matcher interface {
	Match(r rune) bool
}

// MatchFunc adapts an ordinary function to a Matcher.
type MatchFunc func(r rune) bool

// Match calls f(r).
func (f MatchFunc) Match(r rune) bool { return f(r) }

type charMatcher rune

func (c charMatcher) Match(r rune) bool { return rune(c) == r }

// Char matches exactly c.
func Char(c rune) Matcher { return charMatcher(c) }

// rangeMatcher matches lo <= r < hi (or r <= hi when inclusive).
// hasLo/hasHi select the open-ended forms.
type rangeMatcher struct {
	lo, hi       rune
	hasLo, hasHi bool
	inclusive    bool
}

func (m rangeMatcher) Match(r rune) bool {
	if m.hasLo && r < m.lo {
		return false
	}
	if m.hasHi {
		if m.inclusive {
			return r <= m.hi
		}
		return r < m.hi
	}
	return true
}

// Range matches lo <= r <= hi.
func Range(lo, hi rune) Matcher {
	return rangeMatcher{lo: lo, hi: hi, hasLo: true, hasHi: true, inclusive: true}
}

// RangeExclusive matches lo <= r < hi.
func RangeExclusive(lo, hi rune) Matcher {
	return rangeMatcher{lo: lo, hi: hi, hasLo: true, hasHi: true}
}

// From matches r >= lo.
func From(lo rune) Matcher {
	return rangeMatcher{lo: lo, hasLo: true}
}

// UpTo matches r < hi.
func UpTo(hi rune) Matcher {
	return rangeMatcher{hi: hi, hasHi: true}
}

// Through matches r <= hi.
func Through(hi rune) Matcher {
	return rangeMatcher{hi: hi, hasHi: true, inclusive: true}
}

type anyMatcher struct{}

func (anyMatcher) Match(rune) bool { return true }

// Any matches every scalar value.
func Any() Matcher { return anyMatcher{} }

type notMatcher struct{ m Matcher }

func (n notMatcher) Match(r rune) bool { return !n.m.Match(r) }

// Not inverts m.
func Not(m Matcher) Matcher {
	if n, ok := m.(notMatcher); ok {
		return n.m
	}
	return notMatcher{m: m}
}

type oneOfMatcher []Matcher

func (o oneOfMatcher) Match(r rune) bool {
	for _, m := range o {
		if m.Match(r) {
			return true
		}
	}
	return false
}

// OneOf matches if any of ms matches.
func OneOf(ms ...Matcher) Matcher { return oneOfMatcher(ms) }

package text

import (
	"errors"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func mustTake(t *testing.T, w *Window) {
	t.Helper()
	ok, err := w.Take()
	assert.NoError(t, err)
	assert.True(t, ok, "expected a character at offset %d", w.End())
}

func TestWindowIsEmptyWhenInitialized(t *testing.T) {
	w := NewWindow([]byte("testwin"))
	assert.Equal(t, "", w.String())
	assert.Equal(t, 0, len(w.Bytes()))
	_, ok := w.Last()
	assert.False(t, ok)
	assert.Equal(t, Span{0, 0}, w.Span())
}

func TestWindowTakeLoadsNextCharacter(t *testing.T) {
	w := NewWindow([]byte("testwin"))
	mustTake(t, w)
	assert.Equal(t, "t", w.String())

	last, ok := w.Last()
	assert.True(t, ok)
	assert.Equal(t, 't', last)
}

func TestWindowTakeReturnsFalseAtEndOfFile(t *testing.T) {
	w := NewWindow([]byte("testwin"))
	for i := 0; i < 7; i++ {
		mustTake(t, w)
	}

	ok, err := w.Take()
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, "testwin", w.String())
	assert.True(t, w.AtEnd())
}

func TestWindowTakeMovesInCharacterIncrements(t *testing.T) {
	w := NewWindow([]byte("a¶Ё₵𐆓e\u0301"))

	steps := []struct {
		content string
		last    rune
		end     int
	}{
		{"a", 'a', 1},
		{"a¶", '¶', 3},
		{"a¶Ё", 'Ё', 5},
		{"a¶Ё₵", '₵', 8},
		{"a¶Ё₵𐆓", '𐆓', 12},
		{"a¶Ё₵𐆓e", 'e', 13},
		{"a¶Ё₵𐆓e\u0301", '\u0301', 15},
	}

	for _, step := range steps {
		mustTake(t, w)
		assert.Equal(t, step.content, w.String())
		last, _ := w.Last()
		assert.Equal(t, step.last, last)
		assert.Equal(t, step.end, w.End())
	}
}

func TestWindowTakeRejectsInvalidText(t *testing.T) {
	w := NewWindow([]byte{'a', 0xFF, 'b'})
	mustTake(t, w)

	ok, err := w.Take()
	assert.False(t, ok)
	assert.True(t, errors.Is(err, ErrInvalidText))

	var textErr *InvalidTextError
	assert.True(t, errors.As(err, &textErr))
	assert.Equal(t, 1, textErr.Offset)
	assert.Equal(t, byte(0xFF), textErr.Byte)

	// The window is unchanged by the failure.
	assert.Equal(t, "a", w.String())
	assert.Equal(t, 1, w.End())
}

func TestWindowTakeRejectsTruncatedSequenceAtEnd(t *testing.T) {
	w := NewWindow([]byte{'a', 0xE2, 0x82})
	mustTake(t, w)

	_, err := w.Take()
	assert.True(t, errors.Is(err, ErrInvalidText))
}

func TestWindowTakeIfOnlyCommitsOnMatch(t *testing.T) {
	w := NewWindow([]byte("a1"))

	ok, err := w.TakeIf(Range('0', '9'))
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 0, w.End())
	_, hasLast := w.Last()
	assert.False(t, hasLast)

	ok, err = w.TakeIf(Char('a'))
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "a", w.String())

	ok, err = w.TakeIf(Range('0', '9'))
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "a1", w.String())

	ok, err = w.TakeIf(Any())
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestWindowPeekNeverMutates(t *testing.T) {
	w := NewWindow([]byte("ab\xff"))
	mustTake(t, w)

	assert.True(t, w.Peek(Char('b')))
	assert.False(t, w.Peek(Char('c')))
	assert.Equal(t, "a", w.String())
	assert.Equal(t, 1, w.End())
	last, _ := w.Last()
	assert.Equal(t, 'a', last)

	mustTake(t, w)
	assert.False(t, w.Peek(Any()), "invalid bytes never match")
	assert.Equal(t, 2, w.End())
}

func TestWindowScanWhile(t *testing.T) {
	w := NewWindow([]byte("0123456789/abcdef"))

	ok, err := w.ScanWhile(Range('0', '9'))
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "0123456789", w.String())
	assert.Equal(t, 10, w.End())

	last, _ := w.Last()
	assert.Equal(t, '9', last)

	ok, err = w.ScanWhile(Range('0', '9'))
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 10, w.End())
}

func TestWindowScanWhileToEndOfBuffer(t *testing.T) {
	w := NewWindow([]byte("12345"))

	ok, err := w.ScanWhile(Range('0', '9'))
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "12345", w.String())
	assert.True(t, w.AtEnd())
}

func TestWindowScanWhileStopsOnInvalidText(t *testing.T) {
	w := NewWindow([]byte("12\xff3"))

	ok, err := w.ScanWhile(Range('0', '9'))
	assert.True(t, ok)
	assert.True(t, errors.Is(err, ErrInvalidText))
	assert.Equal(t, "12", w.String())
}

func TestWindowScanUntil(t *testing.T) {
	w := NewWindow([]byte("abc def"))

	ok, err := w.ScanUntil(Char(' '))
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "abc", w.String())
}

func TestWindowBacktrackRestoresPriorContent(t *testing.T) {
	w := NewWindow([]byte("testwin"))
	for i := 0; i < 4; i++ {
		mustTake(t, w)
	}
	assert.Equal(t, "test", w.String())
	assert.Equal(t, []byte("test"), w.Bytes())

	marker := w.End()
	for i := 0; i < 3; i++ {
		mustTake(t, w)
	}
	assert.Equal(t, "testwin", w.String())

	w.Backtrack(marker)
	assert.Equal(t, "test", w.String())
	last, ok := w.Last()
	assert.True(t, ok)
	assert.Equal(t, 't', last)
}

func TestWindowBacktrackRestoresMultiByteLast(t *testing.T) {
	w := NewWindow([]byte("a€b"))
	mustTake(t, w)
	mustTake(t, w)
	marker := w.End()
	mustTake(t, w)

	w.Backtrack(marker)
	last, ok := w.Last()
	assert.True(t, ok)
	assert.Equal(t, '€', last)

	w.Backtrack(0)
	_, ok = w.Last()
	assert.False(t, ok)
	assert.Equal(t, "", w.String())
}

func TestWindowBacktrackPanicsOnNonBoundary(t *testing.T) {
	w := NewWindow([]byte("a€b"))
	mustTake(t, w)
	mustTake(t, w)

	assert.Panics(t, func() { w.Backtrack(2) })
}

func TestWindowBacktrackToEndBeforeContinuationByte(t *testing.T) {
	w := NewWindow([]byte("a\x80"))
	mustTake(t, w)

	w.Backtrack(w.End())
	assert.Equal(t, "a", w.String())

	_, err := w.Take()
	var textErr *InvalidTextError
	assert.True(t, errors.As(err, &textErr))
	assert.Equal(t, 1, textErr.Offset)
	assert.Equal(t, byte(0x80), textErr.Byte)
}

func TestWindowScanWhileStopsBeforeContinuationByte(t *testing.T) {
	tests := []struct {
		input string
		want  string
		stop  int
	}{
		{"\x80", "", 0},
		{"1\x80", "1", 1},
		{"ab\xbf", "ab", 2},
		{"€\x80", "€", 3},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			w := NewWindow([]byte(tt.input))

			_, err := w.ScanWhile(Any())
			assert.True(t, errors.Is(err, ErrInvalidText))
			assert.Equal(t, tt.want, w.String())
			assert.Equal(t, tt.stop, w.End())
		})
	}
}

func TestWindowBacktrackPanicsOutsideWindow(t *testing.T) {
	w := NewWindow([]byte("abc"))
	mustTake(t, w)
	w.Advance()

	assert.Panics(t, func() { w.Backtrack(0) })
	assert.Panics(t, func() { w.Backtrack(4) })
}

func TestWindowAdvanceMovesOffsetUpToEnd(t *testing.T) {
	w := NewWindow([]byte("testwin"))
	for i := 0; i < 4; i++ {
		mustTake(t, w)
	}
	assert.Equal(t, "test", w.String())

	w.Advance()
	assert.Equal(t, "", w.String())
	_, ok := w.Last()
	assert.False(t, ok)
	assert.Equal(t, 4, w.Offset())

	for i := 0; i < 3; i++ {
		mustTake(t, w)
	}
	assert.Equal(t, "win", w.String())
	assert.Equal(t, Span{4, 7}, w.Span())
	assert.Equal(t, 0, len(w.Remaining()))
}

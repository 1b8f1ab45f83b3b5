package text

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestParseLineMap(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []int
	}{
		{"cr is a line break", "a\rb", []int{1}},
		{"lf is a line break", "a\nb", []int{1}},
		{"crlf is a line break", "a\r\nb", []int{2}},
		{"trailing cr", "a\r", []int{1}},
		{"no breaks", "abc", nil},
		{"empty", "", nil},
		{"multibyte content", "€\n𐍈\r", []int{3, 8}},
		{"multi line complex sequence", "a\rb\nc\r\nd\r\r\n\n\r", []int{1, 3, 6, 8, 10, 11, 12}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLineMap([]byte(tt.input)).LineBreaks())
		})
	}
}

func TestLineMapMapOffset(t *testing.T) {
	//                                01 23 45 6 78 9 0 1 2
	m := ParseLineMap([]byte("a\rb\nc\r\nd\r\r\n\n\r"))

	want := [][2]int{
		{0, 0},  // "a"
		{0, 1},  // "\r" break
		{1, 0},  // "b"
		{1, 1},  // "\n" break
		{2, 0},  // "c"
		{2, 1},  // "\r"
		{2, 2},  // "\n" break
		{3, 0},  // "d"
		{3, 1},  // "\r" break
		{4, 0},  // "\r"
		{4, 1},  // "\n" break
		{5, 0},  // "\n" break
		{6, 0},  // "\r" break
	}

	for offset, pos := range want {
		line, column := m.MapOffset(offset)
		assert.Equal(t, pos, [2]int{line, column}, "offset %d", offset)
	}
}

func TestLineMapIsIdempotent(t *testing.T) {
	input := []byte("one\ntwo\r\nthree\rfour")
	assert.Equal(t, ParseLineMap(input).LineBreaks(), ParseLineMap(input).LineBreaks())
}

func TestLineMapSkipsInvalidText(t *testing.T) {
	m := ParseLineMap([]byte("a\xff\nb\xe2\r"))
	assert.Equal(t, []int{2, 5}, m.LineBreaks())
}

func TestLineMapLineBounds(t *testing.T) {
	input := []byte("first\r\nsecond\rthird\n\nlast")
	m := ParseLineMap(input)

	assert.Equal(t, 5, m.LineCount())

	lines := []string{"first", "second", "third", "", "last"}
	for i, want := range lines {
		assert.Equal(t, want, m.LineBounds(i, input).Text(input), "line %d", i)
	}

	assert.Equal(t, 0, m.LineStart(0))
	assert.Equal(t, 7, m.LineStart(1))
	assert.Equal(t, 14, m.LineStart(2))
}

func TestNewLineMap(t *testing.T) {
	breaks := []int{3, 7}
	m := NewLineMap(breaks)
	breaks[0] = 100

	assert.Equal(t, []int{3, 7}, m.LineBreaks())
	line, column := m.MapOffset(5)
	assert.Equal(t, 1, line)
	assert.Equal(t, 1, column)
}

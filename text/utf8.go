package text

// utf8Width maps a leading byte to the length of the sequence it starts.
// Continuation bytes, the overlong leads 0xC0 and 0xC1, and leads beyond
// U+10FFFF (0xF5 and up) map to 0.
//
// See RFC 3629.
var utf8Width = [256]uint8{
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, // 0x1F
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, // 0x3F
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, // 0x5F
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, // 0x7F
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // 0x9F
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // 0xBF
	0, 0, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2,
	2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, // 0xDF
	3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, // 0xEF
	4, 4, 4, 4, 4, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // 0xFF
}

// RuneWidth returns the number of bytes in the UTF-8 sequence started by b,
// or 0 if b cannot start a sequence.
func RuneWidth(b byte) int {
	return int(utf8Width[b])
}

// DecodeRune decodes the scalar value at the start of buf and returns it
// with its width in bytes. ok is false if buf is empty or does not begin
// with a valid, minimal, in-range UTF-8 sequence.
//
// The first continuation byte is range-checked per leading byte to reject
// overlong forms (0xE0, 0xF0), surrogates (0xED) and values above U+10FFFF
// (0xF4).
func DecodeRune(buf []byte) (r rune, width int, ok bool) {
	if len(buf) == 0 {
		return 0, 0, false
	}

	b0 := buf[0]
	width = RuneWidth(b0)
	switch width {
	case 0:
		return 0, 0, false
	case 1:
		return rune(b0), 1, true
	}
	if len(buf) < width {
		return 0, 0, false
	}

	lo, hi := byte(0x80), byte(0xBF)
	switch b0 {
	case 0xE0:
		lo = 0xA0
	case 0xED:
		hi = 0x9F
	case 0xF0:
		lo = 0x90
	case 0xF4:
		hi = 0x8F
	}

	b1 := buf[1]
	if b1 < lo || b1 > hi {
		return 0, 0, false
	}
	for _, b := range buf[2:width] {
		if b < 0x80 || b > 0xBF {
			return 0, 0, false
		}
	}

	switch width {
	case 2:
		r = rune(b0&0x1F)<<6 | rune(b1&0x3F)
	case 3:
		r = rune(b0&0x0F)<<12 | rune(b1&0x3F)<<6 | rune(buf[2]&0x3F)
	case 4:
		r = rune(b0&0x07)<<18 | rune(b1&0x3F)<<12 | rune(buf[2]&0x3F)<<6 | rune(buf[3]&0x3F)
	}
	return r, width, true
}

package text

import "fmt"

// Window is a sliding window over an immutable source buffer.
//
// The window covers the bytes [offset, end). Scanning operations grow end one
// scalar value at a time; Advance commits the window by moving offset up to
// end. A Window is not safe for concurrent use, but any number of windows may
// scan the same buffer concurrently.
type Window struct {
	buf     []byte
	offset  int
	end     int
	last    rune
	hasLast bool
}

// NewWindow creates an empty window at the start of buf.
func NewWindow(buf []byte) *Window {
	return &Window{buf: buf}
}

// Source returns the buffer the window scans.
func (w *Window) Source() []byte { return w.buf }

// Offset returns the committed start of the window.
func (w *Window) Offset() int { return w.offset }

// End returns the cursor position. Values returned by End are always
// character boundaries and may be passed to Backtrack.
func (w *Window) End() int { return w.end }

// Last returns the most recently consumed scalar value.
// ok is false right after construction or Advance.
func (w *Window) Last() (r rune, ok bool) { return w.last, w.hasLast }

// Span returns the byte range currently covered by the window.
func (w *Window) Span() Span { return Span{Start: w.offset, End: w.end} }

// String returns the window content.
func (w *Window) String() string { return string(w.buf[w.offset:w.end]) }

// Bytes returns a zero-copy view of the window content.
func (w *Window) Bytes() []byte { return w.buf[w.offset:w.end] }

// Len returns the window length in bytes.
func (w *Window) Len() int { return w.end - w.offset }

// AtEnd reports whether the cursor reached the end of the buffer.
func (w *Window) AtEnd() bool { return w.end >= len(w.buf) }

// Remaining returns the bytes after the cursor.
func (w *Window) Remaining() []byte { return w.buf[w.end:] }

func (w *Window) decode() (rune, int, error) {
	r, n, ok := DecodeRune(w.buf[w.end:])
	if !ok {
		return 0, 0, &InvalidTextError{Offset: w.end, Byte: w.buf[w.end]}
	}
	return r, n, nil
}

// Take consumes one scalar value.
//
// It returns false when the end of the buffer has been reached and an
// *InvalidTextError if the bytes at the cursor are not valid UTF-8. On error
// the window is left unchanged.
func (w *Window) Take() (bool, error) {
	if w.AtEnd() {
		return false, nil
	}
	r, n, err := w.decode()
	if err != nil {
		return false, err
	}
	w.end += n
	w.last, w.hasLast = r, true
	return true, nil
}

// TakeIf consumes one scalar value only if it satisfies m.
// Otherwise the window is left untouched and TakeIf returns false.
func (w *Window) TakeIf(m Matcher) (bool, error) {
	if w.AtEnd() {
		return false, nil
	}
	r, n, err := w.decode()
	if err != nil {
		return false, err
	}
	if !m.Match(r) {
		return false, nil
	}
	w.end += n
	w.last, w.hasLast = r, true
	return true, nil
}

// Peek reports whether the scalar value at the cursor satisfies m without
// consuming it. Undecodable bytes and end of buffer never match.
func (w *Window) Peek(m Matcher) bool {
	if w.AtEnd() {
		return false
	}
	r, _, ok := DecodeRune(w.buf[w.end:])
	return ok && m.Match(r)
}

// ScanWhile consumes scalar values for as long as they satisfy m and
// reports whether at least one was consumed. The window never ends on a
// character that does not match.
func (w *Window) ScanWhile(m Matcher) (bool, error) {
	start := w.end
	mark := w.end
	for {
		ok, err := w.TakeIf(m)
		if err != nil {
			w.reset(mark)
			return mark > start, err
		}
		if !ok {
			break
		}
		mark = w.end
	}
	w.reset(mark)
	return mark > start, nil
}

// ScanUntil consumes scalar values until one satisfies m.
func (w *Window) ScanUntil(m Matcher) (bool, error) {
	return w.ScanWhile(Not(m))
}

// Backtrack resets the cursor to pos.
//
// pos must lie inside [Offset(), len(source)] and must not split a scalar
// value already consumed by the window; values previously returned by End
// are always safe, whatever bytes follow them. Anything else is a
// programming error and panics.
func (w *Window) Backtrack(pos int) {
	if pos < w.offset || pos > len(w.buf) {
		panic(fmt.Sprintf("text: backtrack to %d outside window %d..%d", pos, w.offset, len(w.buf)))
	}
	// Bytes in [offset, end) were decoded, so a continuation byte there is
	// the middle of a scalar value. Bytes at or past end are unchecked.
	if pos > w.offset && pos < w.end && w.buf[pos]&0xC0 == 0x80 {
		panic(fmt.Sprintf("text: backtrack to %d is not a character boundary", pos))
	}
	w.reset(pos)
}

// reset moves the cursor to pos without validating it.
func (w *Window) reset(pos int) {
	w.end = pos
	w.restoreLast()
}

// restoreLast sets last to the final scalar value inside the window.
func (w *Window) restoreLast() {
	if w.end == w.offset {
		w.hasLast = false
		return
	}
	start := w.end - 1
	for start > w.offset && w.buf[start]&0xC0 == 0x80 {
		start--
	}
	r, n, ok := DecodeRune(w.buf[start:w.end])
	w.last, w.hasLast = r, ok && start+n == w.end
}

// Advance commits the window: offset moves up to end and the content
// becomes empty until the next Take.
func (w *Window) Advance() {
	w.offset = w.end
	w.hasLast = false
}

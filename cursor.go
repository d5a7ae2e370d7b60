package gapbuffer

import (
	"unicode/utf8"
)

// Cursor navigates and edits a buffer at a tracked position.
//
// Movement is in UTF-8 rune steps, while internal addressing uses byte
// offsets. Edits through a cursor happen at the cursor position, which is
// the gap buffer's fast path: consecutive cursor edits keep the gap in
// place and complete in amortized constant time.
//
// A cursor is bound to one buffer and shares its single-owner contract. It
// assumes the buffer content is valid UTF-8; on raw binary content the
// byte-oriented Seek and Offset still work, but rune movement may stutter
// over replacement runes.
type Cursor struct {
	buf *GapBuffer
	off int // byte offset into the content
}

// NewCursor creates a cursor at the start of the buffer's content.
func (b *GapBuffer) NewCursor() *Cursor {
	return &Cursor{buf: b}
}

// Offset returns the current cursor position as a byte offset.
func (c *Cursor) Offset() int {
	return c.off
}

// Seek moves the cursor to an absolute byte offset within [0,Len()].
func (c *Cursor) Seek(off int) error {
	if off < 0 || off > c.buf.Len() {
		return ErrIndexOutOfBounds
	}
	c.off = off
	return nil
}

// Next returns the rune at the cursor and advances past it.
// At end-of-content, ok is false.
func (c *Cursor) Next() (r rune, ok bool) {
	if c.off >= c.buf.Len() {
		return 0, false
	}
	r, width := c.decodeAt(c.off)
	c.off += width
	return r, true
}

// Prev moves the cursor one rune back and returns the rune it moved over.
// At the start of content, ok is false.
func (c *Cursor) Prev() (r rune, ok bool) {
	if c.off == 0 {
		return 0, false
	}
	start := c.off - 1
	for start > 0 && !utf8.RuneStart(c.buf.byteAt(start)) {
		start--
	}
	r, _ = c.decodeAt(start)
	c.off = start
	return r, true
}

// Insert inserts s at the cursor and leaves the cursor after the inserted
// bytes, ready for the next edit at the same point.
func (c *Cursor) Insert(s string) error {
	if err := c.buf.InsertString(c.off, s); err != nil {
		return err
	}
	c.off += len(s)
	return nil
}

// Delete removes n bytes of content following the cursor. The cursor does
// not move. Deleting zero bytes is a no-op; removing more bytes than
// follow the cursor is an error, as for GapBuffer.Remove.
func (c *Cursor) Delete(n int) error {
	if n == 0 {
		return nil
	}
	return c.buf.Remove(c.off, c.off+n)
}

// Backspace removes n bytes of content preceding the cursor and moves the
// cursor to the start of the removed range. Backspacing zero bytes is a
// no-op.
func (c *Cursor) Backspace(n int) error {
	if n == 0 {
		return nil
	}
	if err := c.buf.Remove(c.off-n, c.off); err != nil {
		return err
	}
	c.off -= n
	return nil
}

// decodeAt decodes the rune starting at content offset off. Multi-byte
// runes may straddle the gap, therefore up to utf8.UTFMax bytes are
// collected through byteAt before decoding.
func (c *Cursor) decodeAt(off int) (rune, int) {
	var scratch [utf8.UTFMax]byte
	n := c.buf.Len() - off
	if n > utf8.UTFMax {
		n = utf8.UTFMax
	}
	for i := 0; i < n; i++ {
		scratch[i] = c.buf.byteAt(off + i)
	}
	return utf8.DecodeRune(scratch[:n])
}

package gapbuffer

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file in the repository root.

*/

// chunkSize is the growth stride for the gap, in bytes. Whenever the gap
// has to grow, the allocation is extended by a multiple of this stride to
// amortize reallocation frequency.
const chunkSize = 32

// GapBuffer is a dynamic byte sequence that allows efficient insertion and
// removal operations near the same location. Ideal for text editors.
//
// The underlying allocation is laid out as
//
//	[ head | gap | tail ]
//
// where head and tail hold the content and the gap is unused storage which
// slides to the active edit point. Methods that take or return positions use
// byte offsets into the content; the gap is invisible to callers.
//
// The zero value
//
//	GapBuffer{}
//
// is a valid empty buffer with capacity 0. A GapBuffer must not be used
// from multiple goroutines without external synchronization.
type GapBuffer struct {
	buf      []byte // single contiguous allocation
	gapStart int    // buf[:gapStart] is the head
	gapEnd   int    // buf[gapEnd:] is the tail
}

// WithCapacity creates a buffer with a capacity-sized allocation. The whole
// allocation starts out as gap, i.e. the buffer is empty. Capacity 0 is
// legal and yields a buffer which grows on first insert.
//
// Allocation failure is unrecoverable and surfaces as a runtime panic; the
// buffer is never silently capped.
func WithCapacity(capacity int) *GapBuffer {
	assert(capacity >= 0, "buffer capacity may not be negative")
	return &GapBuffer{
		buf:      make([]byte, capacity),
		gapStart: 0,
		gapEnd:   capacity,
	}
}

// FromString creates a buffer holding the bytes of s, with no spare gap.
// The first subsequent insert will trigger a growth step.
func FromString(s string) *GapBuffer {
	b := WithCapacity(len(s))
	err := b.InsertString(0, s)
	assert(err == nil, "FromString: insert at 0 cannot be out of bounds")
	return b
}

// Len returns the content length in bytes. The gap does not count.
func (b *GapBuffer) Len() int {
	return b.gapStart + len(b.buf) - b.gapEnd
}

// Cap returns the total allocation size in bytes, including the gap.
func (b *GapBuffer) Cap() int {
	return len(b.buf)
}

// GapLen returns the current size of the gap in bytes.
func (b *GapBuffer) GapLen() int {
	return b.gapEnd - b.gapStart
}

// IsVoid reports whether the buffer has no content bytes.
func (b *GapBuffer) IsVoid() bool {
	return b.Len() == 0
}

// Insert inserts data into the content at offset, i.e. between the old
// bytes [0,offset) and [offset,Len()). Offset must lie within [0,Len()];
// an out-of-range offset returns ErrIndexOutOfBounds and leaves the buffer
// untouched.
//
// Cost is O(gap move distance + len(data)), which degenerates to amortized
// O(1) when consecutive inserts land near each other.
func (b *GapBuffer) Insert(offset int, data []byte) error {
	if offset < 0 || offset > b.Len() {
		return ErrIndexOutOfBounds
	}
	if len(data) == 0 {
		return nil
	}
	if len(data) > b.GapLen() {
		b.growGap(len(data))
	}
	b.moveGapTo(offset)
	copy(b.buf[b.gapStart:], data)
	b.gapStart += len(data)
	return nil
}

// InsertString inserts the bytes of s at offset. See Insert.
func (b *GapBuffer) InsertString(offset int, s string) error {
	if offset < 0 || offset > b.Len() {
		return ErrIndexOutOfBounds
	}
	if len(s) == 0 {
		return nil
	}
	if len(s) > b.GapLen() {
		b.growGap(len(s))
	}
	b.moveGapTo(offset)
	copy(b.buf[b.gapStart:], s)
	b.gapStart += len(s)
	return nil
}

// Remove deletes the content range [start,end). The range must be non-empty
// and must lie within the content: 0 <= start < end <= Len(). An empty or
// inverted range returns ErrIllegalRange, a range reaching outside the
// content returns ErrIndexOutOfBounds. The buffer is never silently
// truncated or clamped.
//
// Internally the gap slides to start and swallows the range, so the cost is
// O(gap move distance) rather than O(Len()).
func (b *GapBuffer) Remove(start, end int) error {
	if start >= end {
		return ErrIllegalRange
	}
	if start < 0 || start >= b.Len() || end > b.Len() {
		return ErrIndexOutOfBounds
	}
	b.moveGapTo(start)
	b.gapEnd += end - start
	assert(b.gapEnd <= len(b.buf), "gap may not extend beyond the allocation")
	return nil
}

// Clear resets the buffer to an all-gap state, keeping the allocation.
func (b *GapBuffer) Clear() {
	b.gapStart = 0
	b.gapEnd = len(b.buf)
}

// String returns the complete content as a Go string. This is a copying
// operation: the result never aliases the buffer's live allocation.
func (b *GapBuffer) String() string {
	out := make([]byte, 0, b.Len())
	out = append(out, b.head()...)
	out = append(out, b.tail()...)
	return string(out)
}

// Bytes returns a copy of the complete content.
func (b *GapBuffer) Bytes() []byte {
	out := make([]byte, 0, b.Len())
	out = append(out, b.head()...)
	out = append(out, b.tail()...)
	return out
}

// Head returns the content before the gap as an owned string.
func (b *GapBuffer) Head() string {
	return string(b.head())
}

// Tail returns the content after the gap as an owned string.
func (b *GapBuffer) Tail() string {
	return string(b.tail())
}

// head is the content before the gap. The returned slice aliases the live
// allocation and is invalidated by the next mutation.
func (b *GapBuffer) head() []byte {
	return b.buf[:b.gapStart]
}

// tail is the content after the gap. Aliasing caveat as for head.
func (b *GapBuffer) tail() []byte {
	return b.buf[b.gapEnd:]
}

// byteAt returns the content byte at logical offset i, skipping the gap.
func (b *GapBuffer) byteAt(i int) byte {
	if i < b.gapStart {
		return b.buf[i]
	}
	return b.buf[i+b.GapLen()]
}

// moveGapTo slides the gap so that its start aligns with content offset
// offset. All content bytes are preserved; only their position relative to
// the gap changes. Source and destination ranges may overlap, which copy
// handles like memmove.
func (b *GapBuffer) moveGapTo(offset int) {
	d := offset - b.gapStart
	if d == 0 {
		return
	}
	if d < 0 { // gap moves left: bytes [offset,gapStart) change from head to tail
		copy(b.buf[b.gapEnd+d:b.gapEnd], b.buf[offset:b.gapStart])
		b.gapStart = offset
		b.gapEnd += d
	} else { // gap moves right: d bytes after the gap change from tail to head
		copy(b.buf[b.gapStart:], b.buf[b.gapEnd:b.gapEnd+d])
		b.gapStart += d
		b.gapEnd += d
	}
}

// growGap extends the allocation so that the gap can hold at least need
// bytes. The growth amount is the shortfall rounded up to chunkSize. The
// head keeps its position at the front, the tail moves to the new end of
// the allocation, and the enlarged gap sits contiguously between them.
func (b *GapBuffer) growGap(need int) {
	shortfall := need - b.GapLen()
	assert(shortfall > 0, "growGap called with sufficient gap")
	chunk := (shortfall + chunkSize - 1) / chunkSize * chunkSize
	T().Debugf("gap buffer grows by %d bytes to capacity %d", chunk, len(b.buf)+chunk)
	newbuf := make([]byte, len(b.buf)+chunk)
	copy(newbuf, b.head())
	tailLen := len(b.buf) - b.gapEnd
	copy(newbuf[len(newbuf)-tailLen:], b.tail())
	b.buf = newbuf
	b.gapEnd = len(newbuf) - tailLen
}

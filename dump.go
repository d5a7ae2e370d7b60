package gapbuffer

import (
	"fmt"
	"io"
)

// DumpLayout outputs the internal segmentation of a buffer
// (for debugging purposes).
//
// The format shows head, gap and tail with their extents, e.g.
//
//	[ head 5 "hello" | gap 27 | tail 6 " world" ]
//
// Content segments longer than a handful of bytes are abbreviated.
func DumpLayout(b *GapBuffer, w io.Writer) {
	fmt.Fprintf(w, "[ head %d %q | gap %d | tail %d %q ]\n",
		b.gapStart, abbrev(b.head()), b.GapLen(),
		len(b.buf)-b.gapEnd, abbrev(b.tail()))
}

const abbrevLen = 16

func abbrev(seg []byte) string {
	if len(seg) <= abbrevLen {
		return string(seg)
	}
	return string(seg[:abbrevLen-1]) + "…"
}

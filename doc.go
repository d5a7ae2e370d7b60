/*
Package gapbuffer implements a gap buffer: a mutable byte sequence
optimized for edit operations which cluster around a moving point.

Gap Buffers

A gap buffer stores its content in a single contiguous allocation, split
into two occupied segments with a span of unused storage—the gap—between
them. Insertions write into the gap; the gap slides to wherever editing
currently happens. As long as consecutive edits land near each other, as
they do under an editor's cursor, the buffer absorbs them in amortized
constant time, where a plain contiguous array would shift the trailing
content on every keystroke.

From Wikipedia:
A gap buffer in computer science is a dynamic array that allows efficient
insertion and deletion operations clustered near the same location. Gap
buffers are especially common in text editors, where most changes to the
text occur at or near the current location of the cursor.

_________________________________________________________________________

Gap buffers complement tree-based text structures like ropes/cords: a cord
wins for very large texts and for frequent non-local operations, while a
gap buffer is hard to beat for a moderately sized text edited at a point.
The performance characteristics are:

	Operation     |   Gap buffer    |  String
	--------------+-----------------+--------
	Insert at gap |   O(1) am.      |   O(n)
	Insert remote |   O(distance)   |   O(n)
	Delete        |   O(distance)   |   O(n)
	Render        |   O(n)          |   O(1)

The buffer operates on raw bytes. It does not validate UTF-8; callers that
hand it text are responsible for keeping multi-byte sequences intact.

A GapBuffer has exactly one owner. It is not safe for concurrent use; if it
is shared between goroutines, all access has to be serialized by the caller.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file in the repository root.

*/
package gapbuffer

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// BufferError is an error type for the gapbuffer module.
type BufferError string

func (e BufferError) Error() string {
	return string(e)
}

// ErrIndexOutOfBounds is flagged whenever a buffer position is
// greater than the length of the buffer content.
const ErrIndexOutOfBounds = BufferError("index out of bounds")

// ErrIllegalRange is flagged for removal ranges which are empty or inverted.
const ErrIllegalRange = BufferError("illegal range")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = BufferError("illegal arguments")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}

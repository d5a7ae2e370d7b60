/*
Package metrics provides some pre-manufactured measures on gap buffer content.

All measures work on a snapshot of the buffer content taken at call time.
They assume the content is valid UTF-8 text; the buffer itself never
enforces this.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package metrics

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'gapbuffer'
func tracer() tracing.Trace {
	return tracing.Select("gapbuffer")
}

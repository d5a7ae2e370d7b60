/*
Package textfile provides API helpers to load text files into gap buffers.

Loading happens fragment by fragment in a background goroutine, which
exclusively owns the buffer until loading completes (gap buffers have a
single-owner contract). Progress is broadcast to any number of subscribers;
the finished buffer is handed over through the Loading handle.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'gapbuffer'
func tracer() tracing.Trace {
	return tracing.Select("gapbuffer")
}

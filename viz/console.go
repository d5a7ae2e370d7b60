/*
Package viz visualizes the internal segmentation of gap buffers on a console
(for debugging and teaching purposes).

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package viz

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/gapbuffer"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/term"
)

// tracer writes to trace with key 'gapbuffer'
func tracer() tracing.Trace {
	return tracing.Select("gapbuffer")
}

// Region identifies one of the three segments of a gap buffer's allocation.
type Region int

// The three allocation regions.
const (
	HeadRegion Region = iota
	GapRegion
	TailRegion
)

// ConsoleDumper renders the [head|gap|tail] layout of a buffer for a
// console, with one color per region. Non-printable bytes are shown as '·'.
type ConsoleDumper struct {
	colors    map[Region]*color.Color
	linewidth int // rendering folds at this width, in character cells
}

// NewConsoleDumper creates a dumper with the given palette. colors may be
// nil or contain just a subset of the regions; missing regions render
// uncolored. The line width is taken from the current terminal, if stdout
// is interactive, with a fallback of 65.
func NewConsoleDumper(colors map[Region]*color.Color) *ConsoleDumper {
	if colors == nil {
		colors = makeDefaultPalette()
	}
	return &ConsoleDumper{
		colors:    colors,
		linewidth: lineWidthFromTerminal(),
	}
}

func makeDefaultPalette() map[Region]*color.Color {
	palette := map[Region]*color.Color{
		HeadRegion: color.New(color.FgGreen),
		GapRegion:  color.New(color.Faint),
		TailRegion: color.New(color.FgBlue),
	}
	return palette
}

// Print renders the buffer layout to stdout.
func (cd *ConsoleDumper) Print(b *gapbuffer.GapBuffer) {
	cd.Fprint(os.Stdout, b)
}

// Fprint renders the buffer layout to w. The output shows the three
// regions in allocation order with their extents, folded to the dumper's
// line width:
//
//	head  6 |hello,|
//	gap  26 |··························|
//	tail  6 | world|
func (cd *ConsoleDumper) Fprint(w io.Writer, b *gapbuffer.GapBuffer) {
	head, tail := b.Head(), b.Tail()
	cd.segment(w, HeadRegion, "head", printable(head))
	cd.segment(w, GapRegion, "gap", strings.Repeat("·", b.GapLen()))
	cd.segment(w, TailRegion, "tail", printable(tail))
}

// segment outputs one region row, folding overlong content at the line
// width.
func (cd *ConsoleDumper) segment(w io.Writer, region Region, label string, content string) {
	fold := cd.linewidth - 12 // label, count and frame share the line
	if fold < 10 {
		fold = 10
	}
	runes := []rune(content)
	fmt.Fprintf(w, "%-4s %3d |", label, len(runes))
	for i, r := range runes {
		if i > 0 && i%fold == 0 {
			fmt.Fprintf(w, "|\n         |")
		}
		cd.colored(w, region, string(r))
	}
	fmt.Fprintf(w, "|\n")
}

func (cd *ConsoleDumper) colored(w io.Writer, region Region, s string) {
	if c, ok := cd.colors[region]; ok {
		c.Fprint(w, s)
		return
	}
	io.WriteString(w, s)
}

func printable(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if r < ' ' || r == 0x7f {
			sb.WriteRune('·')
		} else {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// lineWidthFromTerminal checks whether stdout is a terminal, and if so
// reads the terminal's width to fold dump rows accordingly.
func lineWidthFromTerminal() int {
	linewidth := 65
	if term.IsTerminal(0) {
		w, _, err := term.GetSize(0)
		if err == nil && w > 10 {
			linewidth = w
		}
	}
	tracer().Debugf("setting dump line width to %d", linewidth)
	return linewidth
}

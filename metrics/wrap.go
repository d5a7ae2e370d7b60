package metrics

import (
	"bufio"

	"github.com/npillmayer/gapbuffer"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax11"
	"github.com/npillmayer/uax/uax14"
)

// Width returns the display width of s in fixed-width character cells
// (“en”s), resolving grapheme clusters and East Asian width classes.
//
// If context is nil, uax11.LatinContext is used.
func Width(s string, context *uax11.Context) int {
	if s == "" { // grapheme.StringFromString chokes on empty input
		return 0
	}
	if context == nil {
		context = uax11.LatinContext
	}
	gstr := grapheme.StringFromString(s)
	return uax11.StringWidth(gstr, context)
}

// LineBreaks computes first-fit line break offsets for the buffer content,
// given a target line width in fixed-width character cells.
//
// Break opportunities follow the UAX#14 line breaking algorithm; fragment
// widths are measured per grapheme cluster with UAX#11 width classes. The
// returned offsets are byte positions into the content, in ascending order.
//
// If context is nil, uax11.LatinContext is used.
//
// Wikipedia:
//
//	1. |  SpaceLeft := LineWidth
//	2. |  for each Word in Text
//	3. |      if (Width(Word) + SpaceWidth) > SpaceLeft
//	4. |           insert line break before Word in Text
//	5. |           SpaceLeft := LineWidth - Width(Word)
//	6. |      else
//	7. |           SpaceLeft := SpaceLeft - (Width(Word) + SpaceWidth)
func LineBreaks(b *gapbuffer.GapBuffer, linewidth int, context *uax11.Context) ([]int, error) {
	if linewidth <= 0 {
		return nil, gapbuffer.ErrIllegalArguments
	}
	if context == nil {
		context = uax11.LatinContext
	}
	linewrap := uax14.NewLineWrap()
	segmenter := segment.NewSegmenter(linewrap)
	segmenter.Init(bufio.NewReader(b.Reader()))
	spaceleft := linewidth
	breaks := make([]int, 0, 20)
	prevpos := 0
	for segmenter.Next() {
		frag := string(segmenter.Bytes())
		if frag == "" {
			continue
		}
		gstr := grapheme.StringFromString(frag)
		fraglen := uax11.StringWidth(gstr, context)
		tracer().Debugf("next segment: %s   (len=%d|%d)", frag, fraglen, spaceleft)
		if fraglen >= spaceleft {
			breaks = append(breaks, prevpos)
			tracer().Debugf("break @ %d", prevpos)
			spaceleft = linewidth - fraglen
			prevpos += len(frag)
		} else {
			spaceleft -= fraglen
			prevpos += len(frag)
		}
	}
	return breaks, nil
}

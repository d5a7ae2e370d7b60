package metrics

import (
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/gapbuffer"
)

// Span is a byte-range descriptor inside a buffer snapshot.
//
// Pos is the start byte offset, Len is the span length in bytes.
type Span struct {
	Pos uint64
	Len uint64
}

// Words scans the content range [i,j) for words and returns their spans.
//
// A word is a maximal run of non-space runes, in the sense of
// unicode.IsSpace. Span positions are absolute content offsets.
func Words(b *gapbuffer.GapBuffer, i, j int) ([]Span, error) {
	if i > j {
		return nil, gapbuffer.ErrIllegalRange
	}
	if i < 0 || j > b.Len() {
		return nil, gapbuffer.ErrIndexOutOfBounds
	}
	if i == j {
		return nil, nil
	}
	content := b.Bytes()[i:j]
	spans := findWordSpans(content, uint64(i))
	tracer().Debugf("found %d word(s) in range [%d,%d)", len(spans), i, j)
	return spans, nil
}

// WordCount returns the number of words in the complete buffer content.
func WordCount(b *gapbuffer.GapBuffer) int {
	spans, err := Words(b, 0, b.Len())
	if err != nil {
		return 0
	}
	return len(spans)
}

func findWordSpans(content []byte, base uint64) []Span {
	spans := make([]Span, 0, 8)
	for pos := 0; pos < len(content); {
		r, width := utf8.DecodeRune(content[pos:])
		if unicode.IsSpace(r) {
			pos += width
			continue
		}
		start := pos
		pos += width
		for pos < len(content) {
			r, width = utf8.DecodeRune(content[pos:])
			if unicode.IsSpace(r) {
				break
			}
			pos += width
		}
		spans = append(spans, Span{
			Pos: base + uint64(start),
			Len: uint64(pos - start),
		})
	}
	return spans
}

package metrics

import (
	"unicode/utf8"

	"github.com/npillmayer/gapbuffer"
)

// Summary aggregates text metrics over buffer content.
type Summary struct {
	Bytes uint64
	Chars uint64
	Lines uint64
}

// Add combines two summaries of adjacent content ranges.
func (s Summary) Add(other Summary) Summary {
	return Summary{
		Bytes: s.Bytes + other.Bytes,
		Chars: s.Chars + other.Chars,
		Lines: s.Lines + other.Lines,
	}
}

// Summarize scans the complete buffer content and aggregates byte, rune and
// newline counts.
func Summarize(b *gapbuffer.GapBuffer) Summary {
	return summarize(b.Bytes())
}

// SummarizeRange aggregates metrics for the content range [i,j).
func SummarizeRange(b *gapbuffer.GapBuffer, i, j int) (Summary, error) {
	if i > j {
		return Summary{}, gapbuffer.ErrIllegalRange
	}
	if i < 0 || j > b.Len() {
		return Summary{}, gapbuffer.ErrIndexOutOfBounds
	}
	return summarize(b.Bytes()[i:j]), nil
}

func summarize(content []byte) Summary {
	var s Summary
	s.Bytes = uint64(len(content))
	for pos := 0; pos < len(content); {
		r, width := utf8.DecodeRune(content[pos:])
		s.Chars++
		if r == '\n' {
			s.Lines++
		}
		pos += width
	}
	return s
}

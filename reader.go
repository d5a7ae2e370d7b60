package gapbuffer

import "io"

// Reader returns a reader for the bytes of the buffer's content.
//
// The reader operates on a snapshot taken when Reader is called; mutations
// of the buffer after that point are not reflected. This keeps the live
// allocation unaliased while the buffer continues to be edited.
func (b *GapBuffer) Reader() io.Reader {
	return &bufReader{content: b.Bytes()}
}

type bufReader struct {
	content []byte
	cursor  int
}

func (br *bufReader) Read(p []byte) (n int, err error) {
	if br.cursor >= len(br.content) {
		return 0, io.EOF
	}
	n = copy(p, br.content[br.cursor:])
	br.cursor += n
	return n, nil
}

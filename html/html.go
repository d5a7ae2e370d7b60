/*
Package html extracts the textual content of HTML fragments into gap buffers.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package html

import (
	"io"

	"github.com/npillmayer/gapbuffer"
	"golang.org/x/net/html"
)

// InnerText fills a gap buffer with the textual content of an HTML element
// and all its descendents. It resembles the text produced by
//
//	document.getElementById("myNode").innerText
//
// in JavaScript (except that html.InnerText cannot respect CSS styling
// suppressing the visibility of the node's descendents).
//
// Text nodes are appended in document order. The buffer's gap ends up at
// the end of the content, ready for append-style editing.
func InnerText(n *html.Node) (*gapbuffer.GapBuffer, error) {
	if n == nil {
		return nil, gapbuffer.ErrIllegalArguments
	}
	buf := gapbuffer.WithCapacity(0)
	collectText(n, buf)
	return buf, nil
}

func collectText(n *html.Node, buf *gapbuffer.GapBuffer) {
	if n.Type == html.TextNode {
		if err := buf.InsertString(buf.Len(), n.Data); err != nil {
			panic("append at end of buffer cannot be out of bounds")
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, buf)
	}
}

// TextFromHTML creates a gap buffer from the textual content of an HTML
// fragment. It does no interpretation of layout and styling, but extracts
// the pure text.
func TextFromHTML(input io.Reader) (*gapbuffer.GapBuffer, error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return nil, err
	}
	buf := gapbuffer.WithCapacity(0)
	for _, n := range nodes {
		collectText(n, buf)
	}
	return buf, nil
}

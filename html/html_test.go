package html

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
)

func TestTextFromHTML(t *testing.T) {
	input := `<p>Hello <b>World</b>, how are you?</p>`
	buf, err := TextFromHTML(strings.NewReader(input))
	if err != nil {
		t.Fatal(err.Error())
	}
	if buf.String() != "Hello World, how are you?" {
		t.Errorf("unexpected text: %q", buf.String())
	}
}

func TestTextFromHTMLIsEditable(t *testing.T) {
	buf, err := TextFromHTML(strings.NewReader(`<ul><li>one</li><li>two</li></ul>`))
	if err != nil {
		t.Fatal(err.Error())
	}
	if buf.String() != "onetwo" {
		t.Fatalf("unexpected text: %q", buf.String())
	}
	if err := buf.InsertString(3, ", "); err != nil {
		t.Fatal(err.Error())
	}
	if buf.String() != "one, two" {
		t.Errorf("unexpected text after edit: %q", buf.String())
	}
}

func TestInnerText(t *testing.T) {
	doc, err := html.Parse(strings.NewReader(`<html><body><p>a<span>b</span>c</p></body></html>`))
	if err != nil {
		t.Fatal(err.Error())
	}
	buf, err := InnerText(doc)
	if err != nil {
		t.Fatal(err.Error())
	}
	if buf.String() != "abc" {
		t.Errorf("unexpected inner text: %q", buf.String())
	}
}

func TestInnerTextNilNode(t *testing.T) {
	if _, err := InnerText(nil); err == nil {
		t.Errorf("expected error for nil node")
	}
}

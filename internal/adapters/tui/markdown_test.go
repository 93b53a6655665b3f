package tui

import "testing"

func kinds(doc []docLine) []docLineKind {
	out := make([]docLineKind, len(doc))
	for i, dl := range doc {
		out[i] = dl.kind
	}
	return out
}

func TestRenderDoc_HeadingGetsSeparator(t *testing.T) {
	doc := renderDoc("# Title\nbody text")
	want := []docLineKind{docHeading, docBlank, docParagraph}
	got := kinds(doc)
	if len(got) != len(want) {
		t.Fatalf("kinds = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("kinds = %v, want %v", got, want)
		}
	}
	if doc[0].text != "# Title" {
		t.Errorf("heading text = %q", doc[0].text)
	}
}

func TestRenderDoc_CodeBlock(t *testing.T) {
	doc := renderDoc("```\nfmt.Println()\nreturn\n```\nafter")
	want := []docLineKind{docCode, docCode, docBlank, docParagraph}
	got := kinds(doc)
	if len(got) != len(want) {
		t.Fatalf("kinds = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("kinds = %v, want %v", got, want)
		}
	}
	if doc[0].text != "fmt.Println()" {
		t.Errorf("code line = %q", doc[0].text)
	}
	if doc[3].text != "after" {
		t.Errorf("trailing paragraph = %q", doc[3].text)
	}
}

func TestRenderDoc_ListItems(t *testing.T) {
	doc := renderDoc("- first\n* second\nplain")
	if doc[0].kind != docBullet || doc[0].text != "• first" {
		t.Errorf("first item = %+v", doc[0])
	}
	if doc[1].kind != docBullet || doc[1].text != "• second" {
		t.Errorf("second item = %+v", doc[1])
	}
	if doc[2].kind != docParagraph {
		t.Errorf("plain line classified as %v", doc[2].kind)
	}
}

func TestRenderDoc_PlainContentPassesThrough(t *testing.T) {
	doc := renderDoc("one\n\ntwo")
	if len(doc) != 3 {
		t.Fatalf("got %d lines, want 3", len(doc))
	}
	for i, want := range []string{"one", "", "two"} {
		if doc[i].text != want {
			t.Errorf("line %d = %q, want %q", i, doc[i].text, want)
		}
	}
}

func TestStyleInline_UnmatchedBacktickStaysLiteral(t *testing.T) {
	if got := styleInline("no spans here"); got != "no spans here" {
		t.Errorf("plain chunk changed: %q", got)
	}
	if got := styleInline("broken `span"); got != "broken `span" {
		t.Errorf("unmatched backtick changed: %q", got)
	}
	// A complete span is restyled; its backticks are consumed.
	got := styleInline("a `b` c")
	if got == "a `b` c" {
		t.Error("complete span was not styled")
	}
}

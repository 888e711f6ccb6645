package render

import (
	"strings"
	"testing"

	"github.com/jinunyachhyon/folio/internal/content"
	"github.com/jinunyachhyon/folio/internal/parser"
)

func TestToHTML_Basic(t *testing.T) {
	out, err := ToHTML("# Title\n\nSome *text*.\n")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, `<h1 id="title">Title</h1>`) {
		t.Errorf("missing heading anchor in %q", out)
	}
	if !strings.Contains(out, "<em>text</em>") {
		t.Errorf("missing emphasis in %q", out)
	}
}

func TestToHTML_AnchorsMatchHeadings(t *testing.T) {
	src := "# Title\n\n## Sub Heading!\n\n## Setup\n\n## Setup\n\n```sh\n# not a heading\n```\n\n## Setup-1\n"
	out, err := ToHTML(src)
	if err != nil {
		t.Fatal(err)
	}
	headings := parser.ExtractHeadings(src)
	if len(headings) != 5 {
		t.Fatalf("got %d headings", len(headings))
	}
	for _, h := range headings {
		if !strings.Contains(out, `id="`+h.Slug+`"`) {
			t.Errorf("anchor %q not found in output", h.Slug)
		}
	}
	if strings.Count(out, " id=\"") != len(headings) {
		t.Errorf("unexpected anchor count in %q", out)
	}
}

func TestToHTML_BuiltinPostsAnchors(t *testing.T) {
	for _, p := range content.BuiltinPosts() {
		out, err := ToHTML(p.Content)
		if err != nil {
			t.Fatalf("%s: %v", p.Slug, err)
		}
		for _, h := range parser.ExtractHeadings(p.Content) {
			if !strings.Contains(out, `id="`+h.Slug+`"`) {
				t.Errorf("%s: anchor %q missing", p.Slug, h.Slug)
			}
		}
	}
}

func TestToHTML_Table(t *testing.T) {
	out, err := ToHTML("| a | b |\n|---|---|\n| 1 | 2 |\n")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "<table>") {
		t.Errorf("GFM table not rendered: %q", out)
	}
}

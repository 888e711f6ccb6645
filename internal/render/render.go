// Package render converts post bodies from Markdown to HTML with goldmark.
// Heading anchors are allocated by parser.Slugger, so they match the slugs
// returned by parser.ExtractHeadings for the same body.
package render

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	gmparser "github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/jinunyachhyon/folio/internal/parser"
)

// HighlightStyle is the chroma style used for fenced code blocks.
const HighlightStyle = "github"

var md = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		extension.Footnote,
		highlighting.NewHighlighting(
			highlighting.WithStyle(HighlightStyle),
		),
	),
	goldmark.WithParserOptions(
		gmparser.WithAutoHeadingID(),
	),
	goldmark.WithRendererOptions(
		html.WithUnsafe(),
	),
)

// headingIDs feeds goldmark's auto heading IDs through a Slugger.
type headingIDs struct {
	slugs parser.Slugger
}

func (h *headingIDs) Generate(value []byte, _ ast.NodeKind) []byte {
	return []byte(h.slugs.Slug(string(value)))
}

func (h *headingIDs) Put(value []byte) {
	h.slugs.Reserve(string(value))
}

// ToHTML converts a Markdown body into HTML.
func ToHTML(source string) (string, error) {
	var buf bytes.Buffer
	ctx := gmparser.NewContext(gmparser.WithIDs(&headingIDs{}))
	if err := md.Convert([]byte(source), &buf, gmparser.WithContext(ctx)); err != nil {
		return "", fmt.Errorf("render: %w", err)
	}
	return buf.String(), nil
}

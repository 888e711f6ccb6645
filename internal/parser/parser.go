// Package parser extracts front matter, metadata and headings from Markdown content.
package parser

import (
	"bytes"
	"strings"

	"gopkg.in/yaml.v3"
)

// Result holds the output of parsing a Markdown file.
type Result struct {
	Frontmatter map[string]any
	Body        string
	Meta        Metadata
}

// Parse separates the front matter from the body and decodes the
// recognised metadata keys. It never fails: content without front matter,
// or with front matter that is not valid YAML, is returned as body only.
func Parse(data []byte) *Result {
	fm, body := splitFrontmatter(data)
	return &Result{
		Frontmatter: fm,
		Body:        body,
		Meta:        DecodeMetadata(fm),
	}
}

// splitFrontmatter separates YAML front matter (between leading --- delimiters)
// from the Markdown body. If no front matter is found the entire content is body.
func splitFrontmatter(data []byte) (map[string]any, string) {
	const delim = "---"
	data = bytes.TrimPrefix(data, []byte("\uFEFF"))
	trimmed := bytes.TrimLeft(data, "\n\r")

	if !bytes.HasPrefix(trimmed, []byte(delim)) {
		return nil, string(data)
	}

	rest := trimmed[len(delim):]
	idx := bytes.Index(rest, []byte("\n"+delim))
	if idx < 0 {
		return nil, string(data)
	}

	yamlBlock := rest[:idx]
	afterDelim := rest[idx+1+len(delim):]
	// Drop the remainder of the closing delimiter line.
	if nl := bytes.IndexByte(afterDelim, '\n'); nl >= 0 && len(bytes.TrimSpace(afterDelim[:nl])) == 0 {
		afterDelim = afterDelim[nl+1:]
	} else if nl < 0 && len(bytes.TrimSpace(afterDelim)) == 0 {
		afterDelim = nil
	}
	body := strings.TrimLeft(string(afterDelim), "\n\r")

	var fm map[string]any
	if err := yaml.Unmarshal(yamlBlock, &fm); err != nil {
		return nil, string(data)
	}
	return fm, body
}

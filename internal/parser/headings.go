package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jinunyachhyon/folio/internal/models"
)

var (
	headingRe    = regexp.MustCompile(`^(#{1,6})[ \t]+(.+?)(?:[ \t]+#+)?[ \t]*$`)
	slugStripRe  = regexp.MustCompile(`[^\w\s-]`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// emptySlug replaces slugs that strip down to nothing.
const emptySlug = "section"

// BaseSlug derives a URL fragment from heading text: lowercase, drop
// everything but word characters, whitespace and hyphens, then turn
// whitespace runs into single hyphens.
func BaseSlug(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = slugStripRe.ReplaceAllString(s, "")
	return whitespaceRe.ReplaceAllString(s, "-")
}

// Slugger hands out unique slugs within one document. The first use of a
// slug is returned as is; later collisions get -1, -2, ... appended.
// The zero value is ready to use.
type Slugger struct {
	used map[string]struct{}
}

// Slug returns a unique slug for text.
func (s *Slugger) Slug(text string) string {
	return s.Reserve(BaseSlug(text))
}

// Reserve marks base (or the first free suffixed variant) as used and returns it.
func (s *Slugger) Reserve(base string) string {
	if s.used == nil {
		s.used = make(map[string]struct{})
	}
	if base == "" {
		base = emptySlug
	}
	slug := base
	for n := 1; ; n++ {
		if _, taken := s.used[slug]; !taken {
			break
		}
		slug = base + "-" + strconv.Itoa(n)
	}
	s.used[slug] = struct{}{}
	return slug
}

// ExtractHeadings returns the ATX headings of a Markdown document in order.
// Lines inside fenced code blocks are skipped.
func ExtractHeadings(markdown string) []models.Heading {
	var (
		out   []models.Heading
		slugs Slugger
		fence string
	)
	for _, line := range strings.Split(markdown, "\n") {
		line = strings.TrimRight(line, "\r")
		trimmed := strings.TrimLeft(line, " ")
		if marker := fenceMarker(trimmed); marker != "" && len(line)-len(trimmed) < 4 {
			switch {
			case fence == "":
				fence = marker
			case strings.HasPrefix(marker, fence[:1]) && len(marker) >= len(fence) && strings.TrimSpace(trimmed[len(marker):]) == "":
				fence = ""
			}
			continue
		}
		if fence != "" {
			continue
		}
		m := headingRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		text := strings.TrimSpace(m[2])
		if text == "" {
			continue
		}
		out = append(out, models.Heading{
			Level: len(m[1]),
			Text:  text,
			Slug:  slugs.Slug(text),
		})
	}
	return out
}

// fenceMarker returns the run of ``` or ~~~ (3 or more) that opens line, if any.
func fenceMarker(line string) string {
	for _, c := range []byte{'`', '~'} {
		n := 0
		for n < len(line) && line[n] == c {
			n++
		}
		if n >= 3 {
			return line[:n]
		}
	}
	return ""
}

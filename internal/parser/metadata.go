package parser

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jinunyachhyon/folio/internal/models"
)

// Metadata holds the recognised front matter keys. A zero field means the
// key was absent or could not be coerced to the expected shape.
type Metadata struct {
	Title      string
	Date       time.Time
	Tags       []string
	HasTags    bool
	Author     string
	Excerpt    string
	CoverImage string
	Series     *models.Series
}

var dateLayouts = []string{
	models.DateLayout,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

// DecodeMetadata coerces front matter values field by field. Malformed
// values are dropped individually; the remaining fields are still decoded.
func DecodeMetadata(fm map[string]any) Metadata {
	var m Metadata
	if fm == nil {
		return m
	}
	m.Title = stringField(fm, "title")
	m.Author = stringField(fm, "author")
	m.Excerpt = stringField(fm, "excerpt")
	m.CoverImage = stringField(fm, "coverImage")
	if m.CoverImage == "" {
		m.CoverImage = stringField(fm, "cover_image")
	}
	m.Date = dateField(fm["date"])
	m.Tags, m.HasTags = tagsField(fm["tags"])
	m.Series = seriesField(fm["series"])
	return m
}

func stringField(fm map[string]any, key string) string {
	switch v := fm[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case int, int64, float64, bool:
		return fmt.Sprint(v)
	}
	return ""
}

// dateField accepts YAML timestamps as well as quoted date strings.
func dateField(raw any) time.Time {
	switch v := raw.(type) {
	case time.Time:
		return calendarDate(v)
	case string:
		s := strings.TrimSpace(v)
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return calendarDate(t)
			}
		}
	}
	return time.Time{}
}

// calendarDate drops the clock part, keeping the date as written.
func calendarDate(t time.Time) time.Time {
	y, mo, d := t.Date()
	return time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)
}

func tagsField(raw any) ([]string, bool) {
	var out []string
	seen := make(map[string]struct{})
	add := func(s string) {
		s = strings.TrimSpace(s)
		if s == "" {
			return
		}
		if _, dup := seen[s]; dup {
			return
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	switch v := raw.(type) {
	case []any:
		for _, item := range v {
			switch s := item.(type) {
			case string:
				add(s)
			case int, int64, float64:
				add(fmt.Sprint(s))
			}
		}
	case string:
		for _, s := range strings.Split(v, ",") {
			add(s)
		}
	default:
		return nil, false
	}
	return out, true
}

func seriesField(raw any) *models.Series {
	m, ok := raw.(map[string]any)
	if !ok {
		return nil
	}
	name := stringField(m, "name")
	if name == "" {
		return nil
	}
	part, ok := intField(m["part"])
	if !ok || part < 1 {
		return nil
	}
	return &models.Series{
		Name:        name,
		Part:        part,
		Description: stringField(m, "description"),
	}
}

func intField(raw any) (int, bool) {
	switch v := raw.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case uint64:
		return int(v), true
	case float64:
		if v == float64(int(v)) {
			return int(v), true
		}
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		return n, err == nil
	}
	return 0, false
}

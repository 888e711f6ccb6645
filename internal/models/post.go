// Package models defines the domain types for folio.
package models

import "time"

// DateLayout is the calendar date format used in front matter, URLs and feeds.
const DateLayout = "2006-01-02"

// Series places a post inside an ordered group of posts.
type Series struct {
	Name        string `json:"name"`
	Part        int    `json:"part"`
	Description string `json:"description,omitempty"`
}

// BlogPost is a single blog document.
type BlogPost struct {
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	Excerpt     string    `json:"excerpt"`
	Content     string    `json:"content"`
	Date        time.Time `json:"date"`
	Tags        []string  `json:"tags"`
	ReadingTime string    `json:"reading_time"`
	CoverImage  string    `json:"cover_image,omitempty"`
	Series      *Series   `json:"series,omitempty"`
}

// Year returns the calendar year the post was published in.
func (p BlogPost) Year() int {
	return p.Date.Year()
}

// DateString returns the post date in DateLayout.
func (p BlogPost) DateString() string {
	return p.Date.Format(DateLayout)
}

// DisplayDate formats the date the way listings show it ("June 15, 2023").
func (p BlogPost) DisplayDate() string {
	return p.Date.Format("January 2, 2006")
}

// HasTag reports whether the post carries tag exactly.
func (p BlogPost) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// BlogSeries is computed on read from the posts that share a series name.
type BlogSeries struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Posts       []BlogPost `json:"posts"`
	TotalParts  int        `json:"total_parts"`
}

// SeriesNavigation holds the neighbours of a post inside its series.
type SeriesNavigation struct {
	Previous *BlogPost  `json:"previous,omitempty"`
	Next     *BlogPost  `json:"next,omitempty"`
	Series   BlogSeries `json:"series"`
}

// Heading is a table-of-contents entry extracted from a post body.
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
	Slug  string `json:"slug"`
}

package parser

import (
	"fmt"
	"strings"
)

const (
	wordsPerMinute = 200
	excerptRunes   = 200
)

// ReadingTime estimates how long body takes to read at 200 words per
// minute, rounded up, never less than one minute.
func ReadingTime(body string) string {
	words := len(strings.Fields(body))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d min read", minutes)
}

// Excerpt returns the first 200 characters of body followed by an ellipsis.
func Excerpt(body string) string {
	r := []rune(body)
	if len(r) > excerptRunes {
		r = r[:excerptRunes]
	}
	return string(r) + "..."
}

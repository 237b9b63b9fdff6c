package rss

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// goldKeywords decides whether a fetched article concerns gold or coin
// pricing. Matching is a case-insensitive substring test over the
// concatenated title and description.
var goldKeywords = []string{
	"طلا و سکه",
	"طلا",
	"سکه",
	"نرخ طلا",
	"نرخ سکه",
	"قیمت طلا",
	"قیمت سکه",
}

var stripPolicy = bluemonday.StrictPolicy()

// Relevant reports whether the article matches any gold/coin keyword.
func Relevant(title, description string) bool {
	text := strings.ToLower(title + " " + description)
	for _, kw := range goldKeywords {
		if strings.Contains(text, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// CleanDescription strips HTML tags and entities from a feed entry
// description and normalizes whitespace.
func CleanDescription(s string) string {
	s = stripPolicy.Sanitize(s)
	s = html.UnescapeString(s)
	s = strings.ReplaceAll(s, " ", " ")
	return strings.TrimSpace(s)
}

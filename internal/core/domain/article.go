package domain

import (
	"strings"
	"time"
	"unicode"
)

// Article represents a wiki article as supplied by the storage layer.
// It is immutable for the duration of a retrieval or ranking operation;
// the core never mutates articles it is handed.
type Article struct {
	// ID is the unique identifier for the article.
	ID string

	// Slug is the URL-safe identifier derived from the title.
	Slug string

	// Title is the human-readable title.
	Title string

	// Content is the full article text (plain text or markdown).
	Content string

	// Category groups related articles (e.g., "history", "science").
	Category string

	// Keywords are caller-supplied tags. They supplement, not replace,
	// the keywords extracted from content during similarity scoring.
	Keywords []string

	// CreatedAt is when the article was first stored.
	CreatedAt time.Time

	// UpdatedAt is when the article was last updated.
	UpdatedAt time.Time
}

// Slugify converts a title or heading into a URL-safe slug:
// lowercase, alphanumeric runs joined by single hyphens.
func Slugify(s string) string {
	var b strings.Builder
	lastHyphen := true // suppress leading hyphen
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

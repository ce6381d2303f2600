package services

import (
	"regexp"
	"strings"
)

var slugStripRe = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL-safe identifier from a title: lowercase, runs of
// non-alphanumeric characters collapsed to a single hyphen, leading and
// trailing hyphens trimmed. Uniqueness is not guaranteed here.
func Slugify(title string) string {
	slug := slugStripRe.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(slug, "-")
}

const excerptLength = 150

// DefaultExcerpt builds the excerpt used when a post is created without one:
// the first 150 characters of the content plus an ellipsis.
func DefaultExcerpt(content string) string {
	runes := []rune(content)
	if len(runes) > excerptLength {
		runes = runes[:excerptLength]
	}
	return string(runes) + "..."
}

const wordsPerMinute = 200

// EstimateReadTime returns the estimated minutes to read the content,
// ceil(word count / 200), never less than 1.
func EstimateReadTime(content string) int {
	words := len(strings.Fields(content))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		return 1
	}
	return minutes
}

// SplitTags splits a stored comma-joined tags string back into a list,
// dropping empty entries. The stored value itself is never normalized.
func SplitTags(tags string) []string {
	if tags == "" {
		return nil
	}
	parts := strings.Split(tags, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

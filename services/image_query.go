package services

import (
	"regexp"
	"strings"
)

const (
	maxImageQueryLength = 50
	fallbackImageQuery  = "technology programming"
)

var nonWordRe = regexp.MustCompile(`[^\w\s]`)

// English stop words removed from image search queries. Matches the list
// applied on word boundaries by GenerateImageQuery.
var imageQueryStopWords = map[string]struct{}{}

func init() {
	for _, w := range strings.Fields(
		"the a an and or but in on at to for of with by from up about into " +
			"through during before after above below between among under over " +
			"inside outside within without upon against toward towards near far " +
			"here there where when why how what which who whom whose this that " +
			"these those i you he she it we they me him her us them my your his " +
			"its our their mine yours hers ours theirs am is are was were be " +
			"been being have has had having do does did doing will would could " +
			"should may might must can shall") {
		imageQueryStopWords[w] = struct{}{}
	}
}

// GenerateImageQuery turns a title/tags pair into a bounded search string for
// the stock-photo lookup: lowercase the title, strip punctuation, drop stop
// words, and trim. If the result is shorter than 3 characters it falls back to
// the first tag (lowercased) or a fixed default, and the result is truncated
// to 50 characters. Deterministic, no I/O.
func GenerateImageQuery(title string, tags []string) string {
	cleaned := nonWordRe.ReplaceAllString(strings.ToLower(title), "")

	words := strings.Fields(cleaned)
	kept := make([]string, 0, len(words))
	for _, w := range words {
		if _, stop := imageQueryStopWords[w]; !stop {
			kept = append(kept, w)
		}
	}
	query := strings.TrimSpace(strings.Join(kept, " "))

	if len(query) < 3 {
		if len(tags) > 0 {
			query = strings.ToLower(tags[0])
		} else {
			query = fallbackImageQuery
		}
	}

	if len(query) > maxImageQueryLength {
		query = query[:maxImageQueryLength]
	}

	return query
}

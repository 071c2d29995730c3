package extractor

import (
	"regexp"
	"strings"
)

// MaxTextLength is the character budget handed to the model.
const MaxTextLength = 4000

const ellipsis = "..."

var (
	tagPattern        = regexp.MustCompile(`<[^>]+>`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// Normalize strips HTML-like tags, collapses whitespace and truncates the
// result to MaxTextLength characters, appending "..." when it cuts.
func Normalize(raw string) string {
	text := tagPattern.ReplaceAllString(raw, "")
	text = whitespacePattern.ReplaceAllString(text, " ")
	text = strings.TrimSpace(text)

	if r := []rune(text); len(r) > MaxTextLength {
		return string(r[:MaxTextLength]) + ellipsis
	}
	return text
}

// preview returns the first n characters of text. When always is set the
// ellipsis is appended even if nothing was cut.
func preview(text string, n int, always bool) string {
	r := []rune(text)
	if len(r) > n {
		return string(r[:n]) + ellipsis
	}
	if always {
		return text + ellipsis
	}
	return text
}

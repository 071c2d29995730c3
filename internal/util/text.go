package util

// TrimText keeps at most maxChars characters of text.
func TrimText(text string, maxChars int) string {
	r := []rune(text)
	if len(r) <= maxChars {
		return text
	}
	return string(r[:maxChars])
}

package resume

import (
	"regexp"
	"strings"
)

const GeneralSection = "General"

var headerPattern = regexp.MustCompile(`(?i)^\s*(objective|summary|education|skills|experience|projects|certifications|achievements|activities|interests|contact)\s*$`)

type Section struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// LabelSections splits résumé text on standalone header lines. Text before
// the first header lands in GeneralSection. A repeated header starts over.
func LabelSections(text string) []Section {
	sections := []Section{{Name: GeneralSection}}
	lines := map[string][]string{}
	index := map[string]int{GeneralSection: 0}
	current := GeneralSection

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if headerPattern.MatchString(line) {
			current = capitalize(line)
			if _, ok := index[current]; !ok {
				index[current] = len(sections)
				sections = append(sections, Section{Name: current})
			}
			lines[current] = nil
			continue
		}
		if line != "" {
			lines[current] = append(lines[current], line)
		}
	}

	for i := range sections {
		sections[i].Content = strings.Join(lines[sections[i].Name], "\n")
	}
	return sections
}

func capitalize(s string) string {
	s = strings.ToLower(s)
	return strings.ToUpper(s[:1]) + s[1:]
}

package extractor

import (
	"context"
	"regexp"
	"strings"

	"github.com/fadilmartias/cold-mail-generator/internal/model"
)

// A title stops at "at <company>", punctuation followed by a space, or the
// end of the line. "Node.js" stays whole.
const titleCapture = `([^\n\r|]+?)(?:\s+(?:at|@)\s|\s*[.,;:|](?:\s|$)|\s*$)`

var (
	titlePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?im)\b(?:job title|position|role)\b[:\s]+` + titleCapture),
		regexp.MustCompile(`(?im)\b(?:hiring|seeking|looking for)\b[:\s]+` + titleCapture),
		regexp.MustCompile(`(?im)\b(?:we are hiring|we are looking for)\b[:\s]+` + titleCapture),
	}

	companyPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?im)\b(?:company|organization)\b[:\s]+([^\n\r]+)`),
		regexp.MustCompile(`(?:\b[Aa][Tt]|@)\s+([A-Z][A-Za-z&]*(?:[ \t]+[A-Z][A-Za-z&]*)*(?:[ \t]+(?:Inc|LLC|Corp|Ltd|Company))?)`),
	}

	locationPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?im)\b(?:location|based in|office)\b[:\s]+([^\n\r]+)`),
		regexp.MustCompile(`(?im)\b(?:remote|hybrid|on-site|onsite)\b[:\s]*\b(?:in|at)\b[:\s]+([^\n\r]+)`),
	}
)

// HeuristicExtractor pattern-matches common posting phrasings. It never
// calls the model and always yields exactly one record.
type HeuristicExtractor struct{}

func NewHeuristicExtractor() *HeuristicExtractor {
	return &HeuristicExtractor{}
}

func (e *HeuristicExtractor) Name() string { return "heuristic" }

func (e *HeuristicExtractor) TryExtract(_ context.Context, text string) ([]model.JobRecord, bool) {
	return []model.JobRecord{e.Extract(text)}, true
}

func (e *HeuristicExtractor) Extract(text string) model.JobRecord {
	return model.NewJobRecord(
		firstMatch(text, titlePatterns),
		firstMatch(text, companyPatterns),
		firstMatch(text, locationPatterns),
		preview(text, previewLength, false),
	)
}

// firstMatch returns the first non-blank capture across patterns, in order.
func firstMatch(text string, patterns []*regexp.Regexp) string {
	for _, p := range patterns {
		m := p.FindStringSubmatch(text)
		if len(m) < 2 {
			continue
		}
		if v := strings.TrimSpace(m[1]); v != "" {
			return v
		}
	}
	return ""
}

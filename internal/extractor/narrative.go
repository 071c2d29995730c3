package extractor

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/fadilmartias/cold-mail-generator/internal/model"
	"github.com/fadilmartias/cold-mail-generator/internal/service"
)

const previewLength = 300

var (
	titleLine    = labelLine("TITLE")
	companyLine  = labelLine("COMPANY")
	locationLine = labelLine("LOCATION")
	// DESCRIPTION may run over several lines, up to the end of the answer.
	descriptionBlock = regexp.MustCompile(`(?ims)^` + labelPrefix + `DESCRIPTION[ \t*]*:[ \t*]*(.+)`)
)

const labelPrefix = `[ \t>*#\-0-9.)]*`

func labelLine(label string) *regexp.Regexp {
	return regexp.MustCompile(`(?im)^` + labelPrefix + label + `[ \t*]*:[ \t*]*(\S.*)$`)
}

// NarrativeExtractor asks four plain questions and reads back labelled lines.
type NarrativeExtractor struct {
	llm service.ChatModel
}

func NewNarrativeExtractor(llm service.ChatModel) *NarrativeExtractor {
	return &NarrativeExtractor{llm: llm}
}

func (e *NarrativeExtractor) Name() string { return "narrative" }

func (e *NarrativeExtractor) TryExtract(ctx context.Context, text string) ([]model.JobRecord, bool) {
	content, err := e.llm.Invoke(ctx, fmt.Sprintf(narrativePrompt, text))
	if err != nil {
		log.Printf("Narrative extraction failed: %v", err)
		return nil, false
	}

	title := labelValue(titleLine, content)
	company := labelValue(companyLine, content)
	if title == "" && company == "" {
		log.Println("Narrative extraction: neither TITLE nor COMPANY found")
		return nil, false
	}

	description := labelValue(descriptionBlock, content)
	if description == "" {
		description = preview(text, previewLength, true)
	}

	return []model.JobRecord{
		model.NewJobRecord(title, company, labelValue(locationLine, content), description),
	}, true
}

func labelValue(re *regexp.Regexp, content string) string {
	m := re.FindStringSubmatch(content)
	if len(m) < 2 {
		return ""
	}
	return strings.Trim(strings.TrimSpace(m[1]), "*[] \t")
}

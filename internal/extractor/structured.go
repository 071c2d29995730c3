package extractor

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/fadilmartias/cold-mail-generator/internal/model"
	"github.com/fadilmartias/cold-mail-generator/internal/service"
)

// StructuredExtractor asks the model for a JSON array of postings.
type StructuredExtractor struct {
	llm service.ChatModel
}

func NewStructuredExtractor(llm service.ChatModel) *StructuredExtractor {
	return &StructuredExtractor{llm: llm}
}

func (e *StructuredExtractor) Name() string { return "structured" }

func (e *StructuredExtractor) TryExtract(ctx context.Context, text string) ([]model.JobRecord, bool) {
	raw, err := e.llm.Invoke(ctx, fmt.Sprintf(structuredPrompt, text))
	if err != nil {
		log.Printf("Structured extraction call failed: %v", err)
		return nil, false
	}
	raw = strings.TrimSpace(raw)
	log.Printf("LLM raw output: %s", raw)

	records, strategy := parseWithStrategy(raw)
	if strategy == StrategyNone {
		log.Println("Structured extraction: no JSON could be recovered")
		return nil, false
	}
	if !hasRealTitle(records) {
		log.Printf("Structured extraction: %d record(s) via %s but no usable title", len(records), strategy)
		return nil, false
	}
	return records, true
}

// hasRealTitle accepts the whole batch as soon as one record carries a title.
func hasRealTitle(records []model.JobRecord) bool {
	for _, r := range records {
		if r.HasRealTitle() {
			return true
		}
	}
	return false
}

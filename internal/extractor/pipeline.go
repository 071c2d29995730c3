package extractor

import (
	"context"
	"log"

	"github.com/fadilmartias/cold-mail-generator/internal/model"
	"github.com/fadilmartias/cold-mail-generator/internal/service"
)

// Stage is one rung of the extraction ladder. A stage that returns false
// hands the same text to the next, more conservative stage.
type Stage interface {
	Name() string
	TryExtract(ctx context.Context, text string) ([]model.JobRecord, bool)
}

type Pipeline struct {
	stages []Stage
}

// NewPipeline builds the default ladder: structured JSON prompt, labelled
// narrative prompt, then regex heuristics.
func NewPipeline(llm service.ChatModel) *Pipeline {
	return NewPipelineWithStages(
		NewStructuredExtractor(llm),
		NewNarrativeExtractor(llm),
		NewHeuristicExtractor(),
	)
}

func NewPipelineWithStages(stages ...Stage) *Pipeline {
	return &Pipeline{stages: stages}
}

// Extract normalizes raw once and runs the stages in order until one
// succeeds. An empty result means every stage failed.
func (p *Pipeline) Extract(ctx context.Context, raw string) []model.JobRecord {
	text := Normalize(raw)

	for i, stage := range p.stages {
		records, ok := stage.TryExtract(ctx, text)
		if ok && len(records) > 0 {
			log.Printf("Extraction stage %q produced %d job(s)", stage.Name(), len(records))
			return records
		}
		if i+1 < len(p.stages) {
			log.Printf("Extraction stage %q failed, escalating to %q", stage.Name(), p.stages[i+1].Name())
		}
	}

	log.Println("All extraction stages failed")
	return []model.JobRecord{}
}

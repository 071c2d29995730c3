package extractor

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fadilmartias/cold-mail-generator/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingStage struct {
	name    string
	records []model.JobRecord
	ok      bool
	calls   *[]string
	input   string
}

func (s *recordingStage) Name() string { return s.name }

func (s *recordingStage) TryExtract(_ context.Context, text string) ([]model.JobRecord, bool) {
	*s.calls = append(*s.calls, s.name)
	s.input = text
	return s.records, s.ok
}

func TestPipelineRunsStagesInOrder(t *testing.T) {
	var calls []string
	job := model.NewJobRecord("Engineer", "Acme", "", "")

	first := &recordingStage{name: "first", calls: &calls}
	second := &recordingStage{name: "second", calls: &calls, ok: true}
	third := &recordingStage{name: "third", calls: &calls, ok: true, records: []model.JobRecord{job}}
	fourth := &recordingStage{name: "fourth", calls: &calls, ok: true, records: []model.JobRecord{job}}

	got := NewPipelineWithStages(first, second, third, fourth).
		Extract(context.Background(), "<p>Engineer   at Acme</p>")

	assert.Equal(t, []model.JobRecord{job}, got)
	// second reports success with no records, which still escalates
	assert.Equal(t, []string{"first", "second", "third"}, calls)
	assert.Equal(t, "Engineer at Acme", first.input)
	assert.Equal(t, "Engineer at Acme", third.input)
}

func TestPipelineWithoutSuccessfulStageReturnsEmpty(t *testing.T) {
	var calls []string
	got := NewPipelineWithStages(&recordingStage{name: "only", calls: &calls}).
		Extract(context.Background(), "text")

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestPipelineEscalation(t *testing.T) {
	page := "We are hiring: Backend Engineer at Acme Inc. Location: Remote. Responsibilities: build APIs."

	testCases := []struct {
		name      string
		replies   []reply
		wantCalls int
		want      model.JobRecord
	}{
		{
			name:      "structured stage succeeds",
			replies:   []reply{{text: `[{"title":"Backend Engineer","company":"Acme Inc","location":"Remote","description":"APIs"}]`}},
			wantCalls: 1,
			want:      model.JobRecord{Title: "Backend Engineer", Company: "Acme Inc", Location: "Remote", Description: "APIs"},
		},
		{
			name: "prose escalates to narrative",
			replies: []reply{
				{text: "The posting is for a backend role."},
				{text: "TITLE: Backend Engineer\nCOMPANY: Acme Inc\nLOCATION: Remote\nDESCRIPTION: Build APIs"},
			},
			wantCalls: 2,
			want:      model.JobRecord{Title: "Backend Engineer", Company: "Acme Inc", Location: "Remote", Description: "Build APIs"},
		},
		{
			name: "placeholder batch escalates to narrative",
			replies: []reply{
				{text: `[{"title":"Position Available","company":"X","location":"Y","description":"Z"}]`},
				{text: "COMPANY: Acme Inc"},
			},
			wantCalls: 2,
			want: model.JobRecord{
				Title:       model.PlaceholderTitle,
				Company:     "Acme Inc",
				Location:    model.PlaceholderLocation,
				Description: page + "...",
			},
		},
		{
			name: "both model stages fail, heuristics take over",
			replies: []reply{
				{err: errors.New("connection reset")},
				{text: "I am unable to determine that."},
			},
			wantCalls: 2,
			want: model.JobRecord{
				Title:       "Backend Engineer",
				Company:     "Acme Inc",
				Location:    "Remote. Responsibilities: build APIs.",
				Description: page,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			llm := newScriptedModel(tc.replies...)
			got := NewPipeline(llm).Extract(context.Background(), page)

			require.Len(t, got, 1)
			assert.Equal(t, tc.want, got[0])
			require.Len(t, llm.prompts, tc.wantCalls)
			assert.True(t, strings.Contains(llm.prompts[0], "EXTRACTED JSON:"))
			if tc.wantCalls > 1 {
				assert.True(t, strings.Contains(llm.prompts[1], "answer these specific questions"))
			}
		})
	}
}

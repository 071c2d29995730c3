package composer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fadilmartias/cold-mail-generator/internal/model"
	"github.com/stretchr/testify/assert"
)

type stubModel struct {
	answer string
	err    error
	prompt string
}

func (m *stubModel) Invoke(_ context.Context, prompt string) (string, error) {
	m.prompt = prompt
	return m.answer, m.err
}

func TestComposerCompose(t *testing.T) {
	job := model.NewJobRecord("Backend Engineer", "Acme Inc", "Remote", "Build APIs")
	profile := model.CandidateProfile{ResumeText: "Go developer, 5 years", AdditionalInfo: "Available in March"}

	testCases := []struct {
		name  string
		model *stubModel
		want  string
	}{
		{
			name:  "returns model text verbatim",
			model: &stubModel{answer: "Subject: Backend Engineer application\n\nHi Acme team,"},
			want:  "Subject: Backend Engineer application\n\nHi Acme team,",
		},
		{
			name:  "fault becomes the fixed error text",
			model: &stubModel{err: errors.New("503 service unavailable")},
			want:  ErrorEmail,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := NewComposer(tc.model).Compose(context.Background(), job, profile)
			assert.Equal(t, tc.want, got)
			assert.Contains(t, tc.model.prompt, "- Position: Backend Engineer")
			assert.Contains(t, tc.model.prompt, "- Company: Acme Inc")
		})
	}
}

func TestBuildPromptOrder(t *testing.T) {
	prompt := BuildPrompt(
		model.NewJobRecord("Engineer", "Acme", "Remote", "APIs"),
		model.CandidateProfile{ResumeText: "RESUME-TEXT", AdditionalInfo: "EXTRA-INFO"},
	)

	sections := []string{
		"- Position: Engineer",
		"- Location: Remote",
		"- Description: APIs",
		"RESUME-TEXT",
		"EXTRA-INFO",
		"1. Engaging subject line",
		"2. Brief introduction",
		"3. Relevant skills/experience highlights",
		"5. Professional closing",
	}
	last := -1
	for _, s := range sections {
		idx := strings.Index(prompt, s)
		assert.Greater(t, idx, last, s)
		last = idx
	}
}

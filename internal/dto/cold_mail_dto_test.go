package dto

import (
	"testing"

	"github.com/fadilmartias/cold-mail-generator/internal/model"
	"github.com/fadilmartias/cold-mail-generator/internal/resume"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeneratedMailDTOs(t *testing.T) {
	mails := []model.GeneratedMail{
		{Job: model.NewJobRecord("Backend Engineer", "Acme", "", ""), Email: "first"},
		{Job: model.NewJobRecord("SRE", "", "Berlin", "Infra"), Email: "second"},
	}

	got := NewGeneratedMailDTOs(mails)
	require.Len(t, got, 2)

	assert.Equal(t, "Backend Engineer", got[0].Title)
	assert.Equal(t, model.PlaceholderLocation, got[0].Location)
	assert.Equal(t, "first", got[0].Email)
	assert.Equal(t, model.PlaceholderCompany, got[1].Company)
	assert.Equal(t, "second", got[1].Email)
	assert.NotEqual(t, uuid.Nil, got[0].ID)
	assert.NotEqual(t, got[0].ID, got[1].ID)
}

func TestNewResumeSectionDTOs(t *testing.T) {
	got := NewResumeSectionDTOs([]resume.Section{{Name: "Skills", Content: "Go"}})
	assert.Equal(t, []ResumeSectionDTO{{Name: "Skills", Content: "Go"}}, got)
	assert.Empty(t, NewResumeSectionDTOs(nil))
}

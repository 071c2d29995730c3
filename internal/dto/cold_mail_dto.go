package dto

import (
	"github.com/fadilmartias/cold-mail-generator/internal/model"
	"github.com/fadilmartias/cold-mail-generator/internal/resume"
	"github.com/google/uuid"
)

type GeneratedMailDTO struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	Email       string    `json:"email"`
}

type ResumeSectionDTO struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// NewGeneratedMailDTOs keeps the order of mails.
func NewGeneratedMailDTOs(mails []model.GeneratedMail) []GeneratedMailDTO {
	out := make([]GeneratedMailDTO, 0, len(mails))
	for _, m := range mails {
		out = append(out, GeneratedMailDTO{
			ID:          uuid.New(),
			Title:       m.Job.Title,
			Company:     m.Job.Company,
			Location:    m.Job.Location,
			Description: m.Job.Description,
			Email:       m.Email,
		})
	}
	return out
}

func NewResumeSectionDTOs(sections []resume.Section) []ResumeSectionDTO {
	out := make([]ResumeSectionDTO, 0, len(sections))
	for _, s := range sections {
		out = append(out, ResumeSectionDTO{Name: s.Name, Content: s.Content})
	}
	return out
}

package composer

import (
	"context"
	"fmt"
	"log"

	"github.com/fadilmartias/cold-mail-generator/internal/model"
	"github.com/fadilmartias/cold-mail-generator/internal/service"
)

// ErrorEmail replaces the email body when the model call fails. Callers can
// only tell it apart from a real email by comparing against this value.
const ErrorEmail = "Error generating email. Please try again."

const emailPrompt = `
You are a professional job seeker writing a cold email. Create a compelling, personalized email that highlights relevant experience.

JOB DETAILS:
- Position: %s
- Company: %s
- Location: %s
- Description: %s

CANDIDATE PROFILE:
%s

ADDITIONAL INFORMATION:
%s

Write a professional cold email with:
1. Engaging subject line
2. Brief introduction
3. Relevant skills/experience highlights
4. Value proposition
5. Professional closing

Format the email properly with subject line and body.
`

type Composer struct {
	llm service.ChatModel
}

func NewComposer(llm service.ChatModel) *Composer {
	return &Composer{llm: llm}
}

// Compose drafts one cold email for job. It never returns an error; a
// failed call yields ErrorEmail.
func (c *Composer) Compose(ctx context.Context, job model.JobRecord, profile model.CandidateProfile) string {
	email, err := c.llm.Invoke(ctx, BuildPrompt(job, profile))
	if err != nil {
		log.Printf("Error generating email for %q: %v", job.Title, err)
		return ErrorEmail
	}
	return email
}

func BuildPrompt(job model.JobRecord, profile model.CandidateProfile) string {
	return fmt.Sprintf(emailPrompt,
		job.Title,
		job.Company,
		job.Location,
		job.Description,
		profile.ResumeText,
		profile.AdditionalInfo,
	)
}

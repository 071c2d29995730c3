package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/fadilmartias/cold-mail-generator/internal/composer"
	"github.com/fadilmartias/cold-mail-generator/internal/extractor"
	"github.com/fadilmartias/cold-mail-generator/internal/model"
	"github.com/fadilmartias/cold-mail-generator/internal/resume"
	"github.com/fadilmartias/cold-mail-generator/internal/service"
	"github.com/fadilmartias/cold-mail-generator/internal/util"
)

const (
	maxPageChars      = 2000
	maxResumeChars    = 1000
	maxAdditionalInfo = 500
)

var (
	ErrMissingURL      = errors.New("please enter a URL")
	ErrMissingResume   = errors.New("please upload a resume")
	ErrResumeNotFound  = errors.New("resume file not found, please upload a valid resume")
	ErrPageUnavailable = errors.New("could not process the provided URL")
	ErrNoJobs          = errors.New("no job information could be extracted from the provided URL")
)

// ResumeReader turns a stored résumé file into plain text.
type ResumeReader func(path string) (string, error)

type ColdMailRequest struct {
	URL            string
	ResumePath     string
	AdditionalInfo string
}

type jobExtractor interface {
	Extract(ctx context.Context, raw string) []model.JobRecord
}

type ColdMailUsecase struct {
	llm         service.ChatModel
	pageLoader  service.PageLoader
	readResume  ResumeReader
	newPipeline func() jobExtractor
}

func NewColdMailUsecase(llm service.ChatModel, pageLoader service.PageLoader, readResume ResumeReader) *ColdMailUsecase {
	if readResume == nil {
		readResume = util.ExtractPDFText
	}
	uc := &ColdMailUsecase{llm: llm, pageLoader: pageLoader, readResume: readResume}
	uc.newPipeline = func() jobExtractor { return extractor.NewPipeline(uc.llm) }
	return uc
}

// Generate runs one request start to finish and drafts one email per
// extracted posting.
func (uc *ColdMailUsecase) Generate(ctx context.Context, req ColdMailRequest) ([]model.GeneratedMail, error) {
	url := strings.TrimSpace(req.URL)
	if url == "" {
		return nil, ErrMissingURL
	}
	if strings.TrimSpace(req.ResumePath) == "" {
		return nil, ErrMissingResume
	}

	resumeText, err := uc.readResumeText(req.ResumePath)
	if err != nil {
		return nil, err
	}
	profile := model.CandidateProfile{
		ResumeText:     util.TrimText(resumeText, maxResumeChars),
		AdditionalInfo: util.TrimText(strings.TrimSpace(req.AdditionalInfo), maxAdditionalInfo),
	}

	page, err := uc.pageLoader.Load(ctx, url)
	if err != nil {
		log.Printf("Page load failed for %s: %v", url, err)
		return nil, fmt.Errorf("%w: %v", ErrPageUnavailable, err)
	}
	page = util.TrimText(service.CleanPageText(page), maxPageChars)

	// A fresh pipeline per request keeps requests independent.
	jobs := uc.newPipeline().Extract(ctx, page)
	if len(jobs) == 0 {
		return nil, ErrNoJobs
	}

	mailer := composer.NewComposer(uc.llm)
	mails := make([]model.GeneratedMail, 0, len(jobs))
	for _, job := range jobs {
		mails = append(mails, model.GeneratedMail{
			Job:   job,
			Email: mailer.Compose(ctx, job, profile),
		})
	}
	log.Printf("Generated %d cold email(s) for %s", len(mails), url)
	return mails, nil
}

// Sections reads a stored résumé and splits it into labelled sections.
func (uc *ColdMailUsecase) Sections(path string) ([]resume.Section, error) {
	if strings.TrimSpace(path) == "" {
		return nil, ErrMissingResume
	}
	text, err := uc.readResumeText(path)
	if err != nil {
		return nil, err
	}
	return resume.LabelSections(text), nil
}

func (uc *ColdMailUsecase) readResumeText(path string) (string, error) {
	text, err := uc.readResume(path)
	if err != nil {
		if errors.Is(err, util.ErrFileNotFound) {
			return "", fmt.Errorf("%w: %v", ErrResumeNotFound, err)
		}
		return "", err
	}
	return text, nil
}

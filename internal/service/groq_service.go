package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/fadilmartias/cold-mail-generator/internal/config"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// GroqService drives Groq's OpenAI-compatible API through langchaingo.
type GroqService struct {
	Client llms.Model
}

func NewGroqService() (*GroqService, error) {
	groqConfig := config.LoadGroqConfig()
	if groqConfig.APIKey == "" {
		return nil, fmt.Errorf("GROQ_API_KEY not set")
	}

	llm, err := openai.New(
		openai.WithToken(groqConfig.APIKey),
		openai.WithBaseURL(groqConfig.BaseURL),
		openai.WithModel(groqConfig.Model),
	)
	if err != nil {
		return nil, fmt.Errorf("create groq client: %w", err)
	}
	return &GroqService{Client: llm}, nil
}

func (s *GroqService) Invoke(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("prompt cannot be empty")
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, config.LoadLLMConfig().Timeout)
	defer cancel()

	resp, err := llms.GenerateFromSinglePrompt(timeoutCtx, s.Client, prompt, llms.WithTemperature(0))
	if err != nil {
		return "", fmt.Errorf("groq generate failed: %w", err)
	}
	return resp, nil
}

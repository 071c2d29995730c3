package service

import (
	"context"
	"fmt"

	"github.com/fadilmartias/cold-mail-generator/internal/config"
)

// ChatModel sends a single prompt and returns the model's text answer.
type ChatModel interface {
	Invoke(ctx context.Context, prompt string) (string, error)
}

// NewChatModel builds the ChatModel selected by LLM_PROVIDER.
func NewChatModel(ctx context.Context) (ChatModel, error) {
	llmConfig := config.LoadLLMConfig()
	switch llmConfig.Provider {
	case config.ProviderGemini:
		return NewGeminiService(ctx)
	case config.ProviderOpenRouter:
		return NewOpenRouterService()
	case config.ProviderGroq:
		return NewGroqService()
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", llmConfig.Provider)
	}
}

package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/fadilmartias/cold-mail-generator/internal/config"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

type OpenRouterService struct {
	APIKey string
	Model  string
	client *resty.Client
}

func NewOpenRouterService() (*OpenRouterService, error) {
	openRouterConfig := config.LoadOpenRouterConfig()
	if openRouterConfig.APIKey == "" {
		return nil, fmt.Errorf("OPENROUTER_API_KEY not set")
	}
	return NewOpenRouterClient(
		openRouterConfig.APIKey,
		openRouterConfig.BaseURL,
		openRouterConfig.Model,
		config.LoadLLMConfig().Timeout,
	), nil
}

// NewOpenRouterClient talks to any OpenAI-compatible chat completions endpoint.
func NewOpenRouterClient(apiKey, baseURL, model string, timeout time.Duration) *OpenRouterService {
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetRetryCount(2).
		SetRetryWaitTime(time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			if err != nil {
				return isTransientMessage(err.Error())
			}
			return r.StatusCode() == 429 || r.StatusCode() >= 500
		})
	return &OpenRouterService{
		APIKey: apiKey,
		Model:  model,
		client: client,
	}
}

func (s *OpenRouterService) Invoke(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("prompt cannot be empty")
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+s.APIKey).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{
			"model":       s.Model,
			"temperature": 0,
			"messages": []map[string]string{
				{"role": "user", "content": prompt},
			},
		}).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("openrouter request failed: %w", err)
	}
	if resp.IsError() {
		log.Printf("OpenRouter error response: %s", resp.String())
		return "", fmt.Errorf("openrouter http %d: %s", resp.StatusCode(),
			gjson.Get(resp.String(), "error.message").String())
	}

	body := resp.String()
	if !gjson.Valid(body) {
		return "", fmt.Errorf("openrouter returned malformed JSON")
	}
	content := gjson.Get(body, "choices.0.message.content")
	if !content.Exists() {
		return "", fmt.Errorf("no response from LLM")
	}
	return content.String(), nil
}

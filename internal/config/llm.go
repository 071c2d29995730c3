package config

import (
	"strings"
	"sync"
	"time"
)

const (
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
	ProviderGroq       = "groq"
)

type LLMConfig struct {
	Provider string
	Timeout  time.Duration
}

var (
	llmConfig *LLMConfig
	llmOnce   sync.Once
)

func LoadLLMConfig() *LLMConfig {
	llmOnce.Do(func() {
		llmConfig = &LLMConfig{
			Provider: strings.ToLower(getEnv("LLM_PROVIDER", ProviderGroq)),
			Timeout:  getEnvDuration("LLM_TIMEOUT", 90*time.Second),
		}
	})
	return llmConfig
}

package config

import (
	"os"
	"sync"
)

// GroqConfig points the OpenAI-compatible client at Groq.
type GroqConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

var (
	groqConfig *GroqConfig
	groqOnce   sync.Once
)

func LoadGroqConfig() *GroqConfig {
	groqOnce.Do(func() {
		groqConfig = &GroqConfig{
			APIKey:  os.Getenv("GROQ_API_KEY"),
			BaseURL: getEnv("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
			Model:   getEnv("LLM_MODEL", "llama-3.3-70b-versatile"),
		}
	})
	return groqConfig
}

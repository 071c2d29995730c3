package config

import (
	"os"
	"sync"
	"time"
)

type GeminiConfig struct {
	APIKey          string
	Model           string
	CircuitCooldown time.Duration
}

var (
	geminiConfig *GeminiConfig
	geminiOnce   sync.Once
)

func LoadGeminiConfig() *GeminiConfig {
	geminiOnce.Do(func() {
		geminiConfig = &GeminiConfig{
			APIKey:          os.Getenv("GEMINI_API_KEY"),
			Model:           getEnv("LLM_MODEL", "gemini-2.5-flash"),
			CircuitCooldown: getEnvDuration("GEMINI_CIRCUIT_COOLDOWN", 30*time.Second),
		}
	})
	return geminiConfig
}

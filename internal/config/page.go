package config

import (
	"sync"
	"time"
)

type PageConfig struct {
	UserAgent string
	Timeout   time.Duration
}

var (
	pageConfig *PageConfig
	pageOnce   sync.Once
)

func LoadPageConfig() *PageConfig {
	pageOnce.Do(func() {
		pageConfig = &PageConfig{
			UserAgent: getEnv("PAGE_USER_AGENT", "Mozilla/5.0 (compatible; ColdMailGenerator/1.0)"),
			Timeout:   getEnvDuration("PAGE_TIMEOUT", 30*time.Second),
		}
	})
	return pageConfig
}

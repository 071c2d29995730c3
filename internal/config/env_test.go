package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("COLD_MAIL_TEST_KEY", "")
	assert.Equal(t, "fallback", getEnv("COLD_MAIL_TEST_KEY", "fallback"))

	t.Setenv("COLD_MAIL_TEST_KEY", "set")
	assert.Equal(t, "set", getEnv("COLD_MAIL_TEST_KEY", "fallback"))
}

func TestGetEnvDuration(t *testing.T) {
	testCases := []struct {
		name  string
		value string
		want  time.Duration
	}{
		{name: "unset uses default", value: "", want: 90 * time.Second},
		{name: "valid duration", value: "45s", want: 45 * time.Second},
		{name: "minutes", value: "2m", want: 2 * time.Minute},
		{name: "invalid uses default", value: "soon", want: 90 * time.Second},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("COLD_MAIL_TEST_TIMEOUT", tc.value)
			assert.Equal(t, tc.want, getEnvDuration("COLD_MAIL_TEST_TIMEOUT", 90*time.Second))
		})
	}
}

func TestAppConfigIsProduction(t *testing.T) {
	assert.True(t, (&AppConfig{Env: "production"}).IsProduction())
	assert.False(t, (&AppConfig{Env: "development"}).IsProduction())
}

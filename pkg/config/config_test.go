package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("OPENROUTER_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "https://openrouter.ai/api/v1", cfg.LLM.BaseURL)
	assert.Equal(t, "google/gemini-2.0-flash-001", cfg.LLM.Model)
	assert.Equal(t, 24, cfg.Cache.GuideTTLHours)
	assert.Equal(t, 60, cfg.RateLimit.RequestsPerMinute)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Empty(t, cfg.LLM.APIKey)
}

func TestLoadFileAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	yaml := []byte("server:\n  port: 9090\nllm:\n  model: test-model\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), yaml, 0o644))

	t.Setenv("RIGHTSGUARD_LLM_APIKEY", "sk-env")
	t.Setenv("RIGHTSGUARD_LOGGING_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "test-model", cfg.LLM.Model)
	assert.Equal(t, "sk-env", cfg.LLM.APIKey)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadProviderKeyFallback(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("OPENROUTER_API_KEY", "sk-openrouter")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "sk-openrouter", cfg.LLM.APIKey)
}

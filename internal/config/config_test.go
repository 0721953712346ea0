package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigReadsJSONFile(t *testing.T) {
	path := writeTempConfig(t, `{
		"model_tier": "advanced",
		"ai_timeout_seconds": 90,
		"batch_concurrency": 4,
		"use_ai": true
	}`)

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "advanced", cfg.ModelTier)
	assert.Equal(t, 90, cfg.AITimeoutSecond)
	assert.Equal(t, 4, cfg.BatchConcurrency)
	assert.True(t, cfg.UseAI)
}

func TestLoadConfigEmptyPath(t *testing.T) {
	_, err := LoadConfig("")

	assert.Error(t, err)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfigInvalidJSON(t *testing.T) {
	path := writeTempConfig(t, `{"model_tier": `)

	_, err := LoadConfig(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestValidateAcceptsDefaults(t *testing.T) {
	assert.NoError(t, (&Config{}).Validate())
}

func TestValidateRejectsNegativeTimeout(t *testing.T) {
	cfg := &Config{AITimeoutSecond: -1}

	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsUnknownModelTier(t *testing.T) {
	cfg := &Config{ModelTier: "turbo"}

	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "model_tier")
}

func TestValidateRejectsMissingCVFile(t *testing.T) {
	cfg := &Config{CV: filepath.Join(t.TempDir(), "missing.txt")}

	assert.Error(t, cfg.Validate())
}

func TestMergeWithDefaultsFillsEmptyFields(t *testing.T) {
	cfg := &Config{ModelTier: "lite"}
	defaults := Config{
		ModelTier:        "standard",
		AITimeoutSecond:  60,
		BatchConcurrency: 8,
		DatabaseURL:      "postgres://localhost/screening",
	}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, "lite", merged.ModelTier)
	assert.Equal(t, 60, merged.AITimeoutSecond)
	assert.Equal(t, 8, merged.BatchConcurrency)
	assert.Equal(t, "postgres://localhost/screening", merged.DatabaseURL)
}

func TestAITimeoutDuration(t *testing.T) {
	cfg := &Config{AITimeoutSecond: 45}

	assert.Equal(t, 45*time.Second, cfg.AITimeout())
	assert.Zero(t, (&Config{}).AITimeout())
}

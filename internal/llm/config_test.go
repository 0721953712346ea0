package llm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetModelReturnsConfiguredTier(t *testing.T) {
	cfg := DefaultGeminiConfig()

	assert.Equal(t, "gemini-2.5-flash-lite", cfg.GetModel(TierLite))
	assert.Equal(t, "gemini-2.5-flash", cfg.GetModel(TierStandard))
	assert.Equal(t, "gemini-2.5-pro", cfg.GetModel(TierAdvanced))
}

func TestGetModelFallbackChain(t *testing.T) {
	cfg := &Config{
		Provider: ProviderGemini,
		Models:   map[ModelTier]string{TierLite: "lite-model"},
	}

	// Unknown tier falls through standard to lite
	assert.Equal(t, "lite-model", cfg.GetModel(TierAdvanced))

	empty := &Config{Provider: ProviderGemini}
	assert.Empty(t, empty.GetModel(TierStandard))
}

func TestWithModelDoesNotMutateOriginal(t *testing.T) {
	original := DefaultGeminiConfig()

	custom := original.WithModel(TierStandard, "gemini-custom")

	assert.Equal(t, "gemini-custom", custom.GetModel(TierStandard))
	assert.Equal(t, "gemini-2.5-flash", original.GetModel(TierStandard))
}

func TestIsRateLimited(t *testing.T) {
	assert.True(t, IsRateLimited(errors.New("googleapi: Error 429: RESOURCE_EXHAUSTED")))
	assert.True(t, IsRateLimited(errors.New("quota exceeded for model")))
	assert.True(t, IsRateLimited(errors.New("rate limit hit")))
	assert.False(t, IsRateLimited(errors.New("invalid request")))
	assert.False(t, IsRateLimited(nil))
}

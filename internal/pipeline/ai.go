package pipeline

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/LakshyaPrd/cv-screening-new/internal/llm"
	"github.com/LakshyaPrd/cv-screening-new/internal/schemas"
	"github.com/LakshyaPrd/cv-screening-new/internal/types"
)

// Retry policy for the AI collaborator. Rate-limit rejections back off with
// a growing delay; other errors retry immediately up to the attempt budget.
const (
	maxAIAttempts  = 3
	baseBackoff    = 2 * time.Second
	defaultTimeout = 60 * time.Second
)

// AIExtractor extracts a structured profile from CV text via the LLM client.
// Responses are schema-validated before use; truncated JSON is repaired when
// possible.
type AIExtractor struct {
	client  llm.Client
	tier    llm.ModelTier
	timeout time.Duration
	logger  *zap.Logger
}

// NewAIExtractor builds an AI extractor over an LLM client
func NewAIExtractor(client llm.Client, logger *zap.Logger) *AIExtractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AIExtractor{
		client:  client,
		tier:    llm.TierStandard,
		timeout: defaultTimeout,
		logger:  logger,
	}
}

// WithTier overrides the model tier used for extraction
func (e *AIExtractor) WithTier(tier llm.ModelTier) *AIExtractor {
	e.tier = tier
	return e
}

// WithTimeout overrides the per-attempt timeout
func (e *AIExtractor) WithTimeout(d time.Duration) *AIExtractor {
	if d > 0 {
		e.timeout = d
	}
	return e
}

// Name identifies the extraction strategy
func (e *AIExtractor) Name() string { return "ai" }

// Extract runs the extraction prompt with the bounded retry budget and
// returns the parsed profile. Exhausting the budget returns the last error.
func (e *AIExtractor) Extract(ctx context.Context, text string) (*types.ExtractedProfile, error) {
	prompt := llm.BuildExtractionPrompt(llm.CVProfileSchema(), text)

	var lastErr error
	for attempt := 1; attempt <= maxAIAttempts; attempt++ {
		profile, err := e.attempt(ctx, prompt, text)
		if err == nil {
			return profile, nil
		}
		lastErr = err
		e.logger.Warn("ai extraction attempt failed",
			zap.Int("attempt", attempt),
			zap.Error(err))

		if attempt == maxAIAttempts {
			break
		}
		if llm.IsRateLimited(err) {
			backoff := baseBackoff * time.Duration(attempt)
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}
	return nil, fmt.Errorf("ai extraction failed after %d attempts: %w", maxAIAttempts, lastErr)
}

func (e *AIExtractor) attempt(ctx context.Context, prompt, text string) (*types.ExtractedProfile, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	raw, err := e.client.GenerateJSON(attemptCtx, prompt, e.tier)
	if err != nil {
		return nil, err
	}

	payload, err := llm.ParsePayload(raw)
	if err != nil {
		return nil, err
	}

	if err := schemas.ValidateCVPayload(llm.CleanJSONBlock(raw)); err != nil {
		// Structural problems the payload parser tolerated are still worth
		// logging, but a parseable payload is usable.
		e.logger.Debug("extraction payload failed schema validation", zap.Error(err))
	}

	return payload.ToProfile(text), nil
}

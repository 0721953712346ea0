package matching

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/LakshyaPrd/cv-screening-new/internal/types"
)

// DefaultBatchConcurrency bounds how many candidates are scored in parallel
const DefaultBatchConcurrency = 8

// Candidate pairs a stored candidate ID with its extracted profile
type Candidate struct {
	ID      uuid.UUID
	Profile *types.ExtractedProfile
}

// BatchReport summarizes a batch run. Failed candidates are logged and
// skipped, they never abort the rest of the batch.
type BatchReport struct {
	Processed int
	Failed    int
	Results   []*types.MatchResult
}

// BatchMatcher scores many candidates against one job concurrently.
// Candidates are independent, so scoring is shared-nothing parallel.
type BatchMatcher struct {
	scorer      *Scorer
	logger      *zap.Logger
	concurrency int
}

// NewBatchMatcher builds a batch matcher with the default concurrency
func NewBatchMatcher(scorer *Scorer, logger *zap.Logger) *BatchMatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BatchMatcher{
		scorer:      scorer,
		logger:      logger,
		concurrency: DefaultBatchConcurrency,
	}
}

// WithConcurrency overrides the parallel scoring limit
func (b *BatchMatcher) WithConcurrency(n int) *BatchMatcher {
	if n > 0 {
		b.concurrency = n
	}
	return b
}

// MatchAll scores every candidate against the job. A score that panics is
// recorded as failed and logged, the rest of the batch continues. Result
// order follows candidate order, with failed slots dropped.
func (b *BatchMatcher) MatchAll(ctx context.Context, jobID uuid.UUID, job *types.JobRequirement, candidates []Candidate) (*BatchReport, error) {
	if err := job.Validate(); err != nil {
		return nil, fmt.Errorf("cannot run batch with invalid job requirement: %w", err)
	}

	results := make([]*types.MatchResult, len(candidates))
	var failed int
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(b.concurrency)

	for i, candidate := range candidates {
		i, candidate := i, candidate
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result, err := b.scoreOne(candidate, jobID, job)
			if err != nil {
				b.logger.Warn("candidate match failed",
					zap.String("candidate_id", candidate.ID.String()),
					zap.String("job_id", jobID.String()),
					zap.Error(err))
				mu.Lock()
				failed++
				mu.Unlock()
				return nil
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &BatchReport{Failed: failed}
	for _, result := range results {
		if result != nil {
			report.Results = append(report.Results, result)
			report.Processed++
		}
	}

	b.logger.Info("batch match complete",
		zap.String("job_id", jobID.String()),
		zap.Int("processed", report.Processed),
		zap.Int("failed", report.Failed))
	return report, nil
}

func (b *BatchMatcher) scoreOne(candidate Candidate, jobID uuid.UUID, job *types.JobRequirement) (result *types.MatchResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("scoring panicked: %v", r)
		}
	}()

	if candidate.Profile == nil {
		return nil, fmt.Errorf("candidate %s has no extracted profile", candidate.ID)
	}
	return b.scorer.ScoreForPair(candidate.ID, jobID, candidate.Profile, job), nil
}

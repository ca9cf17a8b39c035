package worker

import (
	"context"

	"github.com/ppiankov/civicscore/internal/model"
)

// EntityScorer computes one entity's score within a domain
type EntityScorer interface {
	CalculateEntityScore(ctx context.Context, domainID, entityID string) (*model.EntityScore, error)
}

// ScoreJob represents one entity's score computation
type ScoreJob struct {
	DomainID string
	Entity   model.Entity
	Scorer   EntityScorer
}

// Execute executes the score job
func (j *ScoreJob) Execute(ctx context.Context) Result {
	score, err := j.Scorer.CalculateEntityScore(ctx, j.DomainID, j.Entity.ID)
	return &ScoreResult{
		Entity: j.Entity,
		Score:  score,
		Error:  err,
	}
}

// ScoreResult represents the result of a score job.
// Score is nil both on error and when the entity has no data.
type ScoreResult struct {
	Entity model.Entity
	Score  *model.EntityScore
	Error  error
}

// GetError returns the error from the score result
func (r *ScoreResult) GetError() error {
	return r.Error
}

// BatchProcessor scores many entities concurrently
type BatchProcessor struct {
	scorer      EntityScorer
	concurrency int
}

// NewBatchProcessor creates a new batch processor
func NewBatchProcessor(scorer EntityScorer, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		scorer:      scorer,
		concurrency: concurrency,
	}
}

// ProcessEntities scores every entity and returns results in the order of
// the input slice. If ctx is cancelled before all entities complete, it
// returns ctx.Err() and no results.
func (b *BatchProcessor) ProcessEntities(ctx context.Context, domainID string, entities []model.Entity) ([]*ScoreResult, error) {
	if len(entities) == 0 {
		return []*ScoreResult{}, ctx.Err()
	}

	pool := NewPool(ctx, b.concurrency)
	pool.Start()

	for _, entity := range entities {
		if pool.Submit(&ScoreJob{DomainID: domainID, Entity: entity, Scorer: b.scorer}) < 0 {
			break
		}
	}

	results := pool.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	scoreResults := make([]*ScoreResult, len(entities))
	for i := range entities {
		if i >= len(results) || results[i] == nil {
			// Only reachable through cancellation, handled above
			return nil, context.Canceled
		}
		scoreResults[i] = results[i].(*ScoreResult)
	}

	return scoreResults, nil
}

package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/ppiankov/civicscore/internal/model"
	"github.com/ppiankov/civicscore/internal/normalize"
	"github.com/ppiankov/civicscore/internal/score"
	"github.com/ppiankov/civicscore/internal/worker"
)

// isEntityProblem reports whether err concerns one entity's own data
// rather than the store
func isEntityProblem(err error) bool {
	return normalize.IsNormalizationError(err) || errors.Is(err, ErrInvalidID)
}

// GenerateDomainSummary scores every entity of the realm within a domain.
//
// Entities are scored concurrently, bounded by the configured worker count,
// and reported in directory order. Entities without data, with a malformed
// record or with an unaddressable identifier appear with a nil score; the
// latter two also produce a Diagnostic. An unaddressable domain, a store
// failure for any entity or cancelling ctx fails the whole summary.
func (e *Engine) GenerateDomainSummary(ctx context.Context, domainID string) (*model.DomainSummary, error) {
	if _, err := e.store.GetQuestions(ctx, domainID); err != nil && !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("get questions for %s: %w", domainID, err)
	}

	entities, err := e.store.ListEntities(ctx)
	if err != nil {
		return nil, fmt.Errorf("list entities: %w", err)
	}

	results, err := worker.NewBatchProcessor(e, e.workers).ProcessEntities(ctx, domainID, entities)
	if err != nil {
		return nil, err
	}

	summary := &model.DomainSummary{
		DomainID:      domainID,
		TotalEntities: len(entities),
		Entities:      make([]model.EntitySummary, 0, len(results)),
	}

	var sum float64
	for _, res := range results {
		entry := model.EntitySummary{
			EntityID: res.Entity.ID,
			Name:     res.Entity.Name,
		}

		if res.Error != nil {
			if !isEntityProblem(res.Error) {
				return nil, fmt.Errorf("score entity %s: %w", res.Entity.ID, res.Error)
			}
			summary.Diagnostics = append(summary.Diagnostics, model.Diagnostic{
				EntityID: res.Entity.ID,
				Message:  res.Error.Error(),
			})
		}

		if res.Score != nil {
			overall := res.Score.OverallScore
			entry.Score = &overall
			if entry.Name == "" {
				entry.Name = res.Score.EntityName
			}

			summary.EntitiesWithData++
			sum += overall
			if summary.MinScore == nil || overall < *summary.MinScore {
				summary.MinScore = &overall
			}
			if summary.MaxScore == nil || overall > *summary.MaxScore {
				summary.MaxScore = &overall
			}
		}

		color := e.gradient.ColorOrNeutral(entry.Score, score.DefaultMax)
		entry.Color = color.Hex()
		entry.RGB = color.String()
		summary.Entities = append(summary.Entities, entry)
	}

	if summary.EntitiesWithData > 0 {
		avg := score.Round(sum/float64(summary.EntitiesWithData), 1)
		summary.AverageScore = &avg
	}
	summary.Color = e.gradient.ColorOrNeutral(summary.AverageScore, score.DefaultMax).Hex()

	e.logger.Info("domain summary generated",
		"domain", domainID,
		"entities", summary.TotalEntities,
		"with_data", summary.EntitiesWithData,
		"diagnostics", len(summary.Diagnostics),
	)

	return summary, nil
}

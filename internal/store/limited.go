package store

import (
	"context"
	"encoding/json"

	"github.com/ppiankov/civicscore/internal/engine"
	"github.com/ppiankov/civicscore/internal/model"
	"github.com/ppiankov/civicscore/internal/worker"
)

// directoryKey is the limiter bucket for entity directory reads
const directoryKey = "\x00entities"

// RateLimited throttles reads per domain before passing them on
type RateLimited struct {
	next    engine.Store
	limiter *worker.Limiter
}

// NewRateLimited wraps next with the given limiter
func NewRateLimited(next engine.Store, limiter *worker.Limiter) *RateLimited {
	return &RateLimited{next: next, limiter: limiter}
}

var _ engine.Store = (*RateLimited)(nil)

// GetQuestions waits for the domain's budget, then reads
func (s *RateLimited) GetQuestions(ctx context.Context, domainID string) ([]model.Question, error) {
	if err := s.limiter.Wait(ctx, domainID); err != nil {
		return nil, err
	}
	return s.next.GetQuestions(ctx, domainID)
}

// GetAnalysis waits for the domain's budget, then reads
func (s *RateLimited) GetAnalysis(ctx context.Context, domainID, entityID string) (json.RawMessage, error) {
	if err := s.limiter.Wait(ctx, domainID); err != nil {
		return nil, err
	}
	return s.next.GetAnalysis(ctx, domainID, entityID)
}

// LoadMetadata waits for the domain's budget, then reads
func (s *RateLimited) LoadMetadata(ctx context.Context, domainID, entityID string) (json.RawMessage, error) {
	if err := s.limiter.Wait(ctx, domainID); err != nil {
		return nil, err
	}
	return s.next.LoadMetadata(ctx, domainID, entityID)
}

// ListEntities waits for the directory budget, then reads
func (s *RateLimited) ListEntities(ctx context.Context) ([]model.Entity, error) {
	if err := s.limiter.Wait(ctx, directoryKey); err != nil {
		return nil, err
	}
	return s.next.ListEntities(ctx)
}

package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ppiankov/civicscore/internal/cache"
	"github.com/ppiankov/civicscore/internal/engine"
	"github.com/ppiankov/civicscore/internal/model"
)

// Cached serves repeated reads from a cache. Absent records and errors are
// never cached, so new pipeline output is picked up on the next read.
type Cached struct {
	next  engine.Store
	cache cache.Cache
	ttl   time.Duration
}

// NewCached wraps next with the given cache; ttl 0 uses the cache default
func NewCached(next engine.Store, c cache.Cache, ttl time.Duration) *Cached {
	return &Cached{next: next, cache: c, ttl: ttl}
}

var _ engine.Store = (*Cached)(nil)

// GetQuestions returns the cached question list or loads it
func (s *Cached) GetQuestions(ctx context.Context, domainID string) ([]model.Question, error) {
	key := cache.CacheKey("questions", domainID)
	if data, ok := s.cache.Get(key); ok {
		var questions []model.Question
		if err := json.Unmarshal(data, &questions); err == nil {
			return questions, nil
		}
		_ = s.cache.Delete(key)
	}

	questions, err := s.next.GetQuestions(ctx, domainID)
	if err != nil {
		return nil, err
	}
	s.store(key, questions)
	return questions, nil
}

// GetAnalysis returns the cached raw analysis or loads it
func (s *Cached) GetAnalysis(ctx context.Context, domainID, entityID string) (json.RawMessage, error) {
	return s.raw(cache.CacheKey("analysis", domainID, entityID), func() (json.RawMessage, error) {
		return s.next.GetAnalysis(ctx, domainID, entityID)
	})
}

// LoadMetadata returns the cached raw metadata or loads it
func (s *Cached) LoadMetadata(ctx context.Context, domainID, entityID string) (json.RawMessage, error) {
	return s.raw(cache.CacheKey("metadata", domainID, entityID), func() (json.RawMessage, error) {
		return s.next.LoadMetadata(ctx, domainID, entityID)
	})
}

// ListEntities returns the cached entity directory or loads it
func (s *Cached) ListEntities(ctx context.Context) ([]model.Entity, error) {
	key := cache.CacheKey("entities")
	if data, ok := s.cache.Get(key); ok {
		var entities []model.Entity
		if err := json.Unmarshal(data, &entities); err == nil {
			return entities, nil
		}
		_ = s.cache.Delete(key)
	}

	entities, err := s.next.ListEntities(ctx)
	if err != nil {
		return nil, err
	}
	s.store(key, entities)
	return entities, nil
}

func (s *Cached) raw(key string, load func() (json.RawMessage, error)) (json.RawMessage, error) {
	if data, ok := s.cache.Get(key); ok {
		return json.RawMessage(data), nil
	}

	data, err := load()
	if err != nil || data == nil {
		return data, err
	}
	_ = s.cache.Set(key, data, s.ttl)
	return data, nil
}

func (s *Cached) store(key string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	_ = s.cache.Set(key, data, s.ttl)
}

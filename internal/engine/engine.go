// Package engine computes entity and domain scores from the records held
// by a document store.
//
// Absence of data is reported as a nil result, malformed records as a
// *normalize.Error, and store failures as any other error.
package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/ppiankov/civicscore/internal/model"
	"github.com/ppiankov/civicscore/internal/normalize"
	"github.com/ppiankov/civicscore/internal/score"
	"github.com/ppiankov/civicscore/internal/source"
	"github.com/ppiankov/civicscore/internal/worker"
)

// DefaultWorkers is the number of concurrent entity lookups
const DefaultWorkers = 5

// Engine orchestrates normalization, scoring and source resolution
type Engine struct {
	store    Store
	realm    model.Realm
	scorer   *score.Scorer
	gradient score.Gradient
	workers  int
	logger   *slog.Logger
}

// Option configures an Engine
type Option func(*Engine)

// WithWorkers sets the concurrency used by GenerateDomainSummary
func WithWorkers(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.workers = n
		}
	}
}

// WithLogger sets the logger that receives normalization diagnostics
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithGradient sets the colors used in domain summaries
func WithGradient(g score.Gradient) Option {
	return func(e *Engine) {
		e.gradient = g
	}
}

// New creates an engine reading from store for the given realm
func New(store Store, realm model.Realm, opts ...Option) *Engine {
	e := &Engine{
		store:    store,
		realm:    realm,
		scorer:   score.NewScorer(),
		gradient: score.DefaultGradient(),
		workers:  DefaultWorkers,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Realm returns the realm the engine was configured with
func (e *Engine) Realm() model.Realm {
	return e.realm
}

// CalculateEntityScore scores one entity within a domain.
//
// It returns (nil, nil) when the domain has no questions or the entity has
// no analysis. A malformed analysis is logged and returned as a
// *normalize.Error with a nil score.
func (e *Engine) CalculateEntityScore(ctx context.Context, domainID, entityID string) (*model.EntityScore, error) {
	questions, err := e.store.GetQuestions(ctx, domainID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get questions for %s: %w", domainID, err)
	}
	if len(questions) == 0 {
		return nil, nil
	}

	raw, err := e.store.GetAnalysis(ctx, domainID, entityID)
	if err != nil {
		return nil, fmt.Errorf("get analysis for %s/%s: %w", domainID, entityID, err)
	}
	if isAbsent(raw) {
		return nil, nil
	}

	analysis, err := normalize.Analysis(raw)
	if err != nil {
		e.logger.Warn("analysis normalization failed",
			"domain", domainID,
			"entity", entityID,
			"error", err,
		)
		return nil, err
	}

	result := e.scorer.Calculate(questions, analysis)
	result.EntityID = entityID
	result.DomainID = domainID

	e.logger.Debug("entity scored",
		"domain", domainID,
		"entity", entityID,
		"overall", result.OverallScore,
		"questions", len(result.Breakdown),
	)

	return result, nil
}

// ResolveEntitySource returns the source document for an entity within a
// domain, using the realm's document type. It returns nil when no source
// of any kind is recorded.
func (e *Engine) ResolveEntitySource(ctx context.Context, domainID, entityID string) (*model.SourceRef, error) {
	raw, err := e.store.LoadMetadata(ctx, domainID, entityID)
	if err != nil {
		return nil, fmt.Errorf("load metadata for %s/%s: %w", domainID, entityID, err)
	}
	if isAbsent(raw) {
		return source.Resolve(nil, e.realm.DocumentType), nil
	}

	meta, err := normalize.Metadata(raw)
	if err != nil {
		e.logger.Warn("metadata normalization failed",
			"domain", domainID,
			"entity", entityID,
			"error", err,
		)
		return nil, err
	}

	return source.Resolve(meta, e.realm.DocumentType), nil
}

var _ worker.EntityScorer = (*Engine)(nil)

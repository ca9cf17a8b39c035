package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ppiankov/civicscore/internal/model"
)

// MockScorer implements EntityScorer
type MockScorer struct {
	ShouldError bool
	Delays      map[string]time.Duration
}

func (m *MockScorer) CalculateEntityScore(ctx context.Context, domainID, entityID string) (*model.EntityScore, error) {
	delay := 5 * time.Millisecond
	if d, ok := m.Delays[entityID]; ok {
		delay = d
	}
	select {
	case <-time.After(delay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	if m.ShouldError {
		return nil, errors.New("store error")
	}
	return &model.EntityScore{EntityID: entityID, DomainID: domainID, OverallScore: 5}, nil
}

func entities(ids ...string) []model.Entity {
	out := make([]model.Entity, len(ids))
	for i, id := range ids {
		out[i] = model.Entity{ID: id}
	}
	return out
}

func TestBatchProcessor_ProcessEntities(t *testing.T) {
	processor := NewBatchProcessor(&MockScorer{}, 2)

	results, err := processor.ProcessEntities(context.Background(), "trees", entities("a", "b", "c"))
	if err != nil {
		t.Fatalf("ProcessEntities failed: %v", err)
	}

	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}

	for _, res := range results {
		if res.Error != nil {
			t.Errorf("unexpected error for %s: %v", res.Entity.ID, res.Error)
		}
		if res.Score == nil || res.Score.DomainID != "trees" {
			t.Errorf("expected score for %s", res.Entity.ID)
		}
	}
}

func TestBatchProcessor_PreservesOrder(t *testing.T) {
	scorer := &MockScorer{Delays: map[string]time.Duration{
		"B": 40 * time.Millisecond,
		"A": 1 * time.Millisecond,
		"C": 20 * time.Millisecond,
	}}
	processor := NewBatchProcessor(scorer, 3)

	results, err := processor.ProcessEntities(context.Background(), "trees", entities("B", "A", "C"))
	if err != nil {
		t.Fatalf("ProcessEntities failed: %v", err)
	}

	expected := []string{"B", "A", "C"}
	for i, res := range results {
		if res.Entity.ID != expected[i] {
			t.Errorf("expected %s at index %d, got %s", expected[i], i, res.Entity.ID)
		}
	}
}

func TestBatchProcessor_ProcessEntities_Error(t *testing.T) {
	processor := NewBatchProcessor(&MockScorer{ShouldError: true}, 2)

	results, err := processor.ProcessEntities(context.Background(), "trees", entities("a"))
	if err != nil {
		t.Fatalf("ProcessEntities failed: %v", err)
	}

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].GetError() == nil {
		t.Error("expected error, got nil")
	}
	if results[0].Score != nil {
		t.Error("expected nil score on error")
	}
}

func TestBatchProcessor_ProcessEntities_Empty(t *testing.T) {
	processor := NewBatchProcessor(&MockScorer{}, 2)

	results, err := processor.ProcessEntities(context.Background(), "trees", nil)
	if err != nil {
		t.Fatalf("ProcessEntities failed: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected 0 results, got %d", len(results))
	}
}

func TestBatchProcessor_Cancelled(t *testing.T) {
	scorer := &MockScorer{Delays: map[string]time.Duration{"a": time.Second, "b": time.Second}}
	processor := NewBatchProcessor(scorer, 1)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	results, err := processor.ProcessEntities(ctx, "trees", entities("a", "b"))
	if err == nil {
		t.Fatal("expected error for cancelled batch")
	}
	if results != nil {
		t.Errorf("expected no results for cancelled batch, got %d", len(results))
	}
}

func TestScoreResult_GetError(t *testing.T) {
	r1 := &ScoreResult{Entity: model.Entity{ID: "a"}}
	if r1.GetError() != nil {
		t.Errorf("expected nil error, got %v", r1.GetError())
	}

	expected := errors.New("score failed")
	r2 := &ScoreResult{Entity: model.Entity{ID: "a"}, Error: expected}
	if r2.GetError() != expected {
		t.Errorf("expected %v, got %v", expected, r2.GetError())
	}
}

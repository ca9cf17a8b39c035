package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ppiankov/civicscore/internal/engine"
	"github.com/ppiankov/civicscore/internal/normalize"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func testDataDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	writeFile(t, filepath.Join(dir, "entities.json"), `[
		{"id": "springfield", "name": "Springfield"},
		"shelbyville"
	]`)
	writeFile(t, filepath.Join(dir, "trees", "questions.json"), `{"questions": [
		{"id": 2, "question": "Replanting?", "order": 2},
		{"id": 1, "question": "Permit required?", "order": 1, "weight": 2}
	]}`)
	writeFile(t, filepath.Join(dir, "water", "questions.yaml"), `
- id: 1
  question: Runoff limits?
  category: stormwater
  weight: 3
- id: 2
  question: Buffer zones?
`)
	writeFile(t, filepath.Join(dir, "trees", "analysis", "springfield.json"), `{"answers": [{"questionId": 1, "score": 1}]}`)
	writeFile(t, filepath.Join(dir, "trees", "metadata", "springfield.json"), `{"sourceUrl": "https://example.org/code"}`)
	return dir
}

func TestFS_GetQuestions(t *testing.T) {
	s := NewFS(testDataDir(t))
	ctx := context.Background()

	qs, err := s.GetQuestions(ctx, "trees")
	require.NoError(t, err)
	require.Len(t, qs, 2)
	assert.Equal(t, "1", qs[0].ID, "sorted by order")
	assert.Equal(t, 2.0, qs[0].EffectiveWeight())

	qs, err = s.GetQuestions(ctx, "water")
	require.NoError(t, err)
	require.Len(t, qs, 2)
	assert.Equal(t, "stormwater", qs[0].Category)
	assert.Equal(t, 3.0, qs[0].EffectiveWeight())
	assert.Equal(t, "Buffer zones?", qs[1].Text)
}

func TestFS_GetQuestions_NotFound(t *testing.T) {
	s := NewFS(testDataDir(t))

	_, err := s.GetQuestions(context.Background(), "housing")
	assert.ErrorIs(t, err, engine.ErrNotFound)
}

func TestFS_GetQuestions_Malformed(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "trees", "questions.json"), `[{"question": "no id"}]`)

	_, err := NewFS(dir).GetQuestions(context.Background(), "trees")
	assert.ErrorIs(t, err, normalize.ErrMissingIdentifier)

	writeFile(t, filepath.Join(dir, "roads", "questions.json"), `[{`)
	_, err = NewFS(dir).GetQuestions(context.Background(), "roads")
	require.Error(t, err)
	assert.NotErrorIs(t, err, engine.ErrNotFound)
}

func TestFS_Records(t *testing.T) {
	s := NewFS(testDataDir(t))
	ctx := context.Background()

	raw, err := s.GetAnalysis(ctx, "trees", "springfield")
	require.NoError(t, err)
	assert.JSONEq(t, `{"answers": [{"questionId": 1, "score": 1}]}`, string(raw))

	raw, err = s.GetAnalysis(ctx, "trees", "shelbyville")
	require.NoError(t, err)
	assert.Nil(t, raw, "missing analysis is absence, not an error")

	raw, err = s.LoadMetadata(ctx, "trees", "springfield")
	require.NoError(t, err)
	assert.True(t, json.Valid(raw))

	raw, err = s.LoadMetadata(ctx, "water", "springfield")
	require.NoError(t, err)
	assert.Nil(t, raw)
}

func TestFS_InvalidIDs(t *testing.T) {
	s := NewFS(testDataDir(t))
	ctx := context.Background()

	for _, id := range []string{"", "../trees", "a/b", `a\b`, ".hidden"} {
		t.Run(id, func(t *testing.T) {
			_, err := s.GetAnalysis(ctx, "trees", id)
			assert.ErrorIs(t, err, ErrInvalidID)

			_, err = s.GetQuestions(ctx, id)
			assert.ErrorIs(t, err, ErrInvalidID)
		})
	}
}

func TestFS_ListEntities(t *testing.T) {
	entities, err := NewFS(testDataDir(t)).ListEntities(context.Background())
	require.NoError(t, err)
	require.Len(t, entities, 2)
	assert.Equal(t, "springfield", entities[0].ID)
	assert.Equal(t, "Springfield", entities[0].Name)
	assert.Equal(t, "shelbyville", entities[1].ID)
}

func TestFS_ListEntities_YAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "entities.yaml"), "entities:\n  - id: a\n    name: Alpha\n  - b\n")

	entities, err := NewFS(dir).ListEntities(context.Background())
	require.NoError(t, err)
	require.Len(t, entities, 2)
	assert.Equal(t, "Alpha", entities[0].Name)
	assert.Equal(t, "b", entities[1].ID)
}

func TestFS_ListEntities_Missing(t *testing.T) {
	_, err := NewFS(t.TempDir()).ListEntities(context.Background())
	assert.ErrorIs(t, err, engine.ErrNotFound)
}

func TestFS_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewFS(testDataDir(t))
	_, err := s.GetAnalysis(ctx, "trees", "springfield")
	assert.ErrorIs(t, err, context.Canceled)
	_, err = s.ListEntities(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFromConfig_EndToEnd(t *testing.T) {
	dir := testDataDir(t)

	cfgs := map[string]struct {
		cache bool
		rps   float64
	}{
		"plain":          {},
		"cached":         {cache: true},
		"limited":        {rps: 1000},
		"cached limited": {cache: true, rps: 1000},
	}

	for name, c := range cfgs {
		t.Run(name, func(t *testing.T) {
			s := FromConfig(storeConfig(dir, c.cache, c.rps))
			e := engine.New(s, testRealm())

			result, err := e.CalculateEntityScore(context.Background(), "trees", "springfield")
			require.NoError(t, err)
			require.NotNil(t, result)
			// Question 1 (weight 2) scored 1, question 2 unanswered
			assert.Equal(t, 6.7, result.OverallScore)

			result, err = e.CalculateEntityScore(context.Background(), "trees", "shelbyville")
			require.NoError(t, err)
			assert.Nil(t, result)
		})
	}
}

func TestFS_SummarySkipsUnaddressableEntity(t *testing.T) {
	dir := testDataDir(t)
	writeFile(t, filepath.Join(dir, "entities.json"), `["springfield", "../evil", "a/b", "shelbyville"]`)

	summary, err := engine.New(NewFS(dir), testRealm()).GenerateDomainSummary(context.Background(), "trees")
	require.NoError(t, err)

	require.Len(t, summary.Entities, 4)
	assert.Equal(t, 1, summary.EntitiesWithData)
	require.NotNil(t, summary.Entities[0].Score)
	assert.Nil(t, summary.Entities[1].Score)
	assert.Nil(t, summary.Entities[2].Score)

	require.Len(t, summary.Diagnostics, 2)
	assert.Equal(t, "../evil", summary.Diagnostics[0].EntityID)
	assert.Equal(t, "a/b", summary.Diagnostics[1].EntityID)
}

func TestFS_SummaryRejectsUnaddressableDomain(t *testing.T) {
	_, err := engine.New(NewFS(testDataDir(t)), testRealm()).GenerateDomainSummary(context.Background(), "../trees")
	assert.ErrorIs(t, err, ErrInvalidID)
}

package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ppiankov/civicscore/internal/model"
)

func weight(w float64) *float64 { return &w }

func analysisWith(answers ...model.AnalyzedQuestion) *model.Analysis {
	return &model.Analysis{
		Entity:    model.Ref{ID: "x", DisplayName: "Entity X"},
		Domain:    model.Ref{ID: "trees"},
		Questions: answers,
	}
}

func TestScorer_Calculate_Scenario(t *testing.T) {
	questions := []model.Question{
		{ID: "1", Text: "q1", Weight: weight(1)},
		{ID: "2", Text: "q2", Weight: weight(1)},
		{ID: "3", Text: "q3", Weight: weight(2)},
	}
	analysis := analysisWith(
		model.AnalyzedQuestion{QuestionID: "1", Score: 1.0, Confidence: 0.9},
		model.AnalyzedQuestion{QuestionID: "2", Score: 0.0, Confidence: 0.5},
		model.AnalyzedQuestion{QuestionID: "3", Score: 0.5, Confidence: 0.7},
	)

	result := NewScorer().Calculate(questions, analysis)

	assert.Equal(t, 5.0, result.OverallScore)
	assert.Equal(t, 4.0, result.TotalPossibleWeight)
	assert.Equal(t, 2.0, result.TotalWeightedScore)
	assert.Equal(t, 0.7, result.AverageConfidence)
	assert.Len(t, result.Breakdown, 3)
}

func TestScorer_Calculate_ZeroWeight(t *testing.T) {
	questions := []model.Question{
		{ID: "1", Weight: weight(2)},
		{ID: "2", Weight: weight(1)},
		{ID: "3", Weight: weight(0)},
	}
	analysis := analysisWith(
		model.AnalyzedQuestion{QuestionID: "1", Score: 1.0},
		model.AnalyzedQuestion{QuestionID: "2", Score: 0.5},
		model.AnalyzedQuestion{QuestionID: "3", Score: 1.0},
	)

	result := NewScorer().Calculate(questions, analysis)

	assert.Equal(t, 3.0, result.TotalPossibleWeight)
	assert.Equal(t, 8.3, result.OverallScore)

	require.Len(t, result.Breakdown, 3)
	zero := result.Breakdown[2]
	assert.Equal(t, 0.0, zero.Weight)
	assert.Equal(t, 0.0, zero.WeightedScore)
	assert.Equal(t, 1.0, zero.Score)
	assert.True(t, zero.Analyzed)
}

func TestScorer_Calculate_MissingAnswers(t *testing.T) {
	questions := []model.Question{
		{ID: "1", Text: "answered"},
		{ID: "2", Text: "unanswered", Weight: weight(3)},
	}
	analysis := analysisWith(
		model.AnalyzedQuestion{QuestionID: "1", Score: 1.0, Confidence: 1, Answer: "Yes"},
		model.AnalyzedQuestion{QuestionID: "99", Score: 1.0},
	)

	result := NewScorer().Calculate(questions, analysis)

	require.Len(t, result.Breakdown, 2)
	missing := result.Breakdown[1]
	assert.False(t, missing.Analyzed)
	assert.Equal(t, model.NotAnalyzedAnswer, missing.Answer)
	assert.Equal(t, 0.0, missing.Score)
	assert.Equal(t, 0.0, missing.Confidence)
	assert.Equal(t, 3.0, missing.Weight)

	assert.Equal(t, 4.0, result.TotalPossibleWeight)
	assert.Equal(t, 2.5, result.OverallScore)
	assert.Equal(t, 1.0, result.AverageConfidence)
}

func TestScorer_Calculate_DefaultWeight(t *testing.T) {
	questions := []model.Question{
		{ID: "1"},
		{ID: "2", Weight: weight(-4)},
	}
	analysis := analysisWith(
		model.AnalyzedQuestion{QuestionID: "1", Score: 1.0},
		model.AnalyzedQuestion{QuestionID: "2", Score: 0.0},
	)

	result := NewScorer().Calculate(questions, analysis)

	assert.Equal(t, 2.0, result.TotalPossibleWeight)
	assert.Equal(t, 5.0, result.OverallScore)
}

func TestScorer_Calculate_NoScoreableQuestions(t *testing.T) {
	questions := []model.Question{{ID: "1", Weight: weight(0)}}
	result := NewScorer().Calculate(questions, analysisWith())

	assert.Equal(t, 0.0, result.OverallScore)
	assert.Equal(t, 0.0, result.TotalPossibleWeight)
	assert.Len(t, result.Breakdown, 1)
}

func TestScorer_Calculate_Categories(t *testing.T) {
	questions := []model.Question{
		{ID: "1", Category: "permits"},
		{ID: "2", Category: "penalties"},
		{ID: "3", Category: "permits", Weight: weight(3)},
		{ID: "4"},
	}
	analysis := analysisWith(
		model.AnalyzedQuestion{QuestionID: "1", Score: 1.0},
		model.AnalyzedQuestion{QuestionID: "2", Score: 0.2},
		model.AnalyzedQuestion{QuestionID: "3", Score: 0.0},
	)

	result := NewScorer().Calculate(questions, analysis)

	require.Len(t, result.Categories, 2)
	assert.Equal(t, "permits", result.Categories[0].Category)
	assert.Equal(t, 2, result.Categories[0].Questions)
	assert.Equal(t, 2.5, result.Categories[0].Score)
	assert.Equal(t, "penalties", result.Categories[1].Category)
	assert.Equal(t, 2.0, result.Categories[1].Score)
}

func TestScorer_Calculate_CarriesAnswerDetail(t *testing.T) {
	stored := 7.5
	questions := []model.Question{{ID: "1"}}
	analysis := analysisWith(model.AnalyzedQuestion{
		QuestionID: "1",
		Question:   "from analysis",
		Score:      0.4,
		Gap:        "No replanting ratio",
		Sources:    []model.SourceRef{{Section: "Sec. 1"}},
	})
	analysis.OverallScore = &stored

	result := NewScorer().Calculate(questions, analysis)

	row := result.Breakdown[0]
	assert.Equal(t, "from analysis", row.Question)
	assert.Equal(t, "No replanting ratio", row.Gap)
	assert.Equal(t, []model.SourceRef{{Section: "Sec. 1"}}, row.Sources)
	require.NotNil(t, result.StoredOverallScore)
	assert.Equal(t, 7.5, *result.StoredOverallScore)
	assert.Equal(t, 4.0, result.OverallScore)
	assert.Equal(t, "Entity X", result.EntityName)
}

package score

import (
	"github.com/ppiankov/civicscore/internal/model"
)

// Scorer joins a domain's questions with an entity's analysis and
// produces the weighted breakdown
type Scorer struct{}

// NewScorer creates a new scorer
func NewScorer() *Scorer {
	return &Scorer{}
}

// Calculate builds the full breakdown for one entity.
// Every question appears in the breakdown, answered or not; answers to
// questions that are not in the list are ignored.
func (s *Scorer) Calculate(questions []model.Question, analysis *model.Analysis) *model.EntityScore {
	result := &model.EntityScore{
		EntityID:           analysis.Entity.ID,
		EntityName:         analysis.Entity.DisplayName,
		DomainID:           analysis.Domain.ID,
		Breakdown:          make([]model.QuestionScore, 0, len(questions)),
		StoredOverallScore: analysis.OverallScore,
		AnalyzedAt:         analysis.Timestamp,
	}

	contributions := make([]Contribution, 0, len(questions))
	var confidenceSum float64
	answered := 0

	for _, q := range questions {
		row := s.scoreQuestion(q, analysis)
		result.Breakdown = append(result.Breakdown, row)

		contributions = append(contributions, Contribution{WeightedScore: row.WeightedScore, Weight: row.Weight})
		result.TotalWeightedScore += row.WeightedScore
		result.TotalPossibleWeight += row.Weight

		if row.Analyzed {
			answered++
			confidenceSum += row.Confidence
		}
	}

	result.OverallScore = AggregateOverallScore(contributions)
	if answered > 0 {
		result.AverageConfidence = Round(confidenceSum/float64(answered), 3)
	}
	result.Categories = s.rollUpCategories(result.Breakdown)

	return result
}

// scoreQuestion scores a single question against the analysis
func (s *Scorer) scoreQuestion(q model.Question, analysis *model.Analysis) model.QuestionScore {
	weight := q.EffectiveWeight()
	row := model.QuestionScore{
		QuestionID: q.ID,
		Question:   q.Text,
		Category:   q.Category,
		Weight:     weight,
		Answer:     model.NotAnalyzedAnswer,
	}

	answer, ok := analysis.Answer(q.ID)
	if !ok {
		return row
	}

	row.Analyzed = true
	row.Score = NormalizeScore(answer.Score)
	row.Confidence = answer.Confidence
	row.WeightedScore = WeightedContribution(row.Score, weight)
	row.Answer = answer.Answer
	row.Gap = answer.Gap
	row.Sources = answer.Sources
	if row.Question == "" {
		row.Question = answer.Question
	}
	return row
}

// rollUpCategories aggregates the breakdown per category in first-seen order
func (s *Scorer) rollUpCategories(rows []model.QuestionScore) []model.CategoryScore {
	index := make(map[string]int)
	var categories []model.CategoryScore

	for _, row := range rows {
		if row.Category == "" {
			continue
		}
		i, ok := index[row.Category]
		if !ok {
			i = len(categories)
			index[row.Category] = i
			categories = append(categories, model.CategoryScore{Category: row.Category})
		}
		categories[i].Questions++
		categories[i].WeightedScore += row.WeightedScore
		categories[i].Weight += row.Weight
	}

	for i := range categories {
		categories[i].Score = ScaledRatio(categories[i].WeightedScore, categories[i].Weight)
	}
	return categories
}

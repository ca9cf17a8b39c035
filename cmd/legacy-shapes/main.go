// Demo program showing every historical analysis shape normalizing to the
// same canonical record and score
package main

import (
	"fmt"
	"strings"

	"github.com/ppiankov/civicscore/internal/model"
	"github.com/ppiankov/civicscore/internal/normalize"
	"github.com/ppiankov/civicscore/internal/score"
)

var shapes = []struct {
	name string
	raw  string
}{
	{"v1 (flat ids, answers, 0-100 confidence)", `{
		"entityId": "springfield", "domainId": "trees",
		"answers": [
			{"questionId": 1, "text": "Is a permit required to remove protected trees?", "answer": "Yes", "confidence": 90, "score": 1.0, "sources": ["Sec. 14-23"]},
			{"questionId": 2, "text": "Are replacement plantings mandated?", "answer": "No", "confidence": 60, "score": 0.0, "gapAnalysis": "No replanting ratio."},
			{"questionId": 3, "text": "Are penalties defined?", "answer": "Partly", "confidence": 75, "score": 0.5}
		]
	}`},
	{"v2 (nested refs, questions, 0-1 confidence)", `{
		"entity": {"id": "springfield", "displayName": "Springfield"},
		"domain": {"id": "trees", "displayName": "Tree Preservation"},
		"questions": [
			{"id": "1", "question": "Is a permit required to remove protected trees?", "answer": "Yes", "confidence": 0.9, "score": 1.0, "sources": [{"section": "Sec. 14-23", "type": "ordinance"}]},
			{"id": "2", "question": "Are replacement plantings mandated?", "answer": "No", "confidence": 0.6, "score": 0.0, "gap": "No replanting ratio."},
			{"id": "3", "question": "Are penalties defined?", "answer": "Partly", "confidence": 0.75, "score": 0.5}
		],
		"overallScore": 5.0
	}`},
}

func main() {
	fmt.Println("=== Legacy Shape Normalization ===")
	fmt.Println()

	weight := func(w float64) *float64 { return &w }
	questions := []model.Question{
		{ID: "1", Text: "Is a permit required to remove protected trees?", Weight: weight(1)},
		{ID: "2", Text: "Are replacement plantings mandated?", Weight: weight(1)},
		{ID: "3", Text: "Are penalties defined?", Weight: weight(2)},
	}
	scorer := score.NewScorer()

	for _, shape := range shapes {
		fmt.Printf("Shape: %s\n", shape.name)
		fmt.Println(strings.Repeat("-", 60))

		analysis, err := normalize.Analysis(shape.raw)
		if err != nil {
			fmt.Printf("  Normalization error: %v\n\n", err)
			continue
		}

		result := scorer.Calculate(questions, analysis)
		for _, row := range result.Breakdown {
			fmt.Printf("  Q%s  score=%.2f  weight=%g  confidence=%.2f\n", row.QuestionID, row.Score, row.Weight, row.Confidence)
		}
		c := score.ScoreToColor(result.OverallScore, score.DefaultMax)
		fmt.Printf("  Overall: %.1f/10  %s  %s\n\n", result.OverallScore, c.Hex(), c.String())
	}
}

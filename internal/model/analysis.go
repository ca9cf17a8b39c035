package model

import "time"

// Analysis is the canonical record of all answered questions for one
// (entity, domain) pair. Every historical record shape normalizes to this.
type Analysis struct {
	Entity       Ref                    `json:"entity"`
	Domain       Ref                    `json:"domain"`
	Questions    []AnalyzedQuestion     `json:"questions"`
	OverallScore *float64               `json:"overallScore,omitempty"` // Pre-computed by the pipeline, informational only
	Metadata     map[string]interface{} `json:"metadata,omitempty"`
	Timestamp    *time.Time             `json:"timestamp,omitempty"`
}

// Ref identifies an entity or domain with an optional display name
type Ref struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName,omitempty"`
}

// Entity is an entry of the entity directory
type Entity struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// Answer looks up the analyzed question with the given identifier.
// The first match wins when a record carries duplicates.
func (a *Analysis) Answer(questionID string) (AnalyzedQuestion, bool) {
	for _, q := range a.Questions {
		if q.QuestionID == questionID {
			return q, true
		}
	}
	return AnalyzedQuestion{}, false
}

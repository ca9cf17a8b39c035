package model

// Question is a standardized prompt within a domain
type Question struct {
	ID       string   `json:"id"`                 // Canonical string form, numeric IDs are coerced
	Text     string   `json:"question"`           // Human-readable prompt text
	Category string   `json:"category,omitempty"` // Optional grouping (e.g., "enforcement")
	Weight   *float64 `json:"weight,omitempty"`   // nil means "not given"
	Order    *int     `json:"order,omitempty"`    // Optional display order
}

// EffectiveWeight returns the weight used for scoring.
// Absent or negative weights count as 1; an explicit 0 stays 0.
func (q Question) EffectiveWeight() float64 {
	if q.Weight == nil || *q.Weight < 0 {
		return 1
	}
	return *q.Weight
}

// AnalyzedQuestion is one answer to one Question for one entity
type AnalyzedQuestion struct {
	QuestionID string      `json:"id"`
	Question   string      `json:"question,omitempty"`
	Answer     string      `json:"answer"`
	Confidence float64     `json:"confidence"` // Always 0-1 after normalization
	Score      float64     `json:"score"`      // 0-1
	Sources    []SourceRef `json:"sources,omitempty"`
	Gap        string      `json:"gap,omitempty"` // What is missing to reach a perfect score
}

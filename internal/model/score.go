package model

import "time"

// NotAnalyzedAnswer is the answer text reported for questions without an answer
const NotAnalyzedAnswer = "Not analyzed"

// EntityScore is the weighted score of one entity within one domain
type EntityScore struct {
	EntityID            string          `json:"entityId"`
	DomainID            string          `json:"domainId"`
	EntityName          string          `json:"entityName,omitempty"`
	Breakdown           []QuestionScore `json:"breakdown"`           // One entry per domain question, in question order
	Categories          []CategoryScore `json:"categories,omitempty"`
	TotalWeightedScore  float64         `json:"totalWeightedScore"`
	TotalPossibleWeight float64         `json:"totalPossibleWeight"`
	OverallScore        float64         `json:"overallScore"`        // 0-10, one decimal
	AverageConfidence   float64         `json:"averageConfidence"`   // Over analyzed questions only
	StoredOverallScore  *float64        `json:"storedOverallScore,omitempty"`
	AnalyzedAt          *time.Time      `json:"analyzedAt,omitempty"`
}

// QuestionScore is one row of an entity's score breakdown
type QuestionScore struct {
	QuestionID    string      `json:"questionId"`
	Question      string      `json:"question"`
	Category      string      `json:"category,omitempty"`
	Weight        float64     `json:"weight"`
	Score         float64     `json:"score"`
	WeightedScore float64     `json:"weightedScore"`
	Confidence    float64     `json:"confidence"`
	Answer        string      `json:"answer"`
	Gap           string      `json:"gap,omitempty"`
	Sources       []SourceRef `json:"sources,omitempty"`
	Analyzed      bool        `json:"analyzed"`
}

// CategoryScore rolls the breakdown up per question category
type CategoryScore struct {
	Category      string  `json:"category"`
	Questions     int     `json:"questions"`
	WeightedScore float64 `json:"weightedScore"`
	Weight        float64 `json:"weight"`
	Score         float64 `json:"score"` // 0-10
}

// DomainSummary aggregates entity scores across a realm for one domain
type DomainSummary struct {
	DomainID         string          `json:"domainId"`
	EntitiesWithData int             `json:"entitiesWithData"`
	TotalEntities    int             `json:"totalEntities"`
	AverageScore     *float64        `json:"averageScore"` // nil when no entity has data
	MinScore         *float64        `json:"minScore,omitempty"`
	MaxScore         *float64        `json:"maxScore,omitempty"`
	Color            string          `json:"color"` // Hex color of the average (neutral when nil)
	Entities         []EntitySummary `json:"entities"`
	Diagnostics      []Diagnostic    `json:"diagnostics,omitempty"`
}

// EntitySummary is one entity's entry in a DomainSummary
type EntitySummary struct {
	EntityID string   `json:"entityId"`
	Name     string   `json:"name,omitempty"`
	Score    *float64 `json:"score"` // nil when unscored
	Color    string   `json:"color"` // #rrggbb
	RGB      string   `json:"rgb"`   // rgb(r, g, b)
}

// Diagnostic reports a per-entity problem that did not abort the summary
type Diagnostic struct {
	EntityID string `json:"entityId"`
	Message  string `json:"message"`
}

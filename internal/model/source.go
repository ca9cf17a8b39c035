package model

import (
	"strings"
	"time"
)

// DocumentType is the kind of source document a realm is built around
type DocumentType string

const (
	DocumentStatute DocumentType = "statute"
	DocumentPolicy  DocumentType = "policy"
)

// ParseDocumentType parses a document type case-insensitively
func ParseDocumentType(s string) (DocumentType, bool) {
	switch DocumentType(strings.ToLower(strings.TrimSpace(s))) {
	case DocumentStatute:
		return DocumentStatute, true
	case DocumentPolicy:
		return DocumentPolicy, true
	default:
		return "", false
	}
}

// SourceRef points at the legal or policy document backing an answer
type SourceRef struct {
	Type          string     `json:"type,omitempty"`    // statute, ordinance, policy, code, ...
	URL           string     `json:"url,omitempty"`
	Title         string     `json:"title,omitempty"`
	Section       string     `json:"section,omitempty"` // e.g., "Sec. 14-23"
	DownloadedAt  *time.Time `json:"downloadedAt,omitempty"`
	ContentLength int64      `json:"contentLength,omitempty"`
}

// Metadata is the source catalogue for one (entity, domain) pair
type Metadata struct {
	EntityID     string       `json:"entityId,omitempty"`
	DomainID     string       `json:"domainId,omitempty"`
	DocumentType DocumentType `json:"documentType,omitempty"`
	Sources      []SourceRef  `json:"sources,omitempty"`

	// Single-source fields written by older pipeline generations
	SourceURL string `json:"sourceUrl,omitempty"`
	PolicyURL string `json:"policyUrl,omitempty"`
}

package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"

	"github.com/ppiankov/civicscore/internal/model"
)

// ErrNotFound is returned by a Store when a domain is unknown
var ErrNotFound = errors.New("not found")

// ErrInvalidID is returned by a Store for an identifier that cannot
// address a record, such as "../x" in a file-system store
var ErrInvalidID = errors.New("invalid identifier")

// Store is the document store the engine reads from.
//
// GetAnalysis and LoadMetadata return a nil record and a nil error when no
// record exists; errors are reserved for storage failures.
type Store interface {
	GetQuestions(ctx context.Context, domainID string) ([]model.Question, error)
	GetAnalysis(ctx context.Context, domainID, entityID string) (json.RawMessage, error)
	LoadMetadata(ctx context.Context, domainID, entityID string) (json.RawMessage, error)
	ListEntities(ctx context.Context) ([]model.Entity, error)
}

// isAbsent reports whether a raw record stands for "no data"
func isAbsent(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

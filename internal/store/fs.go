// Package store provides document store clients for the scoring engine:
// a file-system store plus caching and rate-limiting decorators.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ppiankov/civicscore/internal/engine"
	"github.com/ppiankov/civicscore/internal/model"
	"github.com/ppiankov/civicscore/internal/normalize"
)

// ErrInvalidID indicates an identifier that cannot name a file
var ErrInvalidID = engine.ErrInvalidID

// FS reads records from a data directory laid out as
//
//	<dir>/entities.json
//	<dir>/<domain>/questions.json (or .yaml/.yml)
//	<dir>/<domain>/analysis/<entity>.json
//	<dir>/<domain>/metadata/<entity>.json
type FS struct {
	dir string
}

// NewFS creates a file-system store rooted at dir
func NewFS(dir string) *FS {
	return &FS{dir: dir}
}

var _ engine.Store = (*FS)(nil)

// GetQuestions loads and normalizes a domain's question list
func (s *FS) GetQuestions(ctx context.Context, domainID string) ([]model.Question, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := validID(domainID); err != nil {
		return nil, err
	}

	for _, name := range []string{"questions.json", "questions.yaml", "questions.yml"} {
		raw, found, err := readStructured(filepath.Join(s.dir, domainID, name))
		if err != nil {
			return nil, err
		}
		if !found {
			continue
		}
		questions, err := normalize.Questions(raw)
		if err != nil {
			return nil, fmt.Errorf("questions for %s: %w", domainID, err)
		}
		return questions, nil
	}

	return nil, fmt.Errorf("domain %q: %w", domainID, engine.ErrNotFound)
}

// GetAnalysis returns the raw analysis record, or nil if none exists
func (s *FS) GetAnalysis(ctx context.Context, domainID, entityID string) (json.RawMessage, error) {
	return s.readRecord(ctx, domainID, "analysis", entityID)
}

// LoadMetadata returns the raw metadata record, or nil if none exists
func (s *FS) LoadMetadata(ctx context.Context, domainID, entityID string) (json.RawMessage, error) {
	return s.readRecord(ctx, domainID, "metadata", entityID)
}

// ListEntities returns the entity directory in file order
func (s *FS) ListEntities(ctx context.Context) ([]model.Entity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for _, name := range []string{"entities.json", "entities.yaml", "entities.yml"} {
		raw, found, err := readStructured(filepath.Join(s.dir, name))
		if err != nil {
			return nil, err
		}
		if !found {
			continue
		}
		entities, err := normalize.Entities(raw)
		if err != nil {
			return nil, fmt.Errorf("entity directory: %w", err)
		}
		return entities, nil
	}

	return nil, fmt.Errorf("entity directory in %s: %w", s.dir, engine.ErrNotFound)
}

func (s *FS) readRecord(ctx context.Context, domainID, kind, entityID string) (json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := validID(domainID); err != nil {
		return nil, err
	}
	if err := validID(entityID); err != nil {
		return nil, err
	}

	path := filepath.Join(s.dir, domainID, kind, entityID+".json")
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return json.RawMessage(data), nil
}

// readStructured reads a JSON or YAML file into plain Go values
func readStructured(path string) (interface{}, bool, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read %s: %w", path, err)
	}

	var raw interface{}
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &raw)
	default:
		err = json.Unmarshal(data, &raw)
	}
	if err != nil {
		return nil, false, fmt.Errorf("parse %s: %w", path, err)
	}
	return raw, true, nil
}

func validID(id string) error {
	if id == "" || strings.ContainsAny(id, `/\`) || strings.HasPrefix(id, ".") {
		return fmt.Errorf("%q: %w", id, ErrInvalidID)
	}
	return nil
}

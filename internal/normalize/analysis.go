// Package normalize reconciles the record shapes written by successive
// generations of the ingestion pipeline into the canonical model types.
//
// No discriminator field exists in the records; shapes are recognized by
// the keys they carry. All functions are pure.
package normalize

import (
	"strings"

	"github.com/ppiankov/civicscore/internal/model"
	"github.com/ppiankov/civicscore/internal/score"
)

// Analysis converts a raw analysis record into the canonical form.
//
// raw may be decoded JSON (map[string]interface{}), JSON bytes
// ([]byte, json.RawMessage, string) or an already canonical
// model.Analysis, for which the call is a fixed point.
func Analysis(raw interface{}) (*model.Analysis, error) {
	obj, err := decodeObject(raw)
	if err != nil {
		return nil, err
	}

	items, err := questionList(obj)
	if err != nil {
		return nil, err
	}

	a := &model.Analysis{
		Entity:    ref(obj, "entity", []string{"entityId", "entity_id"}, []string{"entityName", "entity_name"}),
		Domain:    ref(obj, "domain", []string{"domainId", "domain_id"}, []string{"domainName", "domain_name"}),
		Questions: make([]model.AnalyzedQuestion, 0, len(items)),
	}

	for i, item := range items {
		q, err := analyzedQuestion(item, i)
		if err != nil {
			return nil, err
		}
		a.Questions = append(a.Questions, q)
	}

	if v, ok := first(obj, "overallScore", "overall_score"); ok {
		if f, ok := toFloat(v); ok {
			a.OverallScore = &f
		}
	}
	if m, ok := obj["metadata"].(map[string]interface{}); ok && len(m) > 0 {
		a.Metadata = make(map[string]interface{}, len(m))
		for k, v := range m {
			a.Metadata[k] = v
		}
	}
	if v, ok := first(obj, "timestamp", "analyzedAt", "analyzed_at"); ok {
		a.Timestamp = toTime(v)
	}

	return a, nil
}

// questionList finds the answered-question list under "questions" or "answers".
// A non-empty list wins over an empty one.
func questionList(obj map[string]interface{}) ([]interface{}, error) {
	var found []interface{}
	recognized := false
	for _, key := range []string{"questions", "answers"} {
		list, ok := obj[key].([]interface{})
		if !ok {
			continue
		}
		if !recognized || len(found) == 0 {
			found = list
		}
		recognized = true
	}
	if !recognized {
		return nil, recordError(ErrNoQuestionList, "questions|answers")
	}
	return found, nil
}

// ref reads an entity/domain reference given either as a nested
// {id, displayName} object, a bare value, or flat *Id/*Name fields
func ref(obj map[string]interface{}, nestedKey string, idKeys, nameKeys []string) model.Ref {
	var r model.Ref

	switch v := obj[nestedKey].(type) {
	case map[string]interface{}:
		r.ID, _ = firstID(v, "id")
		r.DisplayName = stringField(v, "displayName", "display_name", "name")
	case nil:
	default:
		r.ID, _ = toID(v)
	}

	if r.ID == "" {
		r.ID, _ = firstID(obj, idKeys...)
	}
	if r.DisplayName == "" {
		r.DisplayName = stringField(obj, nameKeys...)
	}
	return r
}

func analyzedQuestion(raw interface{}, index int) (model.AnalyzedQuestion, error) {
	item, ok := raw.(map[string]interface{})
	if !ok {
		return model.AnalyzedQuestion{}, itemError(ErrMalformedItem, index, "")
	}

	id, ok := firstID(item, "id", "questionId", "question_id")
	if !ok {
		return model.AnalyzedQuestion{}, itemError(ErrMissingIdentifier, index, "id|questionId")
	}

	q := model.AnalyzedQuestion{
		QuestionID: id,
		Question:   stringField(item, "question", "text"),
		Answer:     stringField(item, "answer"),
		Gap:        stringField(item, "gap", "gapAnalysis", "gap_analysis"),
		Sources:    sourceList(item["sources"]),
	}
	if v, ok := first(item, "confidence"); ok {
		if f, ok := toFloat(v); ok {
			q.Confidence = score.NormalizeConfidence(f)
		}
	}
	if v, ok := first(item, "score", "environmentalScore", "environmental_score"); ok {
		if f, ok := toFloat(v); ok {
			q.Score = score.NormalizeScore(f)
		}
	}
	return q, nil
}

// sourceList accepts section-number strings and structured objects
func sourceList(raw interface{}) []model.SourceRef {
	var items []interface{}
	switch v := raw.(type) {
	case []interface{}:
		items = v
	case nil:
		return nil
	default:
		items = []interface{}{v}
	}

	refs := make([]model.SourceRef, 0, len(items))
	for _, item := range items {
		switch v := item.(type) {
		case map[string]interface{}:
			refs = append(refs, sourceRef(v))
		default:
			if s := toText(v); s != "" {
				refs = append(refs, model.SourceRef{Section: s})
			}
		}
	}
	if len(refs) == 0 {
		return nil
	}
	return refs
}

func sourceRef(obj map[string]interface{}) model.SourceRef {
	ref := model.SourceRef{
		Type:    strings.TrimSpace(stringField(obj, "type", "sourceType", "source_type")),
		URL:     stringField(obj, "url", "href"),
		Title:   stringField(obj, "title"),
		Section: stringField(obj, "section"),
	}
	if v, ok := first(obj, "downloadedAt", "downloaded_at"); ok {
		ref.DownloadedAt = toTime(v)
	}
	if v, ok := first(obj, "contentLength", "content_length"); ok {
		if n, ok := toInt(v); ok {
			ref.ContentLength = int64(n)
		}
	}
	return ref
}

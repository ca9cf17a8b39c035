package normalize

import (
	"sort"

	"github.com/ppiankov/civicscore/internal/model"
)

// Questions converts a raw question list, given either as a bare array or
// as an object with a "questions" key, into question definitions sorted
// by display order. Questions without an order keep their relative position
// after the ordered ones.
func Questions(raw interface{}) ([]model.Question, error) {
	v, err := decode(raw)
	if err != nil {
		return nil, err
	}

	items, ok := v.([]interface{})
	if !ok {
		obj, isObj := v.(map[string]interface{})
		if !isObj {
			return nil, recordError(ErrNoQuestionList, "questions")
		}
		if items, ok = obj["questions"].([]interface{}); !ok {
			return nil, recordError(ErrNoQuestionList, "questions")
		}
	}

	questions := make([]model.Question, 0, len(items))
	seen := make(map[string]bool, len(items))

	for i, rawItem := range items {
		item, ok := rawItem.(map[string]interface{})
		if !ok {
			return nil, itemError(ErrMalformedItem, i, "")
		}

		id, ok := firstID(item, "id", "questionId", "question_id")
		if !ok {
			return nil, itemError(ErrMissingIdentifier, i, "id|questionId")
		}
		if seen[id] {
			return nil, itemError(ErrDuplicateQuestion, i, id)
		}
		seen[id] = true

		q := model.Question{
			ID:       id,
			Text:     stringField(item, "question", "text"),
			Category: stringField(item, "category"),
		}
		if w, ok := first(item, "weight"); ok {
			if f, ok := toFloat(w); ok {
				q.Weight = &f
			}
		}
		if o, ok := first(item, "order", "displayOrder", "display_order"); ok {
			if n, ok := toInt(o); ok {
				q.Order = &n
			}
		}
		questions = append(questions, q)
	}

	sort.SliceStable(questions, func(i, j int) bool {
		a, b := questions[i].Order, questions[j].Order
		switch {
		case a != nil && b != nil:
			return *a < *b
		case a != nil:
			return true
		default:
			return false
		}
	})

	return questions, nil
}

// Entities converts a raw entity directory: an array of identifiers, an
// array of {id, name} objects, or an object with an "entities" key.
// Entries without an identifier are skipped.
func Entities(raw interface{}) ([]model.Entity, error) {
	v, err := decode(raw)
	if err != nil {
		return nil, err
	}

	items, ok := v.([]interface{})
	if !ok {
		obj, isObj := v.(map[string]interface{})
		if !isObj {
			return nil, recordError(ErrUnsupportedInput, "entities")
		}
		if items, ok = obj["entities"].([]interface{}); !ok {
			return nil, recordError(ErrUnsupportedInput, "entities")
		}
	}

	entities := make([]model.Entity, 0, len(items))
	for _, rawItem := range items {
		switch item := rawItem.(type) {
		case map[string]interface{}:
			id, ok := firstID(item, "id", "entityId", "entity_id")
			if !ok {
				continue
			}
			entities = append(entities, model.Entity{
				ID:   id,
				Name: stringField(item, "name", "displayName", "display_name"),
			})
		default:
			if id, ok := toID(item); ok {
				entities = append(entities, model.Entity{ID: id})
			}
		}
	}
	return entities, nil
}

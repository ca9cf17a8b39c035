package normalize

import (
	"strings"

	"github.com/ppiankov/civicscore/internal/model"
)

// Metadata converts a raw source catalogue into the canonical form.
// A record without any sources is valid and yields an empty catalogue.
func Metadata(raw interface{}) (*model.Metadata, error) {
	obj, err := decodeObject(raw)
	if err != nil {
		return nil, err
	}

	entity := ref(obj, "entity", []string{"entityId", "entity_id"}, nil)
	domain := ref(obj, "domain", []string{"domainId", "domain_id"}, nil)

	m := &model.Metadata{
		EntityID:  entity.ID,
		DomainID:  domain.ID,
		SourceURL: stringField(obj, "sourceUrl", "source_url"),
		PolicyURL: stringField(obj, "policyUrl", "policy_url"),
	}
	if dt, ok := model.ParseDocumentType(stringField(obj, "documentType", "document_type")); ok {
		m.DocumentType = dt
	}

	rawSources, _ := first(obj, "sources", "source")
	for _, src := range sourceList(rawSources) {
		// Bare strings in a catalogue are URLs, not section numbers
		if src.URL == "" && src.Type == "" && looksLikeURL(src.Section) {
			src.URL, src.Section = src.Section, ""
		}
		m.Sources = append(m.Sources, src)
	}

	return m, nil
}

func looksLikeURL(s string) bool {
	return strings.Contains(s, "://")
}

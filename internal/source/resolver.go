// Package source selects the source document reference that applies to a
// realm's document type.
package source

import (
	"strings"

	"github.com/ppiankov/civicscore/internal/model"
)

// aliases lists, per wanted document type, the historical type tags that
// also satisfy it, in precedence order
var aliases = map[model.DocumentType][]string{
	model.DocumentStatute: {"ordinance", "code"},
	model.DocumentPolicy:  nil,
}

// Aliases returns the alias tags accepted for the wanted type
func Aliases(wanted model.DocumentType) []string {
	out := make([]string, len(aliases[wanted]))
	copy(out, aliases[wanted])
	return out
}

// Resolve picks the source for the wanted document type:
//  1. a source whose type equals wanted (case-insensitive)
//  2. a source whose type is an alias of wanted, aliases tried in table order
//  3. the legacy single-source fields (policyUrl for policy, then sourceUrl)
//
// It returns nil when nothing matches, including for nil metadata.
// Sources without a URL never match.
func Resolve(meta *model.Metadata, wanted model.DocumentType) *model.SourceRef {
	if meta == nil {
		return nil
	}

	if src := findType(meta.Sources, string(wanted)); src != nil {
		return src
	}
	for _, alias := range aliases[wanted] {
		if src := findType(meta.Sources, alias); src != nil {
			return src
		}
	}

	return legacy(meta, wanted)
}

func findType(sources []model.SourceRef, tag string) *model.SourceRef {
	for i := range sources {
		src := sources[i]
		if strings.TrimSpace(src.URL) == "" {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(src.Type), tag) {
			return &src
		}
	}
	return nil
}

func legacy(meta *model.Metadata, wanted model.DocumentType) *model.SourceRef {
	candidates := []string{meta.SourceURL}
	if wanted == model.DocumentPolicy {
		candidates = []string{meta.PolicyURL, meta.SourceURL}
	}
	for _, u := range candidates {
		if u = strings.TrimSpace(u); u != "" {
			return &model.SourceRef{Type: string(wanted), URL: u}
		}
	}
	return nil
}

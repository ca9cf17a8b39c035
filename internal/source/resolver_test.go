package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ppiankov/civicscore/internal/model"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		meta    *model.Metadata
		wanted  model.DocumentType
		wantURL string
	}{
		{
			name:   "nil metadata",
			meta:   nil,
			wanted: model.DocumentStatute,
		},
		{
			name:   "empty metadata",
			meta:   &model.Metadata{},
			wanted: model.DocumentPolicy,
		},
		{
			name: "exact match wins over alias",
			meta: &model.Metadata{Sources: []model.SourceRef{
				{Type: "ordinance", URL: "https://example.org/ordinance"},
				{Type: "statute", URL: "https://example.org/statute"},
			}},
			wanted:  model.DocumentStatute,
			wantURL: "https://example.org/statute",
		},
		{
			name: "case insensitive",
			meta: &model.Metadata{Sources: []model.SourceRef{
				{Type: "Policy", URL: "https://example.org/policy"},
			}},
			wanted:  model.DocumentPolicy,
			wantURL: "https://example.org/policy",
		},
		{
			name: "ordinance before code",
			meta: &model.Metadata{Sources: []model.SourceRef{
				{Type: "code", URL: "https://example.org/code"},
				{Type: "ordinance", URL: "https://example.org/ordinance"},
			}},
			wanted:  model.DocumentStatute,
			wantURL: "https://example.org/ordinance",
		},
		{
			name: "code alias",
			meta: &model.Metadata{Sources: []model.SourceRef{
				{Type: "policy", URL: "https://example.org/policy"},
				{Type: "code", URL: "https://example.org/code"},
			}},
			wanted:  model.DocumentStatute,
			wantURL: "https://example.org/code",
		},
		{
			name: "policy has no aliases",
			meta: &model.Metadata{Sources: []model.SourceRef{
				{Type: "ordinance", URL: "https://example.org/ordinance"},
			}},
			wanted: model.DocumentPolicy,
		},
		{
			name: "sources without url are skipped",
			meta: &model.Metadata{Sources: []model.SourceRef{
				{Type: "statute", Section: "Sec. 1"},
				{Type: "statute", URL: "https://example.org/statute"},
			}},
			wanted:  model.DocumentStatute,
			wantURL: "https://example.org/statute",
		},
		{
			name: "policy falls back to policyUrl",
			meta: &model.Metadata{
				SourceURL: "https://example.org/source",
				PolicyURL: "https://example.org/policy",
			},
			wanted:  model.DocumentPolicy,
			wantURL: "https://example.org/policy",
		},
		{
			name:    "policy falls back to sourceUrl",
			meta:    &model.Metadata{SourceURL: "https://example.org/source"},
			wanted:  model.DocumentPolicy,
			wantURL: "https://example.org/source",
		},
		{
			name:   "statute ignores policyUrl",
			meta:   &model.Metadata{PolicyURL: "https://example.org/policy"},
			wanted: model.DocumentStatute,
		},
		{
			name: "typed source wins over legacy field",
			meta: &model.Metadata{
				Sources:   []model.SourceRef{{Type: "statute", URL: "https://example.org/statute"}},
				SourceURL: "https://example.org/source",
			},
			wanted:  model.DocumentStatute,
			wantURL: "https://example.org/statute",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.meta, tt.wanted)
			if tt.wantURL == "" {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.wantURL, got.URL)
		})
	}
}

func TestResolve_LegacyCarriesWantedType(t *testing.T) {
	got := Resolve(&model.Metadata{SourceURL: " https://example.org/source "}, model.DocumentStatute)
	require.NotNil(t, got)
	assert.Equal(t, "statute", got.Type)
	assert.Equal(t, "https://example.org/source", got.URL)
}

func TestResolve_ReturnsCopy(t *testing.T) {
	meta := &model.Metadata{Sources: []model.SourceRef{{Type: "statute", URL: "https://example.org/a"}}}
	got := Resolve(meta, model.DocumentStatute)
	require.NotNil(t, got)

	got.URL = "changed"
	assert.Equal(t, "https://example.org/a", meta.Sources[0].URL)
}

func TestAliases(t *testing.T) {
	assert.Equal(t, []string{"ordinance", "code"}, Aliases(model.DocumentStatute))
	assert.Empty(t, Aliases(model.DocumentPolicy))

	a := Aliases(model.DocumentStatute)
	a[0] = "mutated"
	assert.Equal(t, "ordinance", Aliases(model.DocumentStatute)[0])
}

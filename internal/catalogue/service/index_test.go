package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalogue-recon/internal/catalogue/model"
)

func TestBuildIndexEmptyInput(t *testing.T) {
	idx := BuildIndex(nil, model.SchemeVariantCode, model.SchemeNormalizedName)
	assert.Equal(t, 0, idx.Len(model.SchemeVariantCode))
	assert.Equal(t, 0, idx.Len(model.SchemeNormalizedName))
}

func TestBuildIndexSkipsEmptyKeys(t *testing.T) {
	items := []model.CatalogueItem{
		{VariantCode: "gr11bgxs", DisplayName: "Classic Polo"},
		{DisplayName: "Another Item"}, // no variant code
		{VariantCode: "   "},          // whitespace only
	}
	idx := BuildIndex(items, model.SchemeVariantCode, model.SchemeNormalizedName)

	assert.Equal(t, 1, idx.Len(model.SchemeVariantCode))
	_, ok := idx.Set(model.SchemeVariantCode)["GR11BGXS"]
	assert.True(t, ok, "variant codes are canonicalized on insert")
	assert.Equal(t, 2, idx.Len(model.SchemeNormalizedName))
}

func TestBuildIndexGlobalCodeNormalization(t *testing.T) {
	items := []model.CatalogueItem{
		{GlobalCode: "0005012345678"},
		{GlobalCode: "5012345678"}, // same code, different padding
	}
	idx := BuildIndex(items, model.SchemeGlobalCode)
	assert.Equal(t, 1, idx.Len(model.SchemeGlobalCode))
}

func TestBuildIndexFirstSeenProvenance(t *testing.T) {
	items := []model.CatalogueItem{
		{PrimaryCode: "GR11", DisplayName: "Classic Polo"},
		{PrimaryCode: "GR99", DisplayName: "classic POLO"}, // same normalized name
	}
	idx := BuildIndex(items, model.SchemeNormalizedName)

	require.Equal(t, 1, idx.Len(model.SchemeNormalizedName))
	it, ok := idx.Item("classic polo")
	require.True(t, ok)
	assert.Equal(t, "GR11", it.PrimaryCode, "first item seen wins for provenance")
}

func TestBuildIndexUnknownSchemeIgnored(t *testing.T) {
	items := []model.CatalogueItem{{VariantCode: "X1"}}
	idx := BuildIndex(items, "no_such_scheme")
	assert.Equal(t, 0, idx.Len("no_such_scheme"))
}

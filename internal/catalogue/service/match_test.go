package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalogue-recon/internal/catalogue/model"
)

func variantPair() []model.SchemePair {
	return []model.SchemePair{
		{SchemeA: model.SchemeVariantCode, SchemeB: model.SchemeVariantCode, Method: model.MethodByVariantCode},
	}
}

func TestMatchExact(t *testing.T) {
	a := BuildIndex([]model.CatalogueItem{
		{VariantCode: "GR11BGXS"}, {VariantCode: "GR11BGS"}, {VariantCode: "ZZ1"},
	}, model.SchemeVariantCode, model.SchemeNormalizedName)
	b := BuildIndex([]model.CatalogueItem{
		{VariantCode: "gr11bgxs"}, {VariantCode: "gr11bgs"}, {VariantCode: "YY9"},
	}, model.SchemeVariantCode, model.SchemeNormalizedName)

	res := Match(a, b, variantPair())
	assert.Equal(t, []string{"GR11BGS", "GR11BGXS"}, res[model.MethodByVariantCode].Values, "sorted canonical intersection")
}

func TestMatchExactCommutative(t *testing.T) {
	a := BuildIndex([]model.CatalogueItem{
		{VariantCode: "A1"}, {VariantCode: "B2"}, {VariantCode: "C3"},
	}, model.SchemeVariantCode, model.SchemeNormalizedName)
	b := BuildIndex([]model.CatalogueItem{
		{VariantCode: "b2"}, {VariantCode: "c3"}, {VariantCode: "D4"},
	}, model.SchemeVariantCode, model.SchemeNormalizedName)

	ab := Match(a, b, variantPair())
	ba := Match(b, a, variantPair())
	assert.Equal(t, ab[model.MethodByVariantCode].Values, ba[model.MethodByVariantCode].Values)
}

func TestMatchEmptyStringNeverMatches(t *testing.T) {
	a := BuildIndex([]model.CatalogueItem{{DisplayName: "Only A Name"}},
		model.SchemeVariantCode, model.SchemeNormalizedName)
	b := BuildIndex([]model.CatalogueItem{{DisplayName: "Only B Name"}},
		model.SchemeVariantCode, model.SchemeNormalizedName)

	res := Match(a, b, variantPair())
	assert.Empty(t, res[model.MethodByVariantCode].Values)
}

func TestFuzzyMinimumLength(t *testing.T) {
	a := BuildIndex([]model.CatalogueItem{{DisplayName: "ab"}},
		model.SchemeNormalizedName)
	b := BuildIndex([]model.CatalogueItem{{DisplayName: "ab"}},
		model.SchemeNormalizedName)

	res := Match(a, b, nil)
	assert.Empty(t, res[model.MethodByNameFuzzy].Pairs, "names under 5 normalized chars are excluded")
}

func TestFuzzyAtMostOnePartnerPerAName(t *testing.T) {
	a := BuildIndex([]model.CatalogueItem{{DisplayName: "blue polo shirt"}},
		model.SchemeNormalizedName)
	b := BuildIndex([]model.CatalogueItem{
		{DisplayName: "blue polo"}, {DisplayName: "polo shirt"},
	}, model.SchemeNormalizedName)

	res := Match(a, b, nil)
	require.Len(t, res[model.MethodByNameFuzzy].Pairs, 1)
	// sorted B order is deterministic: "blue polo" < "polo shirt"
	assert.Equal(t, "blue polo", res[model.MethodByNameFuzzy].Pairs[0].NameB)
}

func TestFuzzyContainmentAndProvenance(t *testing.T) {
	a := BuildIndex([]model.CatalogueItem{
		{PrimaryCode: "GR11", DisplayName: "Classic Polo"},
	}, model.SchemeNormalizedName)
	b := BuildIndex([]model.CatalogueItem{
		{PrimaryCode: "GR99", DisplayName: "classic polo shirt"},
	}, model.SchemeNormalizedName)

	res := Match(a, b, nil)
	require.Len(t, res[model.MethodByNameFuzzy].Pairs, 1)
	p := res[model.MethodByNameFuzzy].Pairs[0]
	assert.Equal(t, "Classic Polo", p.NameA)
	assert.Equal(t, "classic polo shirt", p.NameB)
	assert.Equal(t, "GR11", p.CodeA)
	assert.Equal(t, "GR99", p.CodeB)
	require.NotNil(t, p.Score)
	assert.Greater(t, *p.Score, 0.0)
	assert.LessOrEqual(t, *p.Score, 1.0)
}

func TestMatchNoMatchesIsValid(t *testing.T) {
	a := BuildIndex([]model.CatalogueItem{{VariantCode: "A1", DisplayName: "Widget Alpha"}},
		model.SchemeVariantCode, model.SchemeNormalizedName)
	b := BuildIndex([]model.CatalogueItem{{VariantCode: "Z9", DisplayName: "Different Thing"}},
		model.SchemeVariantCode, model.SchemeNormalizedName)

	res := Match(a, b, variantPair())
	assert.Empty(t, res[model.MethodByVariantCode].Values)
	assert.Empty(t, res[model.MethodByNameFuzzy].Pairs)
}

func TestSimilarityBounds(t *testing.T) {
	assert.Equal(t, 1.0, similarity("classic polo", "classic polo"))
	assert.Equal(t, 1.0, similarity("polo classic", "classic polo"), "token order must not punish")
	assert.Equal(t, 0.0, similarity("", "classic polo"))
	s := similarity("classic polo", "classic polo shirt")
	assert.Greater(t, s, 0.5)
	assert.Less(t, s, 1.0)
}

func TestDamerauLevenshtein(t *testing.T) {
	assert.Equal(t, 0, damerauLevenshtein("abc", "abc"))
	assert.Equal(t, 1, damerauLevenshtein("abc", "acb"), "transposition costs one")
	assert.Equal(t, 3, damerauLevenshtein("", "abc"))
	assert.Equal(t, 1, damerauLevenshtein("polo", "polos"))
}

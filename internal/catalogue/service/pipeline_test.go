package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalogue-recon/internal/catalogue/model"
)

// Full pass over two single-item catalogues: supplier item matches the
// operator item on the SKU scheme and fuzzily on name, and the assessor
// turns that into the multi-supplier-SKU recommendation.
func TestReconciliationEndToEnd(t *testing.T) {
	supplier := []model.CatalogueItem{
		{VariantCode: "GR11BGXS", PrimaryCode: "GR11", DisplayName: "Classic Polo"},
	}
	operator := []model.CatalogueItem{
		{VariantCode: "GR11BGXS", PrimaryCode: "GR99", DisplayName: "classic polo shirt"},
	}

	idxA := BuildIndex(supplier,
		model.SchemeVariantCode, model.SchemePrimaryCode,
		model.SchemeGlobalCode, model.SchemeNormalizedName)
	idxB := BuildIndex(operator,
		model.SchemeVariantCode, model.SchemePrimaryCode,
		model.SchemeNormalizedName)

	matches := Match(idxA, idxB, DefaultSchemePairs)

	assert.Equal(t, []string{"GR11BGXS"}, matches[model.MethodByVariantCode].Values)
	assert.Empty(t, matches[model.MethodByPrimaryCode].Values)
	assert.Empty(t, matches[model.MethodByGlobalCode].Values)

	require.Len(t, matches[model.MethodByNameFuzzy].Pairs, 1)
	pair := matches[model.MethodByNameFuzzy].Pairs[0]
	assert.Equal(t, "Classic Polo", pair.NameA)
	assert.Equal(t, "classic polo shirt", pair.NameB)

	findings := Assess(CollectStats(supplier), matches, model.SchemaCaps{Inspected: true}, true)
	require.NotEmpty(t, findings)
	overlap := findings[len(findings)-1]
	assert.Equal(t, model.SevHigh, overlap.Severity)
	assert.Contains(t, overlap.Issue, "1 identifier overlap")
	assert.Contains(t, overlap.Recommendation, "multiple supplier SKUs")
}

package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalogue-recon/internal/catalogue/model"
)

func sampleStats() model.CatalogueStats {
	return model.CatalogueStats{
		TotalItems: 10,
		Categories: map[string]int{"Polos": 6, "Jackets": 4},
	}
}

func TestAssessMissingSupplierColumnIsCritical(t *testing.T) {
	caps := model.SchemaCaps{Inspected: true, HasSupplierColumn: false}
	findings := Assess(sampleStats(), nil, caps, true)

	require.NotEmpty(t, findings)
	assert.Equal(t, model.SevCritical, findings[0].Severity)
	assert.Contains(t, findings[0].Issue, "supplier column")
}

func TestAssessSupplierColumnPresentSkipsProvenance(t *testing.T) {
	caps := model.SchemaCaps{Inspected: true, HasSupplierColumn: true}
	findings := Assess(sampleStats(), nil, caps, true)

	for _, f := range findings {
		assert.NotEqual(t, model.SevCritical, f.Severity)
	}
}

func TestAssessUninspectedSchemaDowngrades(t *testing.T) {
	findings := Assess(sampleStats(), nil, model.SchemaCaps{}, true)

	require.NotEmpty(t, findings)
	assert.Equal(t, model.SevHigh, findings[0].Severity)
	assert.Contains(t, findings[0].Issue, "could not be inspected")
}

func TestAssessNoTargetSkipsProvenance(t *testing.T) {
	findings := Assess(sampleStats(), nil, model.SchemaCaps{}, false)

	// structure, categories, overlap - no provenance rule without a target
	require.Len(t, findings, 3)
	assert.Contains(t, findings[0].Issue, "identifier schemes")
}

func TestAssessCategoriesEnumeratedSorted(t *testing.T) {
	findings := Assess(sampleStats(), nil, model.SchemaCaps{}, false)

	var catFinding *model.Finding
	for i := range findings {
		if strings.Contains(findings[i].Issue, "categories") {
			catFinding = &findings[i]
			break
		}
	}
	require.NotNil(t, catFinding)
	assert.Contains(t, catFinding.Issue, "Jackets, Polos")
	assert.Contains(t, catFinding.Recommendation, "category")
}

func TestAssessOverlapCountsExactMethodsOnly(t *testing.T) {
	score := 0.9
	matches := map[string]model.MatchResult{
		model.MethodByGlobalCode:  {Method: model.MethodByGlobalCode, Values: []string{"5012345678901"}},
		model.MethodByVariantCode: {Method: model.MethodByVariantCode, Values: []string{"GR11BGXS", "GR11BGS"}},
		model.MethodByPrimaryCode: {Method: model.MethodByPrimaryCode, Values: []string{"GR11"}},
		model.MethodByNameFuzzy: {Method: model.MethodByNameFuzzy, Pairs: []model.FuzzyPair{
			{NameA: "Classic Polo", NameB: "classic polo shirt", Score: &score},
		}},
	}
	findings := Assess(sampleStats(), matches, model.SchemaCaps{}, false)

	last := findings[len(findings)-1]
	assert.Equal(t, model.SevHigh, last.Severity)
	assert.Contains(t, last.Issue, "4 identifier overlaps", "fuzzy matches are advisory and excluded")
	assert.Contains(t, last.Recommendation, "multiple supplier SKUs")
}

func TestAssessNoOverlap(t *testing.T) {
	findings := Assess(sampleStats(), nil, model.SchemaCaps{}, false)

	last := findings[len(findings)-1]
	assert.Equal(t, model.SevInfo, last.Severity)
	assert.Contains(t, last.Recommendation, "new records")
}

func TestAssessFixedOrderAndPairing(t *testing.T) {
	caps := model.SchemaCaps{Inspected: true}
	findings := Assess(sampleStats(), nil, caps, true)

	require.Len(t, findings, 4)
	// provenance, structure, categories, overlap - in that order
	assert.Equal(t, model.SevCritical, findings[0].Severity)
	assert.Contains(t, findings[1].Issue, "identifier schemes")
	assert.Contains(t, findings[2].Issue, "categories")
	assert.Contains(t, findings[3].Issue, "overlap")
	for _, f := range findings {
		assert.NotEmpty(t, f.Issue)
		assert.NotEmpty(t, f.Recommendation, "every issue carries its recommendation")
	}
}

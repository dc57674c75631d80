package service

import (
	"fmt"
	"sort"
	"strings"

	"catalogue-recon/internal/catalogue/model"
)

// Exact methods that count toward the overlap total. Fuzzy name matches are
// advisory and deliberately excluded.
var overlapMethods = []string{
	model.MethodByGlobalCode,
	model.MethodByVariantCode,
	model.MethodByPrimaryCode,
}

// Assess turns match results and catalogue shape into an ordered list of
// integration findings. The rule order is fixed for report readability:
// provenance, identifier structure, category mapping, overlap policy.
func Assess(stats model.CatalogueStats, matches map[string]model.MatchResult, schema model.SchemaCaps, hasTarget bool) []model.Finding {
	var findings []model.Finding

	// 1. Provenance. Only meaningful when a comparison target exists, and
	// only authoritative when its schema was actually inspected.
	switch {
	case hasTarget && schema.Inspected && !schema.HasSupplierColumn:
		findings = append(findings, model.Finding{
			Severity: model.SevCritical,
			Issue: "Target schema has no supplier column: after a merge, records from " +
				"different suppliers cannot be told apart.",
			Recommendation: "Add a suppliers table and a supplier reference on products/styles " +
				"before merging, one row per source catalogue.",
		})
	case hasTarget && !schema.Inspected:
		findings = append(findings, model.Finding{
			Severity: model.SevHigh,
			Issue:    "Target schema could not be inspected, so supplier provenance support is unconfirmed.",
			Recommendation: "Verify the target carries a supplier reference on product rows " +
				"before merging; re-run once the store is reachable.",
		})
	}

	// 2. Identifier structure mismatch.
	findings = append(findings, model.Finding{
		Severity: model.SevHigh,
		Issue: "The two catalogues use different identifier schemes (supplier " +
			"primary/variant/global codes vs operator style/SKU codes), so raw codes can collide.",
		Recommendation: "Adopt supplier-prefixed or supplier-scoped identifiers when merging, " +
			"e.g. style code derived from the supplier primary code under a supplier prefix.",
	})

	// 3. Category mapping.
	findings = append(findings, model.Finding{
		Severity: model.SevMedium,
		Issue: fmt.Sprintf("Supplier categories (%s) may not map 1:1 onto internal categories.",
			categoryList(stats.Categories)),
		Recommendation: "Maintain an explicit category mapping table keyed by " +
			"(supplier, source category) -> internal category.",
	})

	// 4. Overlap policy.
	total := 0
	for _, m := range overlapMethods {
		total += matches[m].Count()
	}
	if total > 0 {
		findings = append(findings, model.Finding{
			Severity: model.SevHigh,
			Issue: fmt.Sprintf("%d identifier overlaps found between the catalogues; the same "+
				"physical product likely exists on both sides.", total),
			Recommendation: "Allow multiple supplier SKUs per internal product (supplier + external " +
				"SKU) so overlapping items support price comparison instead of colliding.",
		})
	} else {
		findings = append(findings, model.Finding{
			Severity:       model.SevInfo,
			Issue:          "No strong identifier overlap found; the supplier's items appear distinct.",
			Recommendation: "Add the supplier catalogue's items as new records.",
		})
	}

	return findings
}

func categoryList(categories map[string]int) string {
	if len(categories) == 0 {
		return "none recorded"
	}
	names := make([]string, 0, len(categories))
	for c := range categories {
		names = append(names, c)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
